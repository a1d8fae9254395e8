package structures

// DefaultHashTableSize is used when NewHashTable is given a non-positive size.
const DefaultHashTableSize = 32

type hashEntry[V any] struct {
	key   string
	value V
}

// HashTable maps string keys to values using separate chaining: every bucket
// is a LinkedList of entries.
type HashTable[V any] struct {
	buckets []*LinkedList[hashEntry[V]]
	count   int
}

// NewHashTable creates a table with size buckets.
func NewHashTable[V any](size int) *HashTable[V] {
	if size <= 0 {
		size = DefaultHashTableSize
	}
	byKey := NewComparatorFunc(func(a, b hashEntry[V]) int {
		if a.key == b.key {
			return IsEqual
		}
		return IsGreater
	})
	buckets := make([]*LinkedList[hashEntry[V]], size)
	for i := range buckets {
		buckets[i] = NewLinkedListFunc(byKey)
	}
	return &HashTable[V]{buckets: buckets}
}

// Hash returns the bucket index for key in a table of size buckets: the sum
// of the key's character codes modulo size.
func Hash(key string, size int) int {
	sum := 0
	for _, r := range key {
		sum += int(r)
	}
	return sum % size
}

// Size returns the number of buckets.
func (h *HashTable[V]) Size() int {
	return len(h.buckets)
}

// Len returns the number of stored keys.
func (h *HashTable[V]) Len() int {
	return h.count
}

// Hash returns the bucket index for key.
func (h *HashTable[V]) Hash(key string) int {
	return Hash(key, len(h.buckets))
}

func (h *HashTable[V]) bucket(key string) *LinkedList[hashEntry[V]] {
	return h.buckets[h.Hash(key)]
}

// Set stores value under key, replacing any previous value.
func (h *HashTable[V]) Set(key string, value V) *HashTable[V] {
	b := h.bucket(key)
	if node := b.Find(b.Equal(hashEntry[V]{key: key})); node != nil {
		node.Value.value = value
		return h
	}
	b.Append(hashEntry[V]{key: key, value: value})
	h.count++
	return h
}

// Get returns the value stored under key.
func (h *HashTable[V]) Get(key string) (V, bool) {
	b := h.bucket(key)
	if node := b.Find(b.Equal(hashEntry[V]{key: key})); node != nil {
		return node.Value.value, true
	}
	var zero V
	return zero, false
}

// Has reports whether key is stored.
func (h *HashTable[V]) Has(key string) bool {
	_, ok := h.Get(key)
	return ok
}

// Delete removes key and reports whether it was present.
func (h *HashTable[V]) Delete(key string) bool {
	b := h.bucket(key)
	if _, ok := b.Delete(b.Equal(hashEntry[V]{key: key})); ok {
		h.count--
		return true
	}
	return false
}

// Keys returns the keys in bucket order, then insertion order per bucket.
func (h *HashTable[V]) Keys() []string {
	keys := make([]string, 0, h.count)
	for _, b := range h.buckets {
		for e := range b.All() {
			keys = append(keys, e.key)
		}
	}
	return keys
}

// Values returns the values in the same order as Keys.
func (h *HashTable[V]) Values() []V {
	values := make([]V, 0, h.count)
	for _, b := range h.buckets {
		for e := range b.All() {
			values = append(values, e.value)
		}
	}
	return values
}
