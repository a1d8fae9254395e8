package reactive

import (
	"encoding/json"
	"strconv"
	"sync"
)

// Array is the reactive wrapper of a []any container. Elements are observed
// under their decimal index.
type Array struct {
	id    uint64
	scope *scope
	path  string

	mu   sync.RWMutex
	data []any
}

func newArray(s *scope, data []any, path string) *Array {
	return &Array{id: nextID(), scope: s, path: path, data: data}
}

// ID returns the identity token assigned when the array was wrapped.
func (a *Array) ID() uint64 {
	return a.id
}

// Key returns the observer key of element i.
func (a *Array) Key(i int) string {
	return strconv.FormatUint(a.id, 10) + "." + strconv.Itoa(i)
}

// Path returns the dotted path of the array inside its root.
func (a *Array) Path() string {
	return a.path
}

func (a *Array) pathOf(i int) string {
	return joinPath(a.path, strconv.Itoa(i))
}

func (a *Array) load(i int) (any, bool) {
	a.mu.RLock()
	if i < 0 || i >= len(a.data) {
		a.mu.RUnlock()
		return nil, false
	}
	v := a.data[i]
	a.mu.RUnlock()
	if !isRawContainer(v) || !a.scope.mayWrap(a.id) {
		return v, true
	}

	a.mu.Lock()
	if i < len(a.data) {
		v = a.data[i]
		if isRawContainer(v) {
			v = a.scope.wrap(v, a.pathOf(i))
			a.data[i] = v
		}
	}
	a.mu.Unlock()
	a.scope.markWrapped(a.id)
	return v, true
}

// Get returns element i, or nil when i is out of range.
func (a *Array) Get(i int) any {
	v, _ := a.Lookup(i)
	return v
}

// Lookup returns element i and whether i is in range.
func (a *Array) Lookup(i int) (any, bool) {
	v, ok := a.load(i)
	recordRead(a.scope.registry, a.Key(i), v)
	return v, ok
}

// Set stores v at index i. An index equal to Len appends. It reports false
// when i is out of range. Writing the stored value again is a no-op.
func (a *Array) Set(i int, v any) bool {
	v = a.scope.adopt(v)

	a.mu.Lock()
	if i < 0 || i > len(a.data) {
		a.mu.Unlock()
		return false
	}
	var old any
	if i < len(a.data) {
		old = a.data[i]
		if sameValue(old, v) {
			a.mu.Unlock()
			return true
		}
		a.data[i] = v
	} else {
		a.data = append(a.data, v)
	}
	a.mu.Unlock()

	a.scope.trigger(Change{
		Op:   OpSet,
		Key:  a.Key(i),
		Path: a.pathOf(i),
		New:  v,
		Old:  old,
	})
	return true
}

// Append adds values at the end, notifying once per added element.
func (a *Array) Append(values ...any) {
	for _, v := range values {
		v = a.scope.adopt(v)
		a.mu.Lock()
		i := len(a.data)
		a.data = append(a.data, v)
		a.mu.Unlock()

		a.scope.trigger(Change{
			Op:   OpSet,
			Key:  a.Key(i),
			Path: a.pathOf(i),
			New:  v,
		})
	}
}

// Pop removes the last element. Like Object.Delete it notifies the element's
// listeners once and then drops them.
func (a *Array) Pop() (any, bool) {
	a.mu.Lock()
	n := len(a.data)
	if n == 0 {
		a.mu.Unlock()
		return nil, false
	}
	old := a.data[n-1]
	a.data[n-1] = nil
	a.data = a.data[:n-1]
	a.mu.Unlock()

	key := a.Key(n - 1)
	a.scope.trigger(Change{
		Op:   OpDelete,
		Key:  key,
		Path: a.pathOf(n - 1),
		Old:  old,
	})
	a.scope.registry.removeAll(key)
	return old, true
}

// Len returns the number of elements.
func (a *Array) Len() int {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return len(a.data)
}

// Snapshot returns a deep copy of the array as plain maps, slices and
// scalars.
func (a *Array) Snapshot() []any {
	a.mu.RLock()
	defer a.mu.RUnlock()
	out := make([]any, len(a.data))
	for i, v := range a.data {
		out[i] = snapshotValue(v)
	}
	return out
}

// MarshalJSON encodes the array as a plain JSON array.
func (a *Array) MarshalJSON() ([]byte, error) {
	return json.Marshal(a.Snapshot())
}
