package reactive

import (
	"cmp"
	"slices"
	"sync"

	"github.com/vango-dev/reactkit/pkg/structures"
)

// byListenerID orders listeners by ID so that list lookups dedupe on identity.
var byListenerID = structures.NewComparatorFunc(func(a, b Listener) int {
	return cmp.Compare(a.ID(), b.ID())
})

// Registry maps observer keys to the listeners subscribed under them.
// Each reactive root owns one registry; each computed value owns a private
// one. A Registry is safe for concurrent use. Listeners are always invoked
// with no lock held.
type Registry struct {
	mu      sync.RWMutex
	entries map[string]*structures.LinkedList[Listener]
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{entries: make(map[string]*structures.LinkedList[Listener])}
}

// define ensures an entry for key exists and adds every listener not already
// registered under it.
func (r *Registry) define(key string, listeners ...Listener) {
	r.mu.Lock()
	list, ok := r.entries[key]
	if !ok {
		list = structures.NewLinkedListFunc(byListenerID)
		r.entries[key] = list
	}
	for _, l := range listeners {
		if l == nil || list.Has(list.Equal(l)) {
			continue
		}
		list.Append(l)
	}
	n := list.Len()
	r.mu.Unlock()

	instrumentDefined(key, n)
}

// snapshot copies the listeners of key so they can be notified without
// holding the lock.
func (r *Registry) snapshot(key string) ([]Listener, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	list, ok := r.entries[key]
	if !ok {
		return nil, false
	}
	return list.Values(), true
}

// trigger notifies every listener of key with (newVal, oldVal). When key is
// not the root key and root listeners exist, they are notified as well with
// the current root value in both positions.
func (r *Registry) trigger(key, rootKey string, newVal, oldVal any, rootVal func() any) {
	listeners, _ := r.snapshot(key)
	for _, l := range listeners {
		l.Notify(newVal, oldVal)
	}

	bubbled := false
	if key != rootKey {
		if roots, ok := r.snapshot(rootKey); ok {
			bubbled = true
			var v any
			if rootVal != nil {
				v = rootVal()
			}
			for _, l := range roots {
				l.Notify(v, v)
			}
		}
	}

	instrumentTriggered(key, len(listeners), bubbled)
}

// remove deletes one listener from key. Absent keys and listeners are
// ignored.
func (r *Registry) remove(key string, l Listener) {
	if l == nil {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if list, ok := r.entries[key]; ok {
		list.Delete(list.Equal(l))
	}
}

// removeAll drops the entry for key.
func (r *Registry) removeAll(key string) {
	r.mu.Lock()
	delete(r.entries, key)
	r.mu.Unlock()
}

// Has reports whether an entry exists for key, even an empty one.
func (r *Registry) Has(key string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.entries[key]
	return ok
}

// Len returns the number of listeners registered under key.
func (r *Registry) Len(key string) int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if list, ok := r.entries[key]; ok {
		return list.Len()
	}
	return 0
}

// Keys returns every key with an entry, sorted.
func (r *Registry) Keys() []string {
	r.mu.RLock()
	keys := make([]string, 0, len(r.entries))
	for k := range r.entries {
		keys = append(keys, k)
	}
	r.mu.RUnlock()
	slices.Sort(keys)
	return keys
}
