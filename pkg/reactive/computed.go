package reactive

import (
	"strconv"
	"sync"
)

// Computed is a cached value derived from other reactive values.
//
// The getter runs once at construction with tracking enabled, which
// subscribes the computed to every location it reads. When one of those
// locations changes value, the getter runs again and the computed notifies
// its own listeners with the new and previous result. Reading Value never
// recomputes.
type Computed[T any] struct {
	id       uint64
	key      string
	registry *Registry
	getter   func() T
	listener Listener

	mu    sync.RWMutex
	value T
	old   T
}

// NewComputed creates a computed value over getter.
func NewComputed[T any](getter func() T) (*Computed[T], error) {
	if getter == nil {
		return nil, nilGetterError()
	}

	c := &Computed[T]{
		id:       nextID(),
		registry: NewRegistry(),
		getter:   getter,
	}
	c.key = "computed:" + strconv.FormatUint(c.id, 10) + ".value"
	c.listener = newListenerFunc(c.recompute)

	var v T
	trackComputed(c.listener, func() { v = getter() })
	c.value = v
	return c, nil
}

// recompute runs when an upstream location changed. Notifications that carry
// the same value twice, such as root bubbling, are ignored.
func (c *Computed[T]) recompute(newVal, oldVal any) {
	if sameValue(newVal, oldVal) {
		return
	}

	var next T
	Untracked(func() {
		trackComputed(c.listener, func() { next = c.getter() })
	})

	c.mu.Lock()
	prev := c.value
	c.old, c.value = prev, next
	c.mu.Unlock()

	instrumentRecomputed(c.key)
	c.registry.trigger(c.key, c.key, next, prev, nil)
}

// Value returns the cached result and subscribes the active tracking pass,
// if any, to this computed.
func (c *Computed[T]) Value() T {
	recordComputedRead(c.registry, c.key)
	return c.Peek()
}

// Peek returns the cached result without recording a dependency.
func (c *Computed[T]) Peek() T {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.value
}

// Previous returns the result before the last recompute.
func (c *Computed[T]) Previous() T {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.old
}

// Key returns the observer key of the computed value.
func (c *Computed[T]) Key() string {
	return c.key
}

// Registry returns the private registry holding the computed's listeners.
func (c *Computed[T]) Registry() *Registry {
	return c.registry
}
