package reactive

import "sync"

// WatchHandle identifies the subscriptions made by one Watch call.
type WatchHandle struct {
	listener Listener

	mu      sync.Mutex
	subs    []subscription
	stopped bool
}

// Watch subscribes effect to the reactive locations read by getter.
//
// getter is called once to obtain the watched value and then once more with
// tracking enabled. During the tracked call, every read that yields the
// watched value subscribes effect under that location's key; computed
// values read by getter always subscribe it. Only the value getter returns
// is watched, so the getter should return the location it reads, as in
// func() any { return obj.Get("name") }.
//
// effect receives values converted to T; values of another type, including
// the nil delivered when a watched property is deleted, arrive as the zero
// value of T.
//
// Watch must not be called from inside another watcher's getter; doing so
// panics with an error wrapping ErrNestedTracking.
func Watch[T any](getter func() T, effect func(newVal, oldVal T)) (*WatchHandle, error) {
	if getter == nil {
		return nil, nilGetterError()
	}
	if effect == nil {
		return nil, nilEffectError()
	}

	l := newListenerFunc(func(n, o any) {
		effect(as[T](n), as[T](o))
	})
	slot := &effectSlot{target: any(getter()), listener: l}
	trackEffect(slot, func() { getter() })

	h := &WatchHandle{listener: l}
	seen := make(map[subscription]struct{}, len(slot.defined))
	for _, s := range slot.defined {
		if _, dup := seen[s]; dup {
			continue
		}
		seen[s] = struct{}{}
		h.subs = append(h.subs, s)
	}
	return h, nil
}

// Unwatch removes exactly the subscriptions made by h. Other listeners of
// the same keys keep firing. A nil handle, a handle that was already
// stopped, and keys purged by a delete are all ignored.
func Unwatch(h *WatchHandle) {
	if h == nil {
		return
	}
	h.Stop()
}

// Stop is the method form of Unwatch.
func (h *WatchHandle) Stop() {
	h.mu.Lock()
	if h.stopped {
		h.mu.Unlock()
		return
	}
	h.stopped = true
	subs := h.subs
	h.mu.Unlock()

	for _, s := range subs {
		s.registry.remove(s.key, h.listener)
	}
}

// Keys returns the observer keys the watcher subscribed under.
func (h *WatchHandle) Keys() []string {
	h.mu.Lock()
	defer h.mu.Unlock()
	keys := make([]string, len(h.subs))
	for i, s := range h.subs {
		keys[i] = s.key
	}
	return keys
}

// Stopped reports whether the handle was stopped.
func (h *WatchHandle) Stopped() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.stopped
}

func as[T any](v any) T {
	t, _ := v.(T)
	return t
}
