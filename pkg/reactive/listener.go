package reactive

// Listener is anything that can be notified when an observed location
// changes. It is implemented by watch effects and by computed recompute
// hooks.
type Listener interface {
	// Notify delivers the new and previous value of the observed location.
	// Root-level listeners notified through bubbling receive the current
	// root value twice.
	Notify(newVal, oldVal any)

	// ID returns a unique identifier for this listener.
	// A registry entry holds at most one listener per ID.
	ID() uint64
}

// listenerFunc adapts a plain function to the Listener interface.
type listenerFunc struct {
	id uint64
	fn func(newVal, oldVal any)
}

func newListenerFunc(fn func(newVal, oldVal any)) *listenerFunc {
	return &listenerFunc{id: nextID(), fn: fn}
}

// Notify implements Listener.
func (l *listenerFunc) Notify(newVal, oldVal any) { l.fn(newVal, oldVal) }

// ID implements Listener.
func (l *listenerFunc) ID() uint64 { return l.id }
