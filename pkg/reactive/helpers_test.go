package reactive

import "sync"

// call is one recorded effect invocation.
type call[T any] struct {
	newVal T
	oldVal T
}

// recorder collects effect invocations.
type recorder[T any] struct {
	mu    sync.Mutex
	calls []call[T]
}

func (r *recorder[T]) effect(newVal, oldVal T) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = append(r.calls, call[T]{newVal, oldVal})
}

func (r *recorder[T]) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.calls)
}

func (r *recorder[T]) last() call[T] {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.calls[len(r.calls)-1]
}

func (r *recorder[T]) at(i int) call[T] {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.calls[i]
}

// testListener is a Listener for registry tests.
type testListener struct {
	id    uint64
	calls []call[any]
}

func newTestListener() *testListener {
	return &testListener{id: nextID()}
}

func (l *testListener) Notify(newVal, oldVal any) {
	l.calls = append(l.calls, call[any]{newVal, oldVal})
}

func (l *testListener) ID() uint64 { return l.id }

func mustWatch[T any](t interface{ Fatalf(string, ...any) }, getter func() T, effect func(T, T)) *WatchHandle {
	h, err := Watch(getter, effect)
	if err != nil {
		t.Fatalf("Watch() error = %v", err)
	}
	return h
}

func mustComputed[T any](t interface{ Fatalf(string, ...any) }, getter func() T) *Computed[T] {
	c, err := NewComputed(getter)
	if err != nil {
		t.Fatalf("NewComputed() error = %v", err)
	}
	return c
}
