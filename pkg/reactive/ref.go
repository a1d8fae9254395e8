package reactive

// Primitive is the set of payload types accepted by Ref.
type Primitive interface {
	~bool | ~string |
		~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Ref is a reactive scalar. It is a Root whose value is always a T.
//
//	count := reactive.NewRef(1)
//	reactive.Watch(count.Value, func(n, o int) { fmt.Println(n, o) })
//	count.Set(2) // prints "2 1"
type Ref[T Primitive] struct {
	root *Root
}

// NewRef creates a reactive scalar holding v.
func NewRef[T Primitive](v T, opts ...Option) *Ref[T] {
	return &Ref[T]{root: NewReactive(v, opts...)}
}

// Value returns the current value, recording a dependency.
func (r *Ref[T]) Value() T {
	v, _ := r.root.Value().(T)
	return v
}

// Set stores v. Listeners are notified only when v differs from the current
// value.
func (r *Ref[T]) Set(v T) {
	r.root.Set(v)
}

// Update applies fn to the current value and stores the result. The read
// is not tracked.
func (r *Ref[T]) Update(fn func(T) T) {
	cur, _ := r.root.Peek().(T)
	r.Set(fn(cur))
}

// Root returns the underlying reactive root.
func (r *Ref[T]) Root() *Root {
	return r.root
}
