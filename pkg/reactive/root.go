package reactive

// rootProp is the single property of the synthetic root container.
const rootProp = "value"

// Root is a reactive tree. The tree hangs off a synthetic container with a
// single "value" property so that scalars, objects and arrays are observed
// the same way.
type Root struct {
	holder *Object
}

// NewReactive wraps v in a new reactive root. Maps of type map[string]any
// and slices of type []any become *Object and *Array wrappers when first
// read; v itself is never modified.
func NewReactive(v any, opts ...Option) *Root {
	var o rootOptions
	for _, opt := range opts {
		opt(&o)
	}

	s := newScope(o.registry, o.legacyWrapMarker)
	holder := newObject(s, map[string]any{rootProp: v}, "")
	s.root = holder
	s.rootKey = holder.Key(rootProp)
	return &Root{holder: holder}
}

// Value returns the root value, recording a dependency on the root key.
func (r *Root) Value() any {
	return r.holder.Get(rootProp)
}

// Peek returns the stored root value without wrapping or tracking.
func (r *Root) Peek() any {
	v, _ := r.holder.peek(rootProp)
	return v
}

// Set replaces the root value.
func (r *Root) Set(v any) {
	r.holder.Set(rootProp, v)
}

// Object returns the root value as an *Object.
func (r *Root) Object() (*Object, bool) {
	o, ok := r.Value().(*Object)
	return o, ok
}

// Array returns the root value as an *Array.
func (r *Root) Array() (*Array, bool) {
	a, ok := r.Value().(*Array)
	return a, ok
}

// Snapshot returns a deep copy of the root value as plain maps, slices and
// scalars.
func (r *Root) Snapshot() any {
	return snapshotValue(r.Peek())
}

// Key returns the root observer key. Every mutation below the root bubbles
// to the listeners of this key.
func (r *Root) Key() string {
	return r.holder.scope.rootKey
}

// Registry returns the registry that records the dependencies of the tree.
func (r *Root) Registry() *Registry {
	return r.holder.scope.registry
}

// Subscribe calls fn after every mutation of the tree, after the registry
// listeners ran. It returns a function that cancels the subscription.
// Subscribers are not part of dependency tracking and are never purged.
func (r *Root) Subscribe(fn func(Change)) (cancel func()) {
	return r.holder.scope.subscribe(fn)
}

// Plain returns v as plain maps, slices and scalars, unwrapping any *Object
// or *Array. It does not record dependencies.
func Plain(v any) any {
	return snapshotValue(v)
}
