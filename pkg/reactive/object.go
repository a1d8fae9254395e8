package reactive

import (
	"encoding/json"
	"slices"
	"strconv"
	"sync"
)

// Object is the reactive wrapper of a map[string]any container.
//
// Reads through Get and Lookup record dependencies for the active tracking
// pass; Set and Delete notify the listeners of the touched property and
// bubble to the root listeners. Raw nested containers are wrapped on first
// read and the wrapper is stored back in place of the raw value.
type Object struct {
	id    uint64
	scope *scope
	path  string

	mu   sync.RWMutex
	data map[string]any
}

func newObject(s *scope, data map[string]any, path string) *Object {
	if data == nil {
		data = make(map[string]any)
	}
	return &Object{id: nextID(), scope: s, path: path, data: data}
}

// ID returns the identity token assigned when the object was wrapped.
func (o *Object) ID() uint64 {
	return o.id
}

// Key returns the observer key of prop.
func (o *Object) Key(prop string) string {
	return strconv.FormatUint(o.id, 10) + "." + prop
}

// Path returns the dotted path of the object inside its root.
func (o *Object) Path() string {
	return o.path
}

func (o *Object) pathOf(prop string) string {
	if o == o.scope.root {
		return ""
	}
	return joinPath(o.path, prop)
}

// peek returns the stored value of prop without wrapping or tracking.
func (o *Object) peek(prop string) (any, bool) {
	o.mu.RLock()
	defer o.mu.RUnlock()
	v, ok := o.data[prop]
	return v, ok
}

// load returns the value of prop, wrapping a raw nested container first.
func (o *Object) load(prop string) (any, bool) {
	v, ok := o.peek(prop)
	if !ok || !isRawContainer(v) || !o.scope.mayWrap(o.id) {
		return v, ok
	}

	o.mu.Lock()
	v, ok = o.data[prop]
	if ok && isRawContainer(v) {
		v = o.scope.wrap(v, o.pathOf(prop))
		o.data[prop] = v
	}
	o.mu.Unlock()
	o.scope.markWrapped(o.id)
	return v, ok
}

// Get returns the value of prop, or nil when it is absent.
func (o *Object) Get(prop string) any {
	v, _ := o.Lookup(prop)
	return v
}

// Lookup returns the value of prop and whether it is present.
func (o *Object) Lookup(prop string) (any, bool) {
	v, ok := o.load(prop)
	recordRead(o.scope.registry, o.Key(prop), v)
	return v, ok
}

// Has reports whether prop is present. It does not record a dependency.
func (o *Object) Has(prop string) bool {
	_, ok := o.peek(prop)
	return ok
}

// Set stores v under prop. Writing the value already stored is a no-op and
// notifies nobody; any other write, including adding a new property,
// notifies the listeners of prop and the root listeners.
func (o *Object) Set(prop string, v any) {
	v = o.scope.adopt(v)

	o.mu.Lock()
	old, existed := o.data[prop]
	if existed && sameValue(old, v) {
		o.mu.Unlock()
		return
	}
	o.data[prop] = v
	o.mu.Unlock()

	o.scope.trigger(Change{
		Op:   OpSet,
		Key:  o.Key(prop),
		Path: o.pathOf(prop),
		New:  v,
		Old:  old,
	})
}

// Delete removes prop. Its listeners are notified once with a nil new value
// and then dropped, so re-adding prop later does not reach them. Deleting an
// absent property does nothing and reports false.
func (o *Object) Delete(prop string) bool {
	o.mu.Lock()
	old, ok := o.data[prop]
	if !ok {
		o.mu.Unlock()
		return false
	}
	delete(o.data, prop)
	o.mu.Unlock()

	key := o.Key(prop)
	o.scope.trigger(Change{
		Op:   OpDelete,
		Key:  key,
		Path: o.pathOf(prop),
		Old:  old,
	})
	o.scope.registry.removeAll(key)
	return true
}

// Len returns the number of properties.
func (o *Object) Len() int {
	o.mu.RLock()
	defer o.mu.RUnlock()
	return len(o.data)
}

// Keys returns the property names, sorted.
func (o *Object) Keys() []string {
	o.mu.RLock()
	keys := make([]string, 0, len(o.data))
	for k := range o.data {
		keys = append(keys, k)
	}
	o.mu.RUnlock()
	slices.Sort(keys)
	return keys
}

// Snapshot returns a deep copy of the object as plain maps, slices and
// scalars.
func (o *Object) Snapshot() map[string]any {
	o.mu.RLock()
	defer o.mu.RUnlock()
	out := make(map[string]any, len(o.data))
	for k, v := range o.data {
		out[k] = snapshotValue(v)
	}
	return out
}

// MarshalJSON encodes the object as a plain JSON object.
func (o *Object) MarshalJSON() ([]byte, error) {
	return json.Marshal(o.Snapshot())
}
