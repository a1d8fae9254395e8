// Package reactive provides a dependency-tracking reactive state engine.
//
// A reactive tree wraps nested map[string]any and []any values. Reads made
// while a watcher or computed value is being set up are recorded as
// dependencies; later writes notify exactly the listeners that read the
// written location, and every mutation below the root also reaches the
// listeners of the root value.
//
// # Core Types
//
// Ref[T] is a reactive scalar:
//
//	count := NewRef(1)
//	Watch(count.Value, func(n, o int) {})
//	count.Set(2) // effect receives (2, 1)
//
// Root is a reactive tree of objects and arrays:
//
//	state := NewReactive(map[string]any{"user": map[string]any{"name": "ann"}})
//	obj, _ := state.Object()
//	user := obj.Get("user").(*Object)
//	h, _ := Watch(func() any { return user.Get("name") }, func(n, o any) {})
//	user.Set("name", "bob") // effect receives ("bob", "ann")
//	Unwatch(h)
//
// Computed[T] is a cached derived value that is itself observable:
//
//	next, _ := NewComputed(func() int { return count.Value() + 1 })
//	Watch(next.Value, func(n, o int) {})
//
// # Tracking
//
// Tracking state is kept per goroutine. A watcher's getter runs with tracking
// enabled only on the goroutine that called Watch, so concurrent setups do
// not see each other's reads. Starting a watch from inside another
// watcher's getter panics with an error wrapping ErrNestedTracking.
//
// # Deletion
//
// Deleting a property notifies its listeners once with a nil new value and
// then drops them. Re-adding the property later only reaches listeners
// registered after the re-add.
package reactive
