package reactive

import (
	"runtime"
	"sync"
)

// effectSlot is the subscription request of an in-progress watch pass.
type effectSlot struct {
	// target is the value the getter returned before tracking started.
	// Only reads that produce this same value subscribe the listener.
	target any

	listener Listener

	// defined collects every (registry, key) pair the listener was
	// registered under during the pass.
	defined []subscription
}

// subscription is one registry entry a listener was added to.
type subscription struct {
	registry *Registry
	key      string
}

// TrackingContext holds the tracking state of a goroutine.
// Each goroutine has its own context so that tracked reads on one goroutine
// never subscribe listeners that belong to another.
type TrackingContext struct {
	// effect is the active watch pass, or nil.
	effect *effectSlot

	// computed is the recompute listener of the active computed pass, or nil.
	computed Listener
}

// trackingContexts stores per-goroutine tracking contexts.
var trackingContexts sync.Map

// getGoroutineID returns the ID of the current goroutine, parsed from the
// "goroutine <id> " header of its stack trace.
func getGoroutineID() uint64 {
	var buf [64]byte
	n := runtime.Stack(buf[:], false)

	var id uint64
	for i := 10; i < n; i++ {
		if buf[i] == ' ' {
			break
		}
		id = id*10 + uint64(buf[i]-'0')
	}
	return id
}

// getTrackingContext returns the tracking context for the current goroutine,
// creating it on first use.
func getTrackingContext() *TrackingContext {
	gid := getGoroutineID()
	if ctx, ok := trackingContexts.Load(gid); ok {
		return ctx.(*TrackingContext)
	}
	ctx := &TrackingContext{}
	trackingContexts.Store(gid, ctx)
	return ctx
}

// peekTrackingContext returns the current goroutine's context without
// creating one. Plain reads outside any pass go through here.
func peekTrackingContext() *TrackingContext {
	if ctx, ok := trackingContexts.Load(getGoroutineID()); ok {
		return ctx.(*TrackingContext)
	}
	return nil
}

// releaseTrackingContext drops the context once both slots are empty so
// short-lived goroutines do not leak entries.
func releaseTrackingContext(ctx *TrackingContext) {
	if ctx.effect == nil && ctx.computed == nil {
		trackingContexts.Delete(getGoroutineID())
	}
}

// trackEffect runs fn with slot installed as the active watch pass.
// The slot is cleared even if fn panics.
func trackEffect(slot *effectSlot, fn func()) {
	ctx := getTrackingContext()
	if ctx.effect != nil {
		panic(nestedTrackingError("watch"))
	}
	ctx.effect = slot
	defer func() {
		ctx.effect = nil
		releaseTrackingContext(ctx)
	}()
	fn()
}

// trackComputed runs fn with l installed as the active computed pass.
func trackComputed(l Listener, fn func()) {
	ctx := getTrackingContext()
	if ctx.computed != nil {
		panic(nestedTrackingError("computed"))
	}
	ctx.computed = l
	defer func() {
		ctx.computed = nil
		releaseTrackingContext(ctx)
	}()
	fn()
}

// Untracked runs fn with tracking suspended on the current goroutine, so
// reads inside fn subscribe nothing.
func Untracked(fn func()) {
	ctx := peekTrackingContext()
	if ctx == nil {
		fn()
		return
	}
	effect, computed := ctx.effect, ctx.computed
	ctx.effect, ctx.computed = nil, nil
	defer func() {
		ctx.effect, ctx.computed = effect, computed
		// A pass started inside fn may have released the context.
		trackingContexts.Store(getGoroutineID(), ctx)
	}()
	fn()
}

// IsTracking reports whether a watch or computed pass is active on the
// current goroutine.
func IsTracking() bool {
	ctx := peekTrackingContext()
	return ctx != nil && (ctx.effect != nil || ctx.computed != nil)
}

// recordRead subscribes the active listeners of the current goroutine to key
// after a read that produced val.
func recordRead(r *Registry, key string, val any) {
	ctx := peekTrackingContext()
	if ctx == nil {
		return
	}
	var pending []Listener
	if ctx.computed != nil {
		pending = append(pending, ctx.computed)
	}
	if e := ctx.effect; e != nil && sameValue(val, e.target) {
		pending = append(pending, e.listener)
		e.defined = append(e.defined, subscription{registry: r, key: key})
	}
	if len(pending) > 0 {
		r.define(key, pending...)
	}
}

// recordComputedRead subscribes the active passes to the own key of a
// computed value. Unlike recordRead the watch pass is subscribed regardless
// of the value read.
func recordComputedRead(r *Registry, key string) {
	ctx := peekTrackingContext()
	if ctx == nil {
		return
	}
	var pending []Listener
	if ctx.computed != nil {
		pending = append(pending, ctx.computed)
	}
	if e := ctx.effect; e != nil {
		pending = append(pending, e.listener)
		e.defined = append(e.defined, subscription{registry: r, key: key})
	}
	if len(pending) > 0 {
		r.define(key, pending...)
	}
}
