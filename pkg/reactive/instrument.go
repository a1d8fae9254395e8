package reactive

import "sync/atomic"

// Instrumentation receives engine events. Implementations must be safe for
// concurrent use and must not call back into the engine.
type Instrumentation interface {
	// Defined is called when a listener is registered under key.
	Defined(key string, listeners int)

	// Triggered is called when key is notified. bubbled reports whether the
	// notification reached root listeners.
	Triggered(key string, listeners int, bubbled bool)

	// Recomputed is called after a computed value re-ran its getter.
	Recomputed(key string)
}

type instrumentationHolder struct {
	Instrumentation
}

var instrumentation atomic.Pointer[instrumentationHolder]

// SetInstrumentation installs i as the process-wide instrumentation.
// Passing nil disables instrumentation.
func SetInstrumentation(i Instrumentation) {
	if i == nil {
		instrumentation.Store(nil)
		return
	}
	instrumentation.Store(&instrumentationHolder{i})
}

func instrumentDefined(key string, n int) {
	if h := instrumentation.Load(); h != nil {
		h.Defined(key, n)
	}
	debugLog("reactive: define", "key", key, "listeners", n)
}

func instrumentTriggered(key string, n int, bubbled bool) {
	if h := instrumentation.Load(); h != nil {
		h.Triggered(key, n, bubbled)
	}
	debugLog("reactive: trigger", "key", key, "listeners", n, "bubbled", bubbled)
}

func instrumentRecomputed(key string) {
	if h := instrumentation.Load(); h != nil {
		h.Recomputed(key)
	}
	debugLog("reactive: recompute", "key", key)
}
