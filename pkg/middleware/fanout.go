package middleware

import "github.com/vango-dev/reactkit/pkg/reactive"

// fanout forwards engine events to several instrumentations.
type fanout []reactive.Instrumentation

// Chain combines instrumentations so that both metrics and tracing can be
// installed with a single reactive.SetInstrumentation call. Nil entries are
// skipped.
func Chain(insts ...reactive.Instrumentation) reactive.Instrumentation {
	var f fanout
	for _, i := range insts {
		if i != nil {
			f = append(f, i)
		}
	}
	return f
}

func (f fanout) Defined(key string, listeners int) {
	for _, i := range f {
		i.Defined(key, listeners)
	}
}

func (f fanout) Triggered(key string, listeners int, bubbled bool) {
	for _, i := range f {
		i.Triggered(key, listeners, bubbled)
	}
}

func (f fanout) Recomputed(key string) {
	for _, i := range f {
		i.Recomputed(key)
	}
}
