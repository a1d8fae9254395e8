package reactive

import (
	"maps"
	"slices"
	"sync"
)

// ChangeOp names the kind of mutation reported in a Change.
type ChangeOp string

const (
	OpSet    ChangeOp = "set"
	OpDelete ChangeOp = "delete"
)

// Change describes one mutation of a reactive tree.
type Change struct {
	// Op is the kind of mutation.
	Op ChangeOp `json:"op"`

	// Key is the observer key of the mutated location.
	Key string `json:"key"`

	// Path is the dotted path of the location, relative to the root value.
	// The root value itself has an empty path. Paths are fixed when a
	// container is wrapped; moving a wrapped container does not rename it.
	Path string `json:"path"`

	New any `json:"new"`
	Old any `json:"old"`
}

// scope is shared by every container of one reactive root. It carries the
// root registry and root key down the wrap chain.
type scope struct {
	registry *Registry
	rootKey  string
	root     *Object

	legacyWrapMarker bool

	mu sync.Mutex
	// wrapped is the legacy side table of containers that already wrapped
	// one nested container, keyed by container ID.
	wrapped map[uint64]struct{}

	subscribers map[uint64]func(Change)
}

func newScope(reg *Registry, legacy bool) *scope {
	if reg == nil {
		reg = NewRegistry()
	}
	return &scope{
		registry:         reg,
		legacyWrapMarker: legacy,
		wrapped:          make(map[uint64]struct{}),
		subscribers:      make(map[uint64]func(Change)),
	}
}

// rootValue returns the stored root value without tracking.
func (s *scope) rootValue() any {
	v, _ := s.root.peek(rootProp)
	return v
}

// mayWrap reports whether container id may wrap a raw nested container.
func (s *scope) mayWrap(id uint64) bool {
	if !s.legacyWrapMarker {
		return true
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	_, done := s.wrapped[id]
	return !done
}

func (s *scope) markWrapped(id uint64) {
	if !s.legacyWrapMarker {
		return
	}
	s.mu.Lock()
	s.wrapped[id] = struct{}{}
	s.mu.Unlock()
}

// wrap returns a wrapper for a raw container, or v unchanged. The raw
// container is cloned so the caller's value is never modified.
func (s *scope) wrap(v any, path string) any {
	switch t := v.(type) {
	case map[string]any:
		return newObject(s, maps.Clone(t), path)
	case []any:
		return newArray(s, slices.Clone(t), path)
	}
	return v
}

// adopt converts wrappers that belong to another root into raw values so
// they are re-wrapped in this scope on the next read.
func (s *scope) adopt(v any) any {
	switch t := v.(type) {
	case *Object:
		if t.scope != s {
			return t.Snapshot()
		}
	case *Array:
		if t.scope != s {
			return t.Snapshot()
		}
	}
	return v
}

// trigger notifies the registry and the change subscribers.
func (s *scope) trigger(c Change) {
	s.registry.trigger(c.Key, s.rootKey, c.New, c.Old, s.rootValue)

	s.mu.Lock()
	subs := make([]func(Change), 0, len(s.subscribers))
	for _, fn := range s.subscribers {
		subs = append(subs, fn)
	}
	s.mu.Unlock()
	for _, fn := range subs {
		fn(c)
	}
}

func (s *scope) subscribe(fn func(Change)) func() {
	id := nextID()
	s.mu.Lock()
	s.subscribers[id] = fn
	s.mu.Unlock()
	return func() {
		s.mu.Lock()
		delete(s.subscribers, id)
		s.mu.Unlock()
	}
}

func isRawContainer(v any) bool {
	switch v.(type) {
	case map[string]any, []any:
		return true
	}
	return false
}

// snapshotValue returns a deep raw copy of v with every wrapper unwrapped.
func snapshotValue(v any) any {
	switch t := v.(type) {
	case *Object:
		return t.Snapshot()
	case *Array:
		return t.Snapshot()
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, e := range t {
			out[k] = snapshotValue(e)
		}
		return out
	case []any:
		out := make([]any, len(t))
		for i, e := range t {
			out[i] = snapshotValue(e)
		}
		return out
	}
	return v
}

func joinPath(parent, prop string) string {
	if parent == "" {
		return prop
	}
	return parent + "." + prop
}
