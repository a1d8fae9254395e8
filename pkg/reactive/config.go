package reactive

import (
	"io"
	"log/slog"
	"sync/atomic"
)

// DebugConfig controls diagnostic output of the engine.
type DebugConfig struct {
	// LogTriggers logs every define, trigger and recompute at debug level.
	LogTriggers bool
}

// Debug is the package-wide debug configuration. Set it at startup, before
// any reactive values are created.
var Debug DebugConfig

var logger atomic.Pointer[slog.Logger]

func init() {
	logger.Store(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

// SetLogger installs the logger used for Debug traces. A nil logger restores
// the silent default.
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	logger.Store(l)
}

func debugLog(msg string, args ...any) {
	if !Debug.LogTriggers {
		return
	}
	logger.Load().Debug(msg, args...)
}

// Option configures a reactive root.
type Option func(*rootOptions)

type rootOptions struct {
	legacyWrapMarker bool
	registry         *Registry
}

// WithLegacyWrapMarker marks a container as wrapped after its first nested
// container is wrapped, so later nested containers of the same parent are
// returned raw. Only useful to reproduce older behaviour.
func WithLegacyWrapMarker() Option {
	return func(o *rootOptions) {
		o.legacyWrapMarker = true
	}
}

// WithRegistry makes the root record its dependencies in r instead of a
// fresh registry.
func WithRegistry(r *Registry) Option {
	return func(o *rootOptions) {
		o.registry = r
	}
}
