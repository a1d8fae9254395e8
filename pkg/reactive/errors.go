package reactive

import (
	"errors"

	rkerrors "github.com/vango-dev/reactkit/internal/errors"
)

// ErrNilGetter is returned when Watch or NewComputed receives a nil getter.
var ErrNilGetter = errors.New("reactive: getter is nil")

// ErrNilEffect is returned when Watch receives a nil effect callback.
var ErrNilEffect = errors.New("reactive: effect callback is nil")

// ErrNestedTracking is the panic value raised when a tracking pass starts
// while another pass of the same kind is already active on the goroutine.
// Creating a watcher inside another watcher's getter is the usual cause.
var ErrNestedTracking = errors.New("reactive: nested tracking pass")

// ErrPathNotFound is returned by GetPath and SetPath when an intermediate
// segment does not exist.
var ErrPathNotFound = errors.New("reactive: path not found")

// ErrNotContainer is returned when a path segment addresses a scalar.
var ErrNotContainer = errors.New("reactive: path does not address a container")

func nilGetterError() error {
	return rkerrors.New("R001").Wrap(ErrNilGetter)
}

func nilEffectError() error {
	return rkerrors.New("R002").Wrap(ErrNilEffect)
}

func nestedTrackingError(kind string) error {
	return rkerrors.New("R003").
		WithDetail("A " + kind + " tracking pass is already running on this goroutine.").
		Wrap(ErrNestedTracking)
}
