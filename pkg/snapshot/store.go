package snapshot

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// ErrNotFound is returned by Load and Delete when no snapshot has the name.
var ErrNotFound = errors.New("snapshot: not found")

// ErrInvalidName is returned for empty names and names containing path
// separators.
var ErrInvalidName = errors.New("snapshot: invalid name")

// Store keeps named snapshots.
type Store interface {
	// Save writes data under name, replacing any previous snapshot.
	Save(ctx context.Context, name string, data []byte) error

	// Load returns the snapshot stored under name, or ErrNotFound.
	Load(ctx context.Context, name string) ([]byte, error)

	// Delete removes the snapshot stored under name, or returns ErrNotFound.
	Delete(ctx context.Context, name string) error

	// List returns the stored names, sorted.
	List(ctx context.Context) ([]string, error)
}

func validateName(name string) error {
	if name == "" || name == "." || name == ".." || strings.ContainsAny(name, `/\`) {
		return fmt.Errorf("%w: %q", ErrInvalidName, name)
	}
	return nil
}

func notFound(name string) error {
	return fmt.Errorf("snapshot %q: %w", name, ErrNotFound)
}
