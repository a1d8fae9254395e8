package snapshot

import (
	"context"
	"errors"
	"maps"
	"slices"
	"sync"
)

// ErrStoreClosed is returned by every MemoryStore operation after Close.
var ErrStoreClosed = errors.New("snapshot: store closed")

// MemoryStore keeps snapshots in process memory. It suits tests and
// inspectors that do not need to outlive the process.
type MemoryStore struct {
	mu        sync.RWMutex
	snapshots map[string][]byte
	closed    bool
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{snapshots: make(map[string][]byte)}
}

// Save stores a copy of data under name.
func (m *MemoryStore) Save(ctx context.Context, name string, data []byte) error {
	if err := validateName(name); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return ErrStoreClosed
	}
	m.snapshots[name] = slices.Clone(data)
	return nil
}

// Load returns a copy of the snapshot stored under name.
func (m *MemoryStore) Load(ctx context.Context, name string) ([]byte, error) {
	if err := validateName(name); err != nil {
		return nil, err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.closed {
		return nil, ErrStoreClosed
	}
	data, ok := m.snapshots[name]
	if !ok {
		return nil, notFound(name)
	}
	return slices.Clone(data), nil
}

// Delete removes the snapshot stored under name.
func (m *MemoryStore) Delete(ctx context.Context, name string) error {
	if err := validateName(name); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return ErrStoreClosed
	}
	if _, ok := m.snapshots[name]; !ok {
		return notFound(name)
	}
	delete(m.snapshots, name)
	return nil
}

// List returns the stored names, sorted.
func (m *MemoryStore) List(ctx context.Context) ([]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.closed {
		return nil, ErrStoreClosed
	}
	return slices.Sorted(maps.Keys(m.snapshots)), nil
}

// Count returns the number of stored snapshots.
func (m *MemoryStore) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.snapshots)
}

// Close drops every snapshot. Later operations fail with ErrStoreClosed.
func (m *MemoryStore) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.closed = true
	m.snapshots = nil
	return nil
}
