package snapshot

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"time"

	rkerrors "github.com/vango-dev/reactkit/internal/errors"
	"github.com/vango-dev/reactkit/pkg/reactive"
)

// PersistOption configures Persist.
type PersistOption func(*persistConfig)

type persistConfig struct {
	logger *slog.Logger
	onSave func(d time.Duration, err error)
}

// WithLogger sets the logger used to report failed saves.
func WithLogger(l *slog.Logger) PersistOption {
	return func(c *persistConfig) {
		c.logger = l
	}
}

// WithSaveHook registers fn to be called after every save attempt.
func WithSaveHook(fn func(d time.Duration, err error)) PersistOption {
	return func(c *persistConfig) {
		c.onSave = fn
	}
}

// Save encodes the current tree and stores it under name.
func Save(ctx context.Context, root *reactive.Root, store Store, name string, codec Codec) error {
	data, err := codec.Marshal(root.Snapshot())
	if err != nil {
		return rkerrors.New("S002").WithDetail("encoding " + name + " as " + codec.Name()).Wrap(err)
	}
	if err := store.Save(ctx, name, data); err != nil {
		return rkerrors.New("S002").Wrap(err)
	}
	return nil
}

// Persist saves the tree once and then again after every mutation, until
// the returned handle is stopped. Saves run synchronously on the goroutine
// that mutated the tree; failures after the first save are logged and
// reported to the save hook.
func Persist(ctx context.Context, root *reactive.Root, store Store, name string, codec Codec, opts ...PersistOption) (*reactive.WatchHandle, error) {
	cfg := persistConfig{logger: slog.New(slog.NewTextHandler(io.Discard, nil))}
	for _, opt := range opts {
		opt(&cfg)
	}

	save := func() error {
		start := time.Now()
		err := Save(ctx, root, store, name, codec)
		if cfg.onSave != nil {
			cfg.onSave(time.Since(start), err)
		}
		return err
	}

	if err := save(); err != nil {
		return nil, err
	}
	return reactive.Watch(root.Value, func(_, _ any) {
		if err := save(); err != nil {
			cfg.logger.Error("snapshot save failed", "name", name, "error", err)
			return
		}
		cfg.logger.Debug("snapshot saved", "name", name)
	})
}

// Restore loads the snapshot stored under name into a new tree.
func Restore(ctx context.Context, store Store, name string, codec Codec, opts ...reactive.Option) (*reactive.Root, error) {
	data, err := store.Load(ctx, name)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, rkerrors.New("S001").Wrap(err)
		}
		return nil, err
	}
	v, err := codec.Unmarshal(data)
	if err != nil {
		return nil, rkerrors.New("S003").WithDetail("decoding " + name + " as " + codec.Name()).Wrap(err)
	}
	return reactive.NewReactive(v, opts...), nil
}
