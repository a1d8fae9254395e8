package main

import (
	"context"
	stderrors "errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/mattn/go-isatty"

	"github.com/vango-dev/reactkit/internal/config"
	rkerrors "github.com/vango-dev/reactkit/internal/errors"
	"github.com/vango-dev/reactkit/pkg/reactive"
	"github.com/vango-dev/reactkit/pkg/snapshot"
)

// app carries the state shared by every command.
type app struct {
	configPath string
	logLevel   string
	noColor    bool

	out    io.Writer
	errOut io.Writer
	color  bool

	cfg    *config.Config
	logger *slog.Logger
}

// setup loads the configuration and installs the logger. A missing config
// file is not an error when --config was not given.
func (a *app) setup() error {
	cfg, err := a.loadConfig()
	if err != nil {
		return err
	}
	if a.logLevel != "" {
		cfg.LogLevel = strings.ToLower(a.logLevel)
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	a.cfg = cfg

	a.color = !a.noColor && os.Getenv("NO_COLOR") == "" && isTerminal(a.out)
	if !a.color {
		rkerrors.DisableColors()
	}

	a.logger = slog.New(slog.NewTextHandler(a.errOut, &slog.HandlerOptions{Level: cfg.SlogLevel()}))
	reactive.SetLogger(a.logger)
	reactive.Debug.LogTriggers = cfg.Debug.LogTriggers
	return nil
}

func (a *app) loadConfig() (*config.Config, error) {
	if a.configPath != "" {
		return config.LoadFile(a.configPath)
	}
	cfg, err := config.Load(".")
	if err == nil {
		return cfg, nil
	}
	var e *rkerrors.Error
	if stderrors.As(err, &e) && e.Code == "C001" {
		cfg = config.New()
		cfg.ApplyEnv(os.LookupEnv)
		return cfg, nil
	}
	return nil, err
}

// reactiveOptions returns the engine options selected by the config.
func (a *app) reactiveOptions() []reactive.Option {
	var opts []reactive.Option
	if a.cfg.LegacyWrapMarker {
		opts = append(opts, reactive.WithLegacyWrapMarker())
	}
	return opts
}

// codec returns the snapshot codec selected by the config.
func (a *app) codec() (snapshot.Codec, error) {
	return snapshot.CodecByName(a.cfg.Snapshot.Codec)
}

// openStore opens the snapshot store selected by the config. The returned
// function releases it.
func (a *app) openStore() (snapshot.Store, func() error, error) {
	noop := func() error { return nil }
	s := a.cfg.Snapshot
	switch s.Driver {
	case config.DriverFile:
		store, err := snapshot.NewFileStore(a.cfg.SnapshotPath())
		if err != nil {
			return nil, nil, err
		}
		return store, noop, nil
	case config.DriverBolt:
		path := a.cfg.SnapshotPath()
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, nil, err
		}
		store, err := snapshot.OpenBolt(path)
		if err != nil {
			return nil, nil, err
		}
		return store, store.Close, nil
	case config.DriverS3:
		client := snapshot.NewS3Client(s.Region, s.Endpoint)
		return snapshot.NewS3Store(client, s.Bucket, s.Prefix), noop, nil
	case config.DriverMemory:
		store := snapshot.NewMemoryStore()
		return store, store.Close, nil
	}
	return nil, nil, fmt.Errorf("unknown snapshot driver %q", s.Driver)
}

// loadState reads a JSON or YAML state file into a new reactive tree.
func (a *app) loadState(path string) (*reactive.Root, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, rkerrors.New("X002").WithDetail("Could not read " + path).Wrap(err)
	}
	codec := snapshot.JSON
	if ext := strings.ToLower(filepath.Ext(path)); ext == ".yaml" || ext == ".yml" {
		codec = snapshot.YAML
	}
	v, err := codec.Unmarshal(data)
	if err != nil {
		return nil, rkerrors.New("X002").WithDetail("Could not decode " + path).Wrap(err)
	}
	return reactive.NewReactive(v, a.reactiveOptions()...), nil
}

// restoreState loads a stored snapshot into a new reactive tree.
func (a *app) restoreState(ctx context.Context, store snapshot.Store, name string) (*reactive.Root, error) {
	codec, err := a.codec()
	if err != nil {
		return nil, err
	}
	return snapshot.Restore(ctx, store, name, codec, a.reactiveOptions()...)
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
