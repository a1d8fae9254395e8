package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"

	"github.com/vango-dev/reactkit/internal/config"
	"github.com/vango-dev/reactkit/pkg/inspect"
	"github.com/vango-dev/reactkit/pkg/middleware"
	"github.com/vango-dev/reactkit/pkg/reactive"
	"github.com/vango-dev/reactkit/pkg/snapshot"
)

func serveCmd(a *app) *cobra.Command {
	var (
		statePath string
		restore   string
		persist   string
		addr      string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve a reactive tree over HTTP",
		Long: `Start the inspector for a reactive tree.

The tree is loaded from --state or restored from the snapshot store
with --restore. With --persist the tree is saved to the store after
every change.

Endpoints:
  GET    /state, /state/{path}
  PUT    /state/{path}
  DELETE /state/{path}
  GET    /keys
  GET    /ws
  GET    /metrics

Examples:
  reactkit serve --state state.json
  reactkit serve --restore live --persist live --addr :7070`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if addr != "" {
				a.cfg.Inspect.Addr = addr
			}
			return a.runServe(cmd.Context(), statePath, restore, persist)
		},
	}

	cmd.Flags().StringVarP(&statePath, "state", "s", "", "State file (.json, .yaml or .yml)")
	cmd.Flags().StringVar(&restore, "restore", "", "Restore the tree from this stored snapshot")
	cmd.Flags().StringVar(&persist, "persist", "", "Save the tree under this snapshot name after every change")
	cmd.Flags().StringVarP(&addr, "addr", "a", "", "Listen address (default from config, "+config.DefaultInspectAddr+")")
	cmd.MarkFlagsMutuallyExclusive("state", "restore")

	return cmd
}

func (a *app) runServe(ctx context.Context, statePath, restore, persist string) error {
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	var store snapshot.Store
	if restore != "" || persist != "" {
		s, closeStore, err := a.openStore()
		if err != nil {
			return err
		}
		defer closeStore()
		store = s
	}

	var (
		root *reactive.Root
		err  error
	)
	switch {
	case restore != "":
		root, err = a.restoreState(ctx, store, restore)
	case statePath != "":
		root, err = a.loadState(statePath)
	default:
		root = reactive.NewReactive(map[string]any{}, a.reactiveOptions()...)
	}
	if err != nil {
		return err
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	metrics := middleware.NewMetrics(
		middleware.WithNamespace(a.cfg.Metrics.Namespace),
		middleware.WithRegistry(reg),
	)
	tracing := middleware.NewTracing()
	reactive.SetInstrumentation(middleware.Chain(metrics, tracing))
	defer reactive.SetInstrumentation(nil)

	if persist != "" {
		codec, err := a.codec()
		if err != nil {
			return err
		}
		driver := a.cfg.Snapshot.Driver
		h, err := snapshot.Persist(ctx, root, store, persist, codec,
			snapshot.WithLogger(a.logger),
			snapshot.WithSaveHook(func(d time.Duration, err error) {
				metrics.RecordSnapshotSave(driver, d, err)
			}),
		)
		if err != nil {
			return err
		}
		defer h.Stop()
		a.info("Persisting to %s snapshot %s", driver, persist)
	}

	srv := inspect.New(root,
		inspect.WithLogger(a.logger),
		inspect.WithMetrics(metrics, reg),
		inspect.WithTracing(tracing),
		inspect.WithAllowOrigins(a.cfg.Inspect.AllowOrigins...),
	)
	defer srv.Close()

	a.success("Inspector on http://%s", a.cfg.Inspect.Addr)
	return srv.ListenAndServe(ctx, a.cfg.Inspect.Addr)
}
