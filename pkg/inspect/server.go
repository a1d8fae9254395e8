package inspect

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/vango-dev/reactkit/pkg/middleware"
	"github.com/vango-dev/reactkit/pkg/reactive"
)

// maxBodySize caps PUT request bodies.
const maxBodySize = 1 << 20

// Option configures a Server.
type Option func(*Server)

// WithLogger sets the logger. The default discards everything.
func WithLogger(l *slog.Logger) Option {
	return func(s *Server) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithMetrics records HTTP and stream metrics in m and serves gatherer on
// /metrics.
func WithMetrics(m *middleware.Metrics, gatherer prometheus.Gatherer) Option {
	return func(s *Server) {
		s.metrics = m
		s.gatherer = gatherer
	}
}

// WithTracing opens a span per request.
func WithTracing(t *middleware.Tracing) Option {
	return func(s *Server) {
		s.tracing = t
	}
}

// WithAllowOrigins lists the origins allowed to open the change stream.
// "*" allows every origin. Without this option only same-origin requests
// are accepted.
func WithAllowOrigins(origins ...string) Option {
	return func(s *Server) {
		s.allowOrigins = origins
	}
}

// Server is the HTTP inspector of one reactive tree.
type Server struct {
	root   *reactive.Root
	logger *slog.Logger

	metrics      *middleware.Metrics
	gatherer     prometheus.Gatherer
	tracing      *middleware.Tracing
	allowOrigins []string

	hub         *hub
	router      chi.Router
	unsubscribe func()
}

// New creates an inspector for root and subscribes it to the tree's
// changes. Call Close to release the subscription and the stream clients.
func New(root *reactive.Root, opts ...Option) *Server {
	s := &Server{
		root:   root,
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(s)
	}

	s.hub = newHub(s.logger, s.allowOrigins)
	if s.metrics != nil {
		s.hub.onConnect = s.metrics.StreamClientConnected
		s.hub.onDisconnect = s.metrics.StreamClientDisconnected
	}
	s.unsubscribe = root.Subscribe(s.hub.broadcast)
	s.router = s.routes()
	return s
}

func (s *Server) routes() chi.Router {
	r := chi.NewRouter()
	r.Use(chimw.Recoverer)
	if s.tracing != nil {
		r.Use(s.tracing.Middleware)
	}
	if s.metrics != nil {
		r.Use(s.metrics.Middleware)
	}

	r.Get("/state", s.handleGetState)
	r.Put("/state", s.handlePutState)
	r.Get("/state/*", s.handleGetState)
	r.Put("/state/*", s.handlePutState)
	r.Delete("/state/*", s.handleDeleteState)
	r.Get("/keys", s.handleKeys)
	r.Get("/ws", s.hub.handleWebSocket)
	if s.gatherer != nil {
		r.Handle("/metrics", promhttp.HandlerFor(s.gatherer, promhttp.HandlerOpts{}))
	}
	return r
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// Clients returns the number of connected stream clients.
func (s *Server) Clients() int {
	return s.hub.clientCount()
}

// Close unsubscribes from the tree and disconnects every stream client.
func (s *Server) Close() {
	s.unsubscribe()
	s.hub.close()
}

// ListenAndServe serves the inspector on addr until ctx is cancelled, then
// shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return err
	}
	return s.Serve(ctx, ln)
}

// Serve serves the inspector on ln until ctx is cancelled.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:           s,
		ReadHeaderTimeout: 10 * time.Second,
		BaseContext:       func(net.Listener) context.Context { return ctx },
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Serve(ln)
	}()
	s.logger.Info("inspector listening", "addr", ln.Addr().String())

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	s.hub.close()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
