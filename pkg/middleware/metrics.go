package middleware

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// MetricsConfig configures the Prometheus instrumentation.
type MetricsConfig struct {
	// Namespace is the metrics namespace (default: "reactkit").
	Namespace string

	// Subsystem is the metrics subsystem (default: "").
	Subsystem string

	// ConstLabels are constant labels added to all metrics.
	ConstLabels prometheus.Labels

	// Buckets are the histogram buckets for durations.
	// Default: prometheus.DefBuckets
	Buckets []float64

	// Registry is the Prometheus registry to use.
	// Default: prometheus.DefaultRegisterer
	Registry prometheus.Registerer
}

// MetricsOption configures the Prometheus instrumentation.
type MetricsOption func(*MetricsConfig)

// WithNamespace sets the metrics namespace.
func WithNamespace(namespace string) MetricsOption {
	return func(c *MetricsConfig) {
		c.Namespace = namespace
	}
}

// WithSubsystem sets the metrics subsystem.
func WithSubsystem(subsystem string) MetricsOption {
	return func(c *MetricsConfig) {
		c.Subsystem = subsystem
	}
}

// WithConstLabels sets constant labels for all metrics.
func WithConstLabels(labels prometheus.Labels) MetricsOption {
	return func(c *MetricsConfig) {
		c.ConstLabels = labels
	}
}

// WithBuckets sets the duration histogram buckets.
func WithBuckets(buckets []float64) MetricsOption {
	return func(c *MetricsConfig) {
		c.Buckets = buckets
	}
}

// WithRegistry sets the Prometheus registry.
func WithRegistry(registry prometheus.Registerer) MetricsOption {
	return func(c *MetricsConfig) {
		c.Registry = registry
	}
}

func defaultMetricsConfig() MetricsConfig {
	return MetricsConfig{
		Namespace: "reactkit",
		Buckets:   prometheus.DefBuckets,
		Registry:  prometheus.DefaultRegisterer,
	}
}

// fanoutBuckets bound the number of listeners reached by one trigger.
var fanoutBuckets = []float64{0, 1, 2, 5, 10, 25, 50, 100}

// Metrics collects Prometheus metrics for the reactive engine, the
// inspector HTTP API and snapshot persistence. It implements
// reactive.Instrumentation.
type Metrics struct {
	definesTotal     prometheus.Counter
	triggersTotal    *prometheus.CounterVec
	triggerFanout    prometheus.Histogram
	recomputesTotal  prometheus.Counter
	requestsTotal    *prometheus.CounterVec
	requestDuration  *prometheus.HistogramVec
	snapshotSaves    *prometheus.CounterVec
	snapshotDuration *prometheus.HistogramVec
	streamClients    prometheus.Gauge
}

// NewMetrics registers the metrics with the configured registry.
//
// Metrics collected:
//   - reactkit_defines_total: listener registrations
//   - reactkit_triggers_total: notifications by whether they bubbled to the root
//   - reactkit_trigger_fanout: listeners reached per notification
//   - reactkit_recomputes_total: computed value recomputations
//   - reactkit_http_requests_total: inspector requests by route and status
//   - reactkit_http_request_duration_seconds: inspector request latency
//   - reactkit_snapshot_saves_total: snapshot writes by driver and status
//   - reactkit_snapshot_save_duration_seconds: snapshot write latency
//   - reactkit_stream_clients: connected change stream clients
//
// Example:
//
//	m := middleware.NewMetrics(middleware.WithNamespace("myapp"))
//	reactive.SetInstrumentation(m)
//	http.Handle("/metrics", promhttp.Handler())
func NewMetrics(opts ...MetricsOption) *Metrics {
	config := defaultMetricsConfig()
	for _, opt := range opts {
		opt(&config)
	}
	factory := promauto.With(config.Registry)

	return &Metrics{
		definesTotal: factory.NewCounter(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "defines_total",
			Help:        "Total number of listener registrations",
			ConstLabels: config.ConstLabels,
		}),

		triggersTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "triggers_total",
			Help:        "Total number of change notifications",
			ConstLabels: config.ConstLabels,
		}, []string{"bubbled"}),

		triggerFanout: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "trigger_fanout",
			Help:        "Listeners reached by a single notification",
			ConstLabels: config.ConstLabels,
			Buckets:     fanoutBuckets,
		}),

		recomputesTotal: factory.NewCounter(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "recomputes_total",
			Help:        "Total number of computed value recomputations",
			ConstLabels: config.ConstLabels,
		}),

		requestsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "http_requests_total",
			Help:        "Total number of inspector requests",
			ConstLabels: config.ConstLabels,
		}, []string{"route", "status"}),

		requestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "http_request_duration_seconds",
			Help:        "Inspector request duration in seconds",
			ConstLabels: config.ConstLabels,
			Buckets:     config.Buckets,
		}, []string{"route"}),

		snapshotSaves: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "snapshot_saves_total",
			Help:        "Total number of snapshot writes",
			ConstLabels: config.ConstLabels,
		}, []string{"driver", "status"}),

		snapshotDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "snapshot_save_duration_seconds",
			Help:        "Snapshot write duration in seconds",
			ConstLabels: config.ConstLabels,
			Buckets:     config.Buckets,
		}, []string{"driver"}),

		streamClients: factory.NewGauge(prometheus.GaugeOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "stream_clients",
			Help:        "Number of connected change stream clients",
			ConstLabels: config.ConstLabels,
		}),
	}
}

// Defined implements reactive.Instrumentation.
func (m *Metrics) Defined(string, int) {
	m.definesTotal.Inc()
}

// Triggered implements reactive.Instrumentation.
func (m *Metrics) Triggered(_ string, listeners int, bubbled bool) {
	m.triggersTotal.WithLabelValues(strconv.FormatBool(bubbled)).Inc()
	m.triggerFanout.Observe(float64(listeners))
}

// Recomputed implements reactive.Instrumentation.
func (m *Metrics) Recomputed(string) {
	m.recomputesTotal.Inc()
}

// RecordSnapshotSave records one snapshot write.
func (m *Metrics) RecordSnapshotSave(driver string, d time.Duration, err error) {
	status := "success"
	if err != nil {
		status = categorizeError(err)
	}
	m.snapshotSaves.WithLabelValues(driver, status).Inc()
	m.snapshotDuration.WithLabelValues(driver).Observe(d.Seconds())
}

// StreamClientConnected records a change stream client joining.
func (m *Metrics) StreamClientConnected() {
	m.streamClients.Inc()
}

// StreamClientDisconnected records a change stream client leaving.
func (m *Metrics) StreamClientDisconnected() {
	m.streamClients.Dec()
}

// Middleware returns an HTTP middleware counting requests by route pattern
// and status code.
//
//	r := chi.NewRouter()
//	r.Use(m.Middleware)
func (m *Metrics) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := newStatusRecorder(w)

		next.ServeHTTP(rec, r)

		route := routePattern(r)
		m.requestDuration.WithLabelValues(route).Observe(time.Since(start).Seconds())
		m.requestsTotal.WithLabelValues(route, strconv.Itoa(rec.status)).Inc()
	})
}

// routePattern returns the chi route pattern, which keeps label
// cardinality bounded, or "unmatched".
func routePattern(r *http.Request) string {
	if rctx := chi.RouteContext(r.Context()); rctx != nil {
		if p := rctx.RoutePattern(); p != "" {
			return p
		}
	}
	return "unmatched"
}

// categorizeError returns a bounded label for err.
func categorizeError(err error) string {
	var timeout interface{ Timeout() bool }
	if errors.As(err, &timeout) && timeout.Timeout() {
		return "timeout"
	}
	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "timeout"), strings.Contains(msg, "deadline"):
		return "timeout"
	case strings.Contains(msg, "not found"), strings.Contains(msg, "nosuchkey"):
		return "not_found"
	case strings.Contains(msg, "denied"), strings.Contains(msg, "forbidden"):
		return "forbidden"
	default:
		return "error"
	}
}
