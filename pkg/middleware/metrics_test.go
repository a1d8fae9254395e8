package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"

	"github.com/vango-dev/reactkit/pkg/reactive"
)

func metricCounterValue(t *testing.T, c prometheus.Counter) float64 {
	t.Helper()
	var m dto.Metric
	if err := c.Write(&m); err != nil {
		t.Fatalf("counter Write() error: %v", err)
	}
	if m.Counter == nil {
		t.Fatal("expected counter metric to have Counter field")
	}
	return m.GetCounter().GetValue()
}

func metricGaugeValue(t *testing.T, g prometheus.Gauge) float64 {
	t.Helper()
	var m dto.Metric
	if err := g.Write(&m); err != nil {
		t.Fatalf("gauge Write() error: %v", err)
	}
	if m.Gauge == nil {
		t.Fatal("expected gauge metric to have Gauge field")
	}
	return m.GetGauge().GetValue()
}

func metricHistogramCount(t *testing.T, o prometheus.Observer) uint64 {
	t.Helper()
	metric, ok := o.(prometheus.Metric)
	if !ok {
		t.Fatalf("observer %T does not implement prometheus.Metric", o)
	}
	var m dto.Metric
	if err := metric.Write(&m); err != nil {
		t.Fatalf("histogram Write() error: %v", err)
	}
	if m.Histogram == nil {
		t.Fatal("expected histogram metric to have Histogram field")
	}
	return m.GetHistogram().GetSampleCount()
}

func TestMetricsRecordsEngineEvents(t *testing.T) {
	m := NewMetrics(WithRegistry(prometheus.NewRegistry()))
	reactive.SetInstrumentation(m)
	defer reactive.SetInstrumentation(nil)

	state := reactive.NewReactive(map[string]any{"a": 1})
	obj, _ := state.Object()
	if _, err := reactive.Watch(state.Value, func(_, _ any) {}); err != nil {
		t.Fatal(err)
	}
	if _, err := reactive.NewComputed(func() any { return obj.Get("a") }); err != nil {
		t.Fatal(err)
	}

	obj.Set("a", 2)

	if got := metricCounterValue(t, m.definesTotal); got < 2 {
		t.Errorf("defines_total = %v, want >= 2", got)
	}
	if got := metricCounterValue(t, m.triggersTotal.WithLabelValues("true")); got != 1 {
		t.Errorf("triggers_total{bubbled=true} = %v, want 1", got)
	}
	if got := metricCounterValue(t, m.recomputesTotal); got != 1 {
		t.Errorf("recomputes_total = %v, want 1", got)
	}
	if got := metricHistogramCount(t, m.triggerFanout); got < 1 {
		t.Errorf("trigger_fanout samples = %d, want >= 1", got)
	}
}

func TestMetricsSnapshotAndStream(t *testing.T) {
	m := NewMetrics(WithRegistry(prometheus.NewRegistry()), WithNamespace("test"))

	m.RecordSnapshotSave("bolt", 10*time.Millisecond, nil)
	m.RecordSnapshotSave("s3", time.Millisecond, errors.New("NoSuchKey: not found"))
	m.RecordSnapshotSave("file", time.Millisecond, os.ErrDeadlineExceeded)

	if got := metricCounterValue(t, m.snapshotSaves.WithLabelValues("bolt", "success")); got != 1 {
		t.Errorf("bolt success = %v, want 1", got)
	}
	if got := metricCounterValue(t, m.snapshotSaves.WithLabelValues("s3", "not_found")); got != 1 {
		t.Errorf("s3 not_found = %v, want 1", got)
	}
	if got := metricCounterValue(t, m.snapshotSaves.WithLabelValues("file", "timeout")); got != 1 {
		t.Errorf("file timeout = %v, want 1", got)
	}

	m.StreamClientConnected()
	m.StreamClientConnected()
	m.StreamClientDisconnected()
	if got := metricGaugeValue(t, m.streamClients); got != 1 {
		t.Errorf("stream_clients = %v, want 1", got)
	}
}

func TestMetricsMiddlewareUsesRoutePattern(t *testing.T) {
	m := NewMetrics(WithRegistry(prometheus.NewRegistry()))
	r := chi.NewRouter()
	r.Use(m.Middleware)
	r.Get("/items/{id}", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	for _, id := range []string{"1", "2"} {
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/items/"+id, nil))
	}

	if got := metricCounterValue(t, m.requestsTotal.WithLabelValues("/items/{id}", "404")); got != 2 {
		t.Errorf("requests_total = %v, want 2", got)
	}
	if got := metricHistogramCount(t, m.requestDuration.WithLabelValues("/items/{id}")); got != 2 {
		t.Errorf("request duration samples = %d, want 2", got)
	}
}

func TestCategorizeError(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{errors.New("context deadline exceeded"), "timeout"},
		{errors.New("object not found"), "not_found"},
		{errors.New("AccessDenied"), "forbidden"},
		{errors.New("boom"), "error"},
	}
	for _, tt := range tests {
		if got := categorizeError(tt.err); got != tt.want {
			t.Errorf("categorizeError(%q) = %q, want %q", tt.err, got, tt.want)
		}
	}
}
