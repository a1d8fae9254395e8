package middleware

import (
	"context"
	"fmt"
	"net/http"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// Default tracer name for reactkit.
const defaultTracerName = "reactkit"

// OTelConfig configures the OpenTelemetry instrumentation.
type OTelConfig struct {
	// TracerName is the name of the tracer (default: "reactkit").
	TracerName string

	// Tracer overrides the tracer resolved from the global provider.
	Tracer trace.Tracer

	// TraceDefines emits a span per listener registration. Registrations
	// happen on every tracked read, so this is off by default.
	TraceDefines bool

	// KeyFilter determines which observer keys are traced.
	// If nil, all keys are traced.
	KeyFilter func(key string) bool

	// AttributeExtractor adds custom attributes to engine spans.
	AttributeExtractor func(key string) []attribute.KeyValue
}

// OTelOption configures the OpenTelemetry instrumentation.
type OTelOption func(*OTelConfig)

// WithTracerName sets the tracer name.
func WithTracerName(name string) OTelOption {
	return func(c *OTelConfig) {
		c.TracerName = name
	}
}

// WithTracer sets the tracer directly, bypassing the global provider.
func WithTracer(tracer trace.Tracer) OTelOption {
	return func(c *OTelConfig) {
		c.Tracer = tracer
	}
}

// WithTraceDefines enables spans for listener registrations.
func WithTraceDefines(enabled bool) OTelOption {
	return func(c *OTelConfig) {
		c.TraceDefines = enabled
	}
}

// WithKeyFilter sets a filter for observer keys.
func WithKeyFilter(filter func(key string) bool) OTelOption {
	return func(c *OTelConfig) {
		c.KeyFilter = filter
	}
}

// WithAttributeExtractor sets a custom attribute extractor.
func WithAttributeExtractor(extractor func(key string) []attribute.KeyValue) OTelOption {
	return func(c *OTelConfig) {
		c.AttributeExtractor = extractor
	}
}

func defaultOTelConfig() OTelConfig {
	return OTelConfig{TracerName: defaultTracerName}
}

// Tracing emits OpenTelemetry spans for engine events and inspector
// requests. It implements reactive.Instrumentation.
//
// The tracer uses the global OpenTelemetry tracer provider unless WithTracer
// is given. Configure the provider in main() before creating Tracing:
//
//	tp := sdktrace.NewTracerProvider(sdktrace.WithBatcher(exporter))
//	otel.SetTracerProvider(tp)
//	reactive.SetInstrumentation(middleware.NewTracing())
type Tracing struct {
	config OTelConfig
	tracer trace.Tracer
}

// NewTracing creates the tracing instrumentation.
func NewTracing(opts ...OTelOption) *Tracing {
	config := defaultOTelConfig()
	for _, opt := range opts {
		opt(&config)
	}
	tracer := config.Tracer
	if tracer == nil {
		tracer = otel.Tracer(config.TracerName)
	}
	return &Tracing{config: config, tracer: tracer}
}

// Defined implements reactive.Instrumentation.
func (t *Tracing) Defined(key string, listeners int) {
	if !t.config.TraceDefines {
		return
	}
	t.event("reactive.define", key, attribute.Int("reactive.listeners", listeners))
}

// Triggered implements reactive.Instrumentation.
func (t *Tracing) Triggered(key string, listeners int, bubbled bool) {
	t.event("reactive.trigger", key,
		attribute.Int("reactive.listeners", listeners),
		attribute.Bool("reactive.bubbled", bubbled),
	)
}

// Recomputed implements reactive.Instrumentation.
func (t *Tracing) Recomputed(key string) {
	t.event("reactive.recompute", key)
}

// event records a zero-length span for an engine event.
func (t *Tracing) event(name, key string, attrs ...attribute.KeyValue) {
	if t.config.KeyFilter != nil && !t.config.KeyFilter(key) {
		return
	}
	attrs = append(attrs, attribute.String("reactive.key", key))
	if t.config.AttributeExtractor != nil {
		attrs = append(attrs, t.config.AttributeExtractor(key)...)
	}
	_, span := t.tracer.Start(context.Background(), name,
		trace.WithSpanKind(trace.SpanKindInternal),
		trace.WithAttributes(attrs...),
	)
	span.End()
}

// Middleware returns an HTTP middleware that starts a server span per
// request and stores it in the request context. Responses with a 5xx status
// mark the span as failed.
func (t *Tracing) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx, span := t.tracer.Start(r.Context(), fmt.Sprintf("reactkit %s", r.Method),
			trace.WithSpanKind(trace.SpanKindServer),
			trace.WithAttributes(
				attribute.String("http.method", r.Method),
				attribute.String("http.target", r.URL.Path),
			),
		)
		defer span.End()

		rec := newStatusRecorder(w)
		next.ServeHTTP(rec, r.WithContext(ctx))

		route := routePattern(r.WithContext(ctx))
		span.SetName(fmt.Sprintf("reactkit %s %s", r.Method, route))
		span.SetAttributes(
			attribute.String("http.route", route),
			attribute.Int("http.status_code", rec.status),
		)
		if rec.status >= http.StatusInternalServerError {
			span.SetStatus(codes.Error, http.StatusText(rec.status))
		} else {
			span.SetStatus(codes.Ok, "")
		}
	})
}

// Span runs fn inside a span named name and records its error.
func (t *Tracing) Span(ctx context.Context, name string, fn func(context.Context) error) error {
	ctx, span := t.tracer.Start(ctx, name)
	defer span.End()

	err := fn(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	} else {
		span.SetStatus(codes.Ok, "")
	}
	return err
}
