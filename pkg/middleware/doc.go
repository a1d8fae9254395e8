// Package middleware provides production observability for reactkit.
//
// This package includes:
//   - Prometheus metrics for the reactive engine, the inspector and snapshots
//   - OpenTelemetry tracing for the reactive engine and the inspector
//
// Both Metrics and Tracing implement reactive.Instrumentation. Install one,
// or both through Chain:
//
//	m := middleware.NewMetrics(middleware.WithNamespace("myapp"))
//	t := middleware.NewTracing(middleware.WithTracerName("myapp"))
//	reactive.SetInstrumentation(middleware.Chain(m, t))
//
// # HTTP Middleware
//
// Metrics.Middleware and Tracing.Middleware are plain func(http.Handler)
// http.Handler values and plug into a chi router:
//
//	r := chi.NewRouter()
//	r.Use(t.Middleware, m.Middleware)
//	r.Handle("/metrics", promhttp.Handler())
//
// Requests are labeled with the chi route pattern rather than the raw path
// so that label cardinality stays bounded.
package middleware
