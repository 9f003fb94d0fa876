// Package middleware provides HTTP middleware for the starter server.
//
// This package includes:
//   - OpenTelemetry tracing middleware
//   - Prometheus metrics middleware and a render observer
//
// # OpenTelemetry Middleware
//
// Tracing starts a server span for every request and stores it in the
// request context, so spans created while rendering become its children.
//
//	r := chi.NewRouter()
//	r.Use(middleware.Tracing(
//	    middleware.WithRequestFilter(func(r *http.Request) bool {
//	        return r.URL.Path != "/healthz"
//	    }),
//	))
//
// # Prometheus Metrics
//
// NewMetrics registers request, render and scratch pool collectors:
//
//	metrics := middleware.NewMetrics(middleware.WithNamespace("myapp"))
//	r.Use(metrics.Handler)
//	renderer := render.NewRenderer(render.RendererConfig{Observer: metrics})
//
// Metrics collected:
//   - starter_http_requests_total: requests by route pattern, method and status
//   - starter_http_request_duration_seconds: request latency
//   - starter_renders_total: renders by kind and status
//   - starter_render_duration_seconds: render latency
//   - starter_render_bytes: rendered HTML size
//   - starter_render_errors_total: render failures by error category
//   - starter_scratch_*_total: markup scratch pool counters, by pool
//
// Expose them with promhttp:
//
//	r.Handle("/metrics", promhttp.Handler())
package middleware
