package middleware

import (
	stderrors "errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/vango-dev/starter/internal/errors"
	"github.com/vango-dev/starter/internal/scratch"
	"github.com/vango-dev/starter/pkg/markup"
)

// MetricsConfig configures the Prometheus metrics middleware.
type MetricsConfig struct {
	// Namespace is the metrics namespace (default: "starter").
	Namespace string

	// Subsystem is the metrics subsystem (default: "").
	Subsystem string

	// ConstLabels are constant labels added to all metrics.
	ConstLabels prometheus.Labels

	// Buckets are the histogram buckets for request and render duration.
	// Default: prometheus.DefBuckets
	Buckets []float64

	// Registry is the Prometheus registry to use.
	// Default: prometheus.DefaultRegisterer
	Registry prometheus.Registerer
}

// MetricsOption configures the Prometheus metrics middleware.
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

// WithBuckets sets the histogram buckets.
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
		Namespace: "starter",
		Buckets:   prometheus.DefBuckets,
		Registry:  prometheus.DefaultRegisterer,
	}
}

// Metrics holds the Prometheus collectors for HTTP requests, renders and
// the markup scratch pools. It implements render.Observer.
type Metrics struct {
	requestsTotal   *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
	rendersTotal    *prometheus.CounterVec
	renderDuration  *prometheus.HistogramVec
	renderBytes     *prometheus.HistogramVec
	renderErrors    *prometheus.CounterVec
}

// NewMetrics registers the collectors with the configured registry.
// Registering twice with the same registry panics, as with promauto.
func NewMetrics(opts ...MetricsOption) *Metrics {
	config := defaultMetricsConfig()
	for _, opt := range opts {
		opt(&config)
	}
	factory := promauto.With(config.Registry)

	m := &Metrics{
		requestsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "http_requests_total",
			Help:        "Total number of HTTP requests by route, method and status",
			ConstLabels: config.ConstLabels,
		}, []string{"route", "method", "status"}),

		requestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request duration in seconds",
			ConstLabels: config.ConstLabels,
			Buckets:     config.Buckets,
		}, []string{"route", "method"}),

		rendersTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "renders_total",
			Help:        "Total number of markup renders by kind and status",
			ConstLabels: config.ConstLabels,
		}, []string{"kind", "status"}),

		renderDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "render_duration_seconds",
			Help:        "Markup render duration in seconds",
			ConstLabels: config.ConstLabels,
			Buckets:     config.Buckets,
		}, []string{"kind"}),

		renderBytes: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "render_bytes",
			Help:        "Size of rendered HTML in bytes",
			ConstLabels: config.ConstLabels,
			Buckets:     prometheus.ExponentialBuckets(256, 4, 8), // 256B to 4MB
		}, []string{"kind"}),

		renderErrors: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "render_errors_total",
			Help:        "Total number of render errors by kind and error type",
			ConstLabels: config.ConstLabels,
		}, []string{"kind", "error_type"}),
	}

	registerPoolMetrics(factory, config)
	return m
}

// registerPoolMetrics exposes the markup scratch pool counters.
func registerPoolMetrics(factory promauto.Factory, config MetricsConfig) {
	pools := map[string]func() scratch.Stats{
		"attrs": func() scratch.Stats { a, _ := markup.PoolStats(); return a },
		"parts": func() scratch.Stats { _, p := markup.PoolStats(); return p },
	}
	counters := []struct {
		name, help string
		value      func(scratch.Stats) uint64
	}{
		{"scratch_acquired_total", "Scratch buffers handed out", func(s scratch.Stats) uint64 { return s.Acquired }},
		{"scratch_allocated_total", "Scratch buffers allocated because the pool had none", func(s scratch.Stats) uint64 { return s.Allocated }},
		{"scratch_grown_total", "Scratch buffer growths past their initial capacity", func(s scratch.Stats) uint64 { return s.Grown }},
		{"scratch_released_total", "Scratch buffers returned to the pool", func(s scratch.Stats) uint64 { return s.Released }},
		{"scratch_discarded_total", "Oversized scratch buffers dropped on release", func(s scratch.Stats) uint64 { return s.Discarded }},
	}

	for pool, stats := range pools {
		labels := prometheus.Labels{"pool": pool}
		for k, v := range config.ConstLabels {
			labels[k] = v
		}
		for _, c := range counters {
			stats, value := stats, c.value
			factory.NewCounterFunc(prometheus.CounterOpts{
				Namespace:   config.Namespace,
				Subsystem:   config.Subsystem,
				Name:        c.name,
				Help:        c.help,
				ConstLabels: labels,
			}, func() float64 { return float64(value(stats())) })
		}
	}
}

// Handler returns HTTP middleware that counts and times requests.
// Requests are labeled by their chi route pattern so path parameters
// do not create new series.
func (m *Metrics) Handler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)

		next.ServeHTTP(ww, r)

		route := routePattern(r)
		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		m.requestDuration.WithLabelValues(route, r.Method).Observe(time.Since(start).Seconds())
		m.requestsTotal.WithLabelValues(route, r.Method, strconv.Itoa(status)).Inc()
	})
}

// ObserveRender records one render.
func (m *Metrics) ObserveRender(kind string, bytes int, d time.Duration, err error) {
	m.renderDuration.WithLabelValues(kind).Observe(d.Seconds())
	m.renderBytes.WithLabelValues(kind).Observe(float64(bytes))

	status := "success"
	if err != nil {
		status = "error"
		m.renderErrors.WithLabelValues(kind, categorizeError(err)).Inc()
	}
	m.rendersTotal.WithLabelValues(kind, status).Inc()
}

// routePattern returns the matched chi route, or "unmatched" outside chi
// or when no route matched.
func routePattern(r *http.Request) string {
	if rctx := chi.RouteContext(r.Context()); rctx != nil {
		if p := rctx.RoutePattern(); p != "" {
			return p
		}
	}
	return "unmatched"
}

// categorizeError returns a low-cardinality label for err: the category of
// a structured error, or "internal".
func categorizeError(err error) string {
	var e *errors.Error
	if stderrors.As(err, &e) && e.Category != "" {
		return string(e.Category)
	}
	return "internal"
}
