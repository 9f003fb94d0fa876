package middleware

import (
	stderrors "errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vango-dev/starter/internal/errors"
	"github.com/vango-dev/starter/pkg/markup"
)

func newTestMetrics(t *testing.T) (*Metrics, *prometheus.Registry) {
	t.Helper()
	reg := prometheus.NewRegistry()
	return NewMetrics(WithRegistry(reg)), reg
}

func TestMetricsHandlerLabelsByRoutePattern(t *testing.T) {
	m, _ := newTestMetrics(t)

	r := chi.NewRouter()
	r.Use(m.Handler)
	r.Get("/items/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})
	r.Get("/ok", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("ok"))
	})

	for _, path := range []string{"/items/1", "/items/2", "/ok", "/missing"} {
		r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, path, nil))
	}

	assert.Equal(t, 2.0, testutil.ToFloat64(m.requestsTotal.WithLabelValues("/items/{id}", "GET", "418")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.requestsTotal.WithLabelValues("/ok", "GET", "200")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.requestsTotal.WithLabelValues("unmatched", "GET", "404")))
	assert.Equal(t, 3, testutil.CollectAndCount(m.requestDuration))
}

func TestMetricsObserveRender(t *testing.T) {
	m, _ := newTestMetrics(t)

	m.ObserveRender("page", 2048, 3*time.Millisecond, nil)
	m.ObserveRender("page", 10, time.Millisecond, errors.New("E401"))
	m.ObserveRender("fragment", 10, time.Millisecond, stderrors.New("plain"))

	assert.Equal(t, 1.0, testutil.ToFloat64(m.rendersTotal.WithLabelValues("page", "success")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.rendersTotal.WithLabelValues("page", "error")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.renderErrors.WithLabelValues("page", "render")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.renderErrors.WithLabelValues("fragment", "internal")))
	assert.Equal(t, 2, testutil.CollectAndCount(m.renderBytes))
}

func TestMetricsScratchPoolCounters(t *testing.T) {
	_, reg := newTestMetrics(t)

	_ = markup.Div(markup.ID("x"), markup.Text("y"))

	n, err := testutil.GatherAndCount(reg, "starter_scratch_acquired_total")
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	families, err := reg.Gather()
	require.NoError(t, err)
	var acquired float64
	for _, mf := range families {
		if mf.GetName() != "starter_scratch_acquired_total" {
			continue
		}
		for _, metric := range mf.GetMetric() {
			acquired += metric.GetCounter().GetValue()
		}
	}
	assert.Positive(t, acquired)
}

func TestMetricsOptions(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewMetrics(
		WithRegistry(reg),
		WithNamespace("app"),
		WithSubsystem("web"),
		WithConstLabels(prometheus.Labels{"env": "test"}),
		WithBuckets([]float64{0.1, 1}),
	)
	m.ObserveRender("fragment", 1, time.Millisecond, nil)

	n, err := testutil.GatherAndCount(reg, "app_web_renders_total", "app_web_scratch_released_total")
	require.NoError(t, err)
	assert.Equal(t, 3, n)
}

func TestNewMetricsTwicePanics(t *testing.T) {
	reg := prometheus.NewRegistry()
	NewMetrics(WithRegistry(reg))
	assert.Panics(t, func() { NewMetrics(WithRegistry(reg)) })
}

func TestCategorizeError(t *testing.T) {
	assert.Equal(t, "config", categorizeError(errors.New("E201")))
	assert.Equal(t, "export", categorizeError(errors.New("E302").Wrap(stderrors.New("s3"))))
	assert.Equal(t, "internal", categorizeError(stderrors.New("x")))
}
