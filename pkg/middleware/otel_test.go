package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
)

const traceparent = "00-4bf92f3577b34da6a3ce929d0e0e4736-00f067aa0ba902b7-01"

func tracingOptions(extra ...OTelOption) []OTelOption {
	return append([]OTelOption{
		WithTracerProvider(noop.NewTracerProvider()),
		WithPropagator(propagation.TraceContext{}),
	}, extra...)
}

func TestTracingPropagatesIncomingContext(t *testing.T) {
	var got trace.SpanContext
	h := Tracing(tracingOptions()...)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = SpanFromRequest(r).SpanContext()
	}))

	req := httptest.NewRequest(http.MethodGet, "/about", nil)
	req.Header.Set("traceparent", traceparent)
	h.ServeHTTP(httptest.NewRecorder(), req)

	assert.True(t, got.IsValid())
	assert.Equal(t, "4bf92f3577b34da6a3ce929d0e0e4736", got.TraceID().String())
}

func TestTracingFilterSkipsRequest(t *testing.T) {
	extractorCalled := false
	h := Tracing(tracingOptions(
		WithRequestFilter(func(r *http.Request) bool { return r.URL.Path != "/healthz" }),
		WithAttributeExtractor(func(*http.Request) []attribute.KeyValue {
			extractorCalled = true
			return nil
		}),
	)...)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.False(t, SpanFromRequest(r).SpanContext().IsValid())
	}))

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	req.Header.Set("traceparent", traceparent)
	h.ServeHTTP(httptest.NewRecorder(), req)
	assert.False(t, extractorCalled)
}

func TestTracingInsideChiRouter(t *testing.T) {
	extractorCalled := false
	r := chi.NewRouter()
	r.Use(Tracing(tracingOptions(
		WithTracerName("test"),
		WithAttributeExtractor(func(*http.Request) []attribute.KeyValue {
			extractorCalled = true
			return []attribute.KeyValue{attribute.String("app.test", "ok")}
		}),
	)...))
	r.Get("/boom", func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	})

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/boom", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.True(t, extractorCalled)
}

func TestRoutePatternOutsideChi(t *testing.T) {
	assert.Equal(t, "unmatched", routePattern(httptest.NewRequest(http.MethodGet, "/x", nil)))
}
