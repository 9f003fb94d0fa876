package server

import (
	"context"
	"io"
	"log/slog"
	"net"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/trace/noop"

	"github.com/vango-dev/starter/internal/config"
	"github.com/vango-dev/starter/internal/pages"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg := config.Default()
	cfg.Server.StaticDir = t.TempDir()
	cfg.Server.Host = "127.0.0.1"
	cfg.Server.Port = 0
	return cfg
}

func newTestServer(t *testing.T, cfg *config.Config, opts ...Option) *httptest.Server {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	s := New(cfg, pages.Default(), append([]Option{WithLogger(logger)}, opts...)...)
	ts := httptest.NewServer(s)
	t.Cleanup(ts.Close)
	return ts
}

func get(t *testing.T, ts *httptest.Server, path string) (*http.Response, string) {
	t.Helper()
	resp, err := http.Get(ts.URL + path)
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, string(body)
}

func postForm(t *testing.T, ts *httptest.Server, path string, form url.Values) (*http.Response, string) {
	t.Helper()
	resp, err := http.PostForm(ts.URL+path, form)
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, string(body)
}

func TestPages(t *testing.T) {
	ts := newTestServer(t, testConfig(t))

	tests := []struct {
		path  string
		title string
	}{
		{"/", "<title>Starter</title>"},
		{"/components", "<title>Components · Starter</title>"},
		{"/about", "<title>About · Starter</title>"},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			resp, body := get(t, ts, tt.path)
			assert.Equal(t, http.StatusOK, resp.StatusCode)
			assert.Equal(t, htmlContentType, resp.Header.Get("Content-Type"))
			assert.True(t, strings.HasPrefix(body, "<!DOCTYPE html>"))
			assert.Contains(t, body, tt.title)
			assert.True(t, strings.HasSuffix(body, "</html>"))
		})
	}
}

func TestUnknownPage(t *testing.T) {
	ts := newTestServer(t, testConfig(t))

	for _, path := range []string{"/missing", "/a/b/c"} {
		resp, body := get(t, ts, path)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode, path)
		assert.Contains(t, body, "Page not found")
		assert.Contains(t, body, "<title>Not found · Starter</title>")
	}
}

func TestNonCanonicalPathRedirects(t *testing.T) {
	ts := newTestServer(t, testConfig(t))
	client := &http.Client{CheckRedirect: func(*http.Request, []*http.Request) error {
		return http.ErrUseLastResponse
	}}

	resp, err := client.Get(ts.URL + "/about/?ref=nav")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusMovedPermanently, resp.StatusCode)
	assert.Equal(t, "/about?ref=nav", resp.Header.Get("Location"))

	resp, body := get(t, ts, "/about/")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body, "<title>About · Starter</title>")
}

func TestToastFragment(t *testing.T) {
	ts := newTestServer(t, testConfig(t))

	resp, body := get(t, ts, "/fragments/toast?level=error")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.True(t, strings.HasPrefix(body, `<div class="toast toast-error" role="alert"`))
	assert.Contains(t, body, "Something went wrong")

	_, body = get(t, ts, "/fragments/toast?level=success&message="+url.QueryEscape("<b>done</b>"))
	assert.Contains(t, body, "&lt;b&gt;done&lt;/b&gt;")

	_, body = get(t, ts, "/fragments/toast")
	assert.Contains(t, body, "toast-info")

	resp, _ = get(t, ts, "/fragments/toast?level=fatal")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestCounterFragment(t *testing.T) {
	ts := newTestServer(t, testConfig(t))

	resp, body := postForm(t, ts, "/fragments/counter", url.Values{"n": {"4"}, "op": {"inc"}})
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.True(t, strings.HasPrefix(body, `<form id="counter"`))
	assert.Contains(t, body, `<output class="counter-value" aria-label="Count">5</output>`)

	_, body = postForm(t, ts, "/fragments/counter", url.Values{"n": {"4"}, "op": {"reset"}})
	assert.Contains(t, body, `value="0"`)

	_, body = postForm(t, ts, "/fragments/counter", url.Values{"n": {"1000000"}, "op": {"inc"}})
	assert.Contains(t, body, `value="1000000"`)

	tests := []url.Values{
		{"n": {"four"}, "op": {"inc"}},
		{"op": {"inc"}},
		{"n": {"1"}, "op": {"double"}},
		{"n": {"1000001"}, "op": {"dec"}},
		{"n": {"9223372036854775807"}, "op": {"inc"}},
	}
	for _, form := range tests {
		resp, _ := postForm(t, ts, "/fragments/counter", form)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode, form.Encode())
	}

	resp, _ = get(t, ts, "/fragments/counter")
	assert.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)
}

func TestStaticFiles(t *testing.T) {
	cfg := testConfig(t)
	require.NoError(t, os.WriteFile(filepath.Join(cfg.Server.StaticDir, "app.css"), []byte("body{margin:0}"), 0o644))
	ts := newTestServer(t, cfg)

	resp, body := get(t, ts, "/static/app.css")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "body{margin:0}", body)
	assert.Contains(t, resp.Header.Get("Content-Type"), "text/css")

	resp, _ = get(t, ts, "/static/missing.css")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestClientScript(t *testing.T) {
	ts := newTestServer(t, testConfig(t))
	_, body := get(t, ts, "/")
	assert.Contains(t, body, `<script src="/client.js" defer></script>`)

	resp, js := get(t, ts, "/client.js")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, js, "data-get")

	cfg := testConfig(t)
	cfg.Render.ClientScript = "/static/custom.js"
	ts = newTestServer(t, cfg)
	resp, _ = get(t, ts, "/client.js")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestHealthz(t *testing.T) {
	ts := newTestServer(t, testConfig(t))
	resp, body := get(t, ts, "/healthz")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "ok\n", body)
}

func TestMetricsEndpoint(t *testing.T) {
	ts := newTestServer(t, testConfig(t))
	get(t, ts, "/about")
	get(t, ts, "/fragments/toast?level=info")

	resp, body := get(t, ts, "/metrics")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body, `starter_http_requests_total{method="GET",route="/{page}",status="200"} 1`)
	assert.Contains(t, body, `starter_renders_total{kind="stream",status="success"} 1`)
	assert.Contains(t, body, `starter_renders_total{kind="fragment",status="success"} 1`)
	assert.Contains(t, body, "starter_scratch_acquired_total")
	assert.Contains(t, body, "go_goroutines")
}

func TestMetricsDisabled(t *testing.T) {
	cfg := testConfig(t)
	cfg.Metrics.Enabled = false
	ts := newTestServer(t, cfg)

	resp, _ := get(t, ts, "/metrics")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestLiveReload(t *testing.T) {
	cfg := testConfig(t)
	ts := newTestServer(t, cfg)
	_, body := get(t, ts, "/")
	assert.NotContains(t, body, "/_dev/reload")
	resp, _ := get(t, ts, "/_dev/reload")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	cfg = testConfig(t)
	cfg.Server.LiveReload = true
	ts = newTestServer(t, cfg)
	_, body = get(t, ts, "/")
	assert.Contains(t, body, `"/_dev/reload"`)

	// A plain GET is not a websocket handshake.
	resp, _ = get(t, ts, "/_dev/reload")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestTracingEnabled(t *testing.T) {
	cfg := testConfig(t)
	cfg.Tracing.Enabled = true
	ts := newTestServer(t, cfg, WithTracerProvider(noop.NewTracerProvider()))

	resp, _ := get(t, ts, "/about")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestRequestIDHeaderAccepted(t *testing.T) {
	ts := newTestServer(t, testConfig(t))
	req, err := http.NewRequest(http.MethodGet, ts.URL+"/healthz", nil)
	require.NoError(t, err)
	req.Header.Set("X-Request-Id", "abc")

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestServeShutsDownOnCancel(t *testing.T) {
	cfg := testConfig(t)
	cfg.Server.LiveReload = true
	cfg.Dev.Watch = []string{cfg.Server.StaticDir}
	s := New(cfg, pages.Default(), WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))))

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Serve(ctx, ln) }()

	require.Eventually(t, func() bool {
		resp, err := http.Get("http://" + ln.Addr().String() + "/healthz")
		if err != nil {
			return false
		}
		resp.Body.Close()
		return resp.StatusCode == http.StatusOK
	}, 2*time.Second, 10*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("Serve did not return after cancel")
	}
}
