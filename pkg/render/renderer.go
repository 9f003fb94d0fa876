package render

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"strings"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/vango-dev/starter/internal/errors"
	"github.com/vango-dev/starter/pkg/markup"
)

// TracerName is the instrumentation name used when no tracer is configured.
const TracerName = "github.com/vango-dev/starter/pkg/render"

// Render kinds reported to observers and spans.
const (
	KindFragment = "fragment"
	KindPage     = "page"
)

// maxPooledBuffer bounds the output buffers kept for reuse.
const maxPooledBuffer = 64 << 10

// Observer receives one call per completed render.
type Observer interface {
	ObserveRender(kind string, bytes int, d time.Duration, err error)
}

// RendererConfig configures the HTML renderer.
type RendererConfig struct {
	// Logger receives a debug line per render and an error line per failure.
	// If nil, slog.Default() is used.
	Logger *slog.Logger

	// Tracer creates a span per render.
	// If nil, the global OpenTelemetry provider is used.
	Tracer trace.Tracer

	// Observer records render metrics. Optional.
	Observer Observer

	// Lang is the default document language. Defaults to "en".
	Lang string

	// ClientScript is the path of the page script appended to every document.
	// Empty means no script.
	ClientScript string

	// LiveReloadPath enables the live-reload snippet, connecting a websocket
	// to this path. Empty disables it.
	LiveReloadPath string
}

// Renderer serializes markup trees with logging, tracing and metrics.
// A Renderer is safe for concurrent use.
type Renderer struct {
	config RendererConfig
	logger *slog.Logger
	tracer trace.Tracer
}

// NewRenderer creates a new Renderer with the given configuration.
func NewRenderer(config RendererConfig) *Renderer {
	if config.Lang == "" {
		config.Lang = "en"
	}
	logger := config.Logger
	if logger == nil {
		logger = slog.Default()
	}
	tracer := config.Tracer
	if tracer == nil {
		tracer = otel.Tracer(TracerName)
	}
	return &Renderer{
		config: config,
		logger: logger,
		tracer: tracer,
	}
}

// Config returns the renderer configuration with defaults applied.
func (r *Renderer) Config() RendererConfig {
	return r.config
}

var bufferPool = sync.Pool{
	New: func() any { return new(bytes.Buffer) },
}

func getBuffer() *bytes.Buffer {
	buf := bufferPool.Get().(*bytes.Buffer)
	buf.Reset()
	return buf
}

func putBuffer(buf *bytes.Buffer) {
	if buf.Cap() > maxPooledBuffer {
		return
	}
	bufferPool.Put(buf)
}

// RenderToString renders a tree to a string.
func (r *Renderer) RenderToString(ctx context.Context, p markup.Part) (string, error) {
	var b strings.Builder
	if err := r.RenderToWriter(ctx, &b, p); err != nil {
		return "", err
	}
	return b.String(), nil
}

// RenderToWriter renders a tree into a pooled buffer and writes it to w in
// one call, so w never receives a partial fragment.
func (r *Renderer) RenderToWriter(ctx context.Context, w io.Writer, p markup.Part) error {
	return r.render(ctx, KindFragment, w, p)
}

func (r *Renderer) render(ctx context.Context, kind string, w io.Writer, p markup.Part) error {
	_, span := r.tracer.Start(ctx, "render."+kind,
		trace.WithAttributes(attribute.String("render.kind", kind)))
	defer span.End()

	start := time.Now()
	buf := getBuffer()
	defer putBuffer(buf)

	// Rendering into a bytes.Buffer cannot fail; only the final write can.
	_ = markup.Render(buf, p)
	n := buf.Len()

	var err error
	if _, werr := w.Write(buf.Bytes()); werr != nil {
		err = errors.New("E401").Wrap(werr)
	}
	r.finish(span, kind, n, time.Since(start), err)
	return err
}

// finish records the outcome of one render on the span, the log and the observer.
func (r *Renderer) finish(span trace.Span, kind string, n int, d time.Duration, err error) {
	span.SetAttributes(attribute.Int("render.bytes", n))
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		r.logger.Error("render failed", "kind", kind, "bytes", n, "error", err)
	} else {
		r.logger.Debug("rendered", "kind", kind, "bytes", n, "duration", d)
	}
	if r.config.Observer != nil {
		r.config.Observer.ObserveRender(kind, n, d, err)
	}
}
