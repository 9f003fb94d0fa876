package render

import (
	"context"
	"io"
	"net/http"
	"time"

	"github.com/vango-dev/starter/internal/errors"
	"github.com/vango-dev/starter/pkg/markup"
)

// KindStream is the render kind reported for streamed pages.
const KindStream = "stream"

// StreamingRenderer wraps Renderer with chunked output support.
// It flushes content incrementally for faster time-to-first-byte.
type StreamingRenderer struct {
	*Renderer
	flusher http.Flusher
	w       io.Writer
}

// NewStreamingRenderer creates a streaming renderer that writes to w.
// If w implements http.Flusher, content is flushed after the head and
// after the body.
func NewStreamingRenderer(w io.Writer, config RendererConfig) *StreamingRenderer {
	flusher, _ := w.(http.Flusher)
	return &StreamingRenderer{
		Renderer: NewRenderer(config),
		flusher:  flusher,
		w:        w,
	}
}

// RenderPage renders a complete HTML document with incremental flushing.
// The bytes written are identical to Renderer.RenderPage for the same page.
func (s *StreamingRenderer) RenderPage(ctx context.Context, page PageData) error {
	_, span := s.tracer.Start(ctx, "render."+KindStream)
	defer span.End()
	start := time.Now()

	lang := page.Lang
	if lang == "" {
		lang = s.config.Lang
	}

	cw := &countingWriter{w: s.w}
	cw.write(markup.Raw("<!DOCTYPE html><html"), markup.Lang(lang), markup.Raw(">"))
	cw.write(s.head(page))
	s.flush()

	cw.write(markup.Body(page.Body, s.tail(page)))
	s.flush()

	cw.write(markup.Raw("</html>"))
	s.flush()

	var err error
	if cw.err != nil {
		err = errors.New("E401").Wrap(cw.err)
	}
	s.finish(span, KindStream, cw.n, time.Since(start), err)
	return err
}

// flush flushes the writer if it supports flushing.
func (s *StreamingRenderer) flush() {
	if s.flusher != nil {
		s.flusher.Flush()
	}
}

// countingWriter renders parts in sequence, stopping at the first error.
type countingWriter struct {
	w   io.Writer
	n   int
	err error
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += n
	return n, err
}

func (c *countingWriter) write(parts ...markup.Part) {
	for _, p := range parts {
		if c.err != nil {
			return
		}
		c.err = markup.Render(c, p)
	}
}

// FlushableWriter wraps an io.Writer with optional flushing capability.
// This is useful for testing streaming behavior without using http.ResponseWriter.
type FlushableWriter struct {
	io.Writer
	FlushCount int
}

// Flush implements http.Flusher.
func (w *FlushableWriter) Flush() {
	w.FlushCount++
}
