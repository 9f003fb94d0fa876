package render

import (
	"bytes"
	"context"
	stderrors "errors"
	"log/slog"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/trace/noop"

	"github.com/vango-dev/starter/internal/errors"
	. "github.com/vango-dev/starter/pkg/markup"
)

type observation struct {
	kind  string
	bytes int
	err   error
}

type recordingObserver struct {
	mu  sync.Mutex
	got []observation
}

func (o *recordingObserver) ObserveRender(kind string, n int, _ time.Duration, err error) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.got = append(o.got, observation{kind, n, err})
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, stderrors.New("disk full") }

func newTestRenderer(obs Observer, logs *bytes.Buffer) *Renderer {
	var logger *slog.Logger
	if logs != nil {
		logger = slog.New(slog.NewTextHandler(logs, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}
	return NewRenderer(RendererConfig{
		Logger:   logger,
		Tracer:   noop.NewTracerProvider().Tracer("test"),
		Observer: obs,
	})
}

func TestNewRendererDefaults(t *testing.T) {
	r := NewRenderer(RendererConfig{})
	assert.Equal(t, "en", r.Config().Lang)
	assert.NotNil(t, r.logger)
	assert.NotNil(t, r.tracer)
}

func TestRenderToString(t *testing.T) {
	r := newTestRenderer(nil, nil)

	got, err := r.RenderToString(context.Background(),
		Div(ID("x"), Class("a"), ID("y"), Class("b"), Text("hi")))
	require.NoError(t, err)
	assert.Equal(t, `<div id="y" class="a b">hi</div>`, got)
}

func TestRenderToStringNil(t *testing.T) {
	r := newTestRenderer(nil, nil)

	got, err := r.RenderToString(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestRenderToWriterSingleWrite(t *testing.T) {
	r := newTestRenderer(nil, nil)
	w := &FlushableWriter{Writer: &countingBuffer{}}

	err := r.RenderToWriter(context.Background(), w, Ul(Repeat(50, func(i int) Part {
		return Li(Val(i))
	})))
	require.NoError(t, err)
	assert.Equal(t, 1, w.Writer.(*countingBuffer).writes)
}

type countingBuffer struct {
	bytes.Buffer
	writes int
}

func (c *countingBuffer) Write(p []byte) (int, error) {
	c.writes++
	return c.Buffer.Write(p)
}

func TestRenderObserverAndLogging(t *testing.T) {
	obs := &recordingObserver{}
	var logs bytes.Buffer
	r := newTestRenderer(obs, &logs)

	out, err := r.RenderToString(context.Background(), P(Text("ok")))
	require.NoError(t, err)

	require.Len(t, obs.got, 1)
	assert.Equal(t, KindFragment, obs.got[0].kind)
	assert.Equal(t, len(out), obs.got[0].bytes)
	assert.NoError(t, obs.got[0].err)
	assert.Contains(t, logs.String(), "msg=rendered")
	assert.Contains(t, logs.String(), "kind=fragment")
}

func TestRenderWriteFailure(t *testing.T) {
	obs := &recordingObserver{}
	var logs bytes.Buffer
	r := newTestRenderer(obs, &logs)

	err := r.RenderToWriter(context.Background(), failingWriter{}, P(Text("x")))
	require.Error(t, err)
	assert.True(t, errors.HasCode(err, "E401"))
	assert.Contains(t, err.Error(), "disk full")

	require.Len(t, obs.got, 1)
	assert.Error(t, obs.got[0].err)
	assert.Contains(t, logs.String(), "render failed")
}

func TestRendererConcurrent(t *testing.T) {
	r := newTestRenderer(&recordingObserver{}, nil)
	tree := Div(Class("card"), H2(Text("Title")), P(Text("a < b")))
	want := String(tree)

	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			got, err := r.RenderToString(context.Background(), tree)
			if err != nil || got != want {
				t.Errorf("concurrent render = %q, %v", got, err)
			}
		}()
	}
	wg.Wait()
}

func TestLargeBuffersAreNotPooled(t *testing.T) {
	r := newTestRenderer(nil, nil)
	big := Text(strings.Repeat("x", maxPooledBuffer*2))

	got, err := r.RenderToString(context.Background(), P(big))
	require.NoError(t, err)
	assert.Len(t, got, len("<p></p>")+maxPooledBuffer*2)

	buf := getBuffer()
	defer putBuffer(buf)
	assert.Zero(t, buf.Len())
}
