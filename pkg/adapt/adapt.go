package adapt

import (
	"context"
	"io"
	"strings"

	"github.com/a-h/templ"
	g "maragu.dev/gomponents"

	"github.com/vango-dev/starter/pkg/markup"
)

// Templ wraps p as a templ component. The context is ignored.
func Templ(p markup.Part) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		return markup.Render(w, p)
	})
}

// FromTempl renders c and returns its output as trusted markup.
func FromTempl(ctx context.Context, c templ.Component) (markup.Raw, error) {
	if c == nil {
		return "", nil
	}
	var sb strings.Builder
	if err := c.Render(ctx, &sb); err != nil {
		return "", err
	}
	return markup.Raw(sb.String()), nil
}

// Gomponent wraps p as a gomponents node.
func Gomponent(p markup.Part) g.Node {
	return g.NodeFunc(func(w io.Writer) error {
		return markup.Render(w, p)
	})
}

// FromGomponent renders n and returns its output as trusted markup.
func FromGomponent(n g.Node) (markup.Raw, error) {
	if n == nil {
		return "", nil
	}
	var sb strings.Builder
	if err := n.Render(&sb); err != nil {
		return "", err
	}
	return markup.Raw(sb.String()), nil
}

// MustFromGomponent is like FromGomponent but panics on error.
func MustFromGomponent(n g.Node) markup.Raw {
	raw, err := FromGomponent(n)
	if err != nil {
		panic(err)
	}
	return raw
}
