package pages

import (
	"context"
	"io"

	"github.com/a-h/templ"
	g "maragu.dev/gomponents"

	. "github.com/vango-dev/starter/el"
	"github.com/vango-dev/starter/internal/components"
	"github.com/vango-dev/starter/pkg/adapt"
)

// shortcut is a keyboard hint built with gomponents.
func shortcut(keys ...string) g.Node {
	nodes := make([]g.Node, 0, 2*len(keys))
	for i, k := range keys {
		if i > 0 {
			nodes = append(nodes, g.Text("+"))
		}
		nodes = append(nodes, g.El("kbd", g.Text(k)))
	}
	return g.El("span", g.Attr("class", "shortcut"), g.Group(nodes))
}

// hint is a templ component.
var hint = templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
	_, err := io.WriteString(w, `<small class="hint">rendered by templ</small>`)
	return err
})

type showcaseEntry struct {
	name    string
	summary string
	example Part
}

// Components lists the reusable fragments with a live example of each.
func Components(ctx context.Context) Part {
	entries := []showcaseEntry{
		{"Toast", "Notification with a level, optional title and action.",
			components.Success("Saved", components.WithTitle("Settings"))},
		{"Counter", "Server-side counter swapped on every post.", components.Counter(3)},
		{"Badge", "Inline label.", Group{
			components.Badge("new", "info"),
			Text(" "),
			components.Badge("beta", "warning"),
		}},
		{"Shortcut", "A gomponents node embedded as markup.", adapt.MustFromGomponent(shortcut("Ctrl", "K"))},
	}
	if raw, err := adapt.FromTempl(ctx, hint); err == nil {
		entries = append(entries, showcaseEntry{"Hint", "A templ component embedded as markup.", raw})
	}

	return Group{
		H1(Text("Components")),
		Table(Class("showcase"),
			Thead(Tr(Th(Text("Name")), Th(Text("Description")), Th(Text("Example")))),
			Tbody(Range(entries, func(e showcaseEntry, _ int) Part {
				return Tr(
					Th(Attribute("scope", "row"), Code(Text(e.name))),
					Td(Text(e.summary)),
					Td(e.example),
				)
			})),
		),
	}
}
