package pages

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"

	"github.com/vango-dev/starter/internal/errors"
	"github.com/vango-dev/starter/pkg/assets"
	"github.com/vango-dev/starter/pkg/markup"
	"github.com/vango-dev/starter/pkg/render"
)

func TestDefaultRegistry(t *testing.T) {
	reg := Default()

	assert.Equal(t, []string{"home", "components", "about"}, reg.Names())

	p, ok := reg.LookupPath("/about")
	require.True(t, ok)
	assert.Equal(t, "about", p.Name)

	_, ok = reg.LookupPath("/missing")
	assert.False(t, ok)
}

func TestGetUnknownPage(t *testing.T) {
	_, err := Default().Get("nope")
	require.Error(t, err)
	assert.True(t, errors.HasCode(err, "E501"))

	var e *errors.Error
	require.ErrorAs(t, err, &e)
	assert.Contains(t, e.Suggestion, "home, components, about")
}

func TestRegisterRejectsInvalidPages(t *testing.T) {
	content := func(context.Context) markup.Part { return nil }
	reg := NewRegistry("Test")
	require.NoError(t, reg.Register(Page{Name: "a", Path: "/a", Content: content}))

	tests := []struct {
		name string
		page Page
		want string
	}{
		{"empty name", Page{Path: "/x", Content: content}, "invalid page name"},
		{"name with slash", Page{Name: "a/b", Path: "/x", Content: content}, "invalid page name"},
		{"relative path", Page{Name: "x", Path: "x", Content: content}, "must start with /"},
		{"trailing slash", Page{Name: "x", Path: "/x/", Content: content}, "not canonical"},
		{"no content", Page{Name: "x", Path: "/x"}, "no content"},
		{"duplicate name", Page{Name: "a", Path: "/other", Content: content}, "already registered"},
		{"duplicate path", Page{Name: "b", Path: "/a", Content: content}, "already served"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := reg.Register(tt.page)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestMustRegisterPanics(t *testing.T) {
	assert.Panics(t, func() { NewRegistry("x").MustRegister(Page{Name: "bad"}) })
}

func TestMenuOrder(t *testing.T) {
	menu := Default().Menu()
	require.Len(t, menu, 3)
	assert.Equal(t, "/", menu[0].Href)
	assert.Equal(t, "Components", menu[1].Label)
	assert.Equal(t, "/about", menu[2].Href)
}

func TestPageData(t *testing.T) {
	reg := Default()
	about, err := reg.Get("about")
	require.NoError(t, err)

	data := reg.PageData(context.Background(), about)
	assert.Equal(t, "About · Starter", data.Title)
	assert.Equal(t, []string{"/static/app.css"}, data.StyleSheets)
	assert.Contains(t, data.Meta, render.MetaTag{Name: "description", Content: about.Description})

	home, err := reg.Get("home")
	require.NoError(t, err)
	assert.Equal(t, SiteName, reg.PageData(context.Background(), home).Title)
}

func TestSetAssets(t *testing.T) {
	reg := Default()
	m := assets.NewManifest()
	m.Set(Stylesheet, "app.0123abcd.css")
	reg.SetAssets(assets.NewResolver(m, StaticPrefix))

	home, err := reg.Get("home")
	require.NoError(t, err)
	assert.Equal(t, []string{"/static/app.0123abcd.css"}, reg.PageData(context.Background(), home).StyleSheets)
	assert.Equal(t, "/static/logo.svg", reg.Asset("logo.svg"))
}

func TestEveryPageRendersWellFormed(t *testing.T) {
	reg := Default()
	r := render.NewRenderer(render.RendererConfig{})

	for _, p := range reg.Pages() {
		t.Run(p.Name, func(t *testing.T) {
			out := markup.String(r.Document(reg.PageData(context.Background(), p)))

			assert.True(t, strings.HasPrefix(out, "<!DOCTYPE html><html lang=\"en\">"))
			assert.Contains(t, out, `aria-current="page"`)

			doc, err := html.Parse(strings.NewReader(out))
			require.NoError(t, err)
			assert.Equal(t, 1, countElements(doc, "main"))
		})
	}
}

func TestHomeHasCounterAndToastButtons(t *testing.T) {
	out := markup.String(Home(context.Background()))
	assert.Contains(t, out, `id="counter"`)
	for _, level := range []string{"success", "info", "warning", "error"} {
		assert.Contains(t, out, `data-get="/fragments/toast?level=`+level+`"`)
	}
}

func countElements(n *html.Node, tag string) int {
	count := 0
	if n.Type == html.ElementNode && n.Data == tag {
		count++
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		count += countElements(c, tag)
	}
	return count
}

func TestComponentsEmbedsForeignComponents(t *testing.T) {
	out := markup.String(Components(context.Background()))
	assert.Contains(t, out, `<span class="shortcut"><kbd>Ctrl</kbd>+<kbd>K</kbd></span>`)
	assert.Contains(t, out, `<small class="hint">rendered by templ</small>`)
}
