package render

import (
	"context"
	"io"

	. "github.com/vango-dev/starter/pkg/markup"
)

// PageData contains all data needed to render a complete HTML page.
type PageData struct {
	// Body is the page content placed inside <body>.
	Body Part

	// Title is the page title.
	Title string

	// Lang is the language attribute for the html element.
	// Defaults to the renderer's Lang.
	Lang string

	// Meta contains meta tags for the page.
	Meta []MetaTag

	// Links contains link tags (favicon, preload, etc.).
	Links []LinkTag

	// StyleSheets contains paths to external stylesheets.
	StyleSheets []string

	// Styles contains inline CSS. It is trusted and written unescaped.
	Styles []string

	// Scripts contains script tags. Deferred and async scripts go in the
	// head, the rest at the end of the body.
	Scripts []ScriptTag
}

// MetaTag represents a meta element in the document head.
type MetaTag struct {
	Name      string // name attribute
	Content   string // content attribute
	Property  string // property attribute (for OpenGraph)
	HTTPEquiv string // http-equiv attribute
}

// LinkTag represents a link element in the document head.
type LinkTag struct {
	Rel         string // rel attribute
	Href        string // href attribute
	Type        string // type attribute
	Sizes       string // sizes attribute
	CrossOrigin string // crossorigin attribute
	Media       string // media attribute
}

// ScriptTag represents a script element.
type ScriptTag struct {
	Src    string // src attribute
	Type   string // type attribute
	Defer  bool   // defer attribute
	Async  bool   // async attribute
	Module bool   // type="module"
	Inline string // inline script content, trusted
}

// liveReloadScript reloads the page when the dev server broadcasts a change.
// CSS changes only refetch stylesheets; watch errors go to the console.
const liveReloadScript = `(function(){var p=location.protocol==="https:"?"wss://":"ws://";` +
	`var ws=new WebSocket(p+location.host+%q);ws.onmessage=function(e){` +
	`var m=JSON.parse(e.data);if(m.type==="reload"){location.reload();}` +
	`else if(m.type==="css"){document.querySelectorAll('link[rel="stylesheet"]').forEach(function(l){` +
	`var u=new URL(l.href);u.searchParams.set("v",Date.now());l.href=u.toString();});}` +
	`else if(m.type==="error"){console.error("live reload: "+m.error);}` +
	`else if(m.type==="clear"){console.info("live reload: recovered");}};})();`

// Document builds the full HTML document for page.
func (r *Renderer) Document(page PageData) Fragment {
	lang := page.Lang
	if lang == "" {
		lang = r.config.Lang
	}
	return Doctype(Html(Lang(lang),
		r.head(page),
		Body(page.Body, r.tail(page)),
	))
}

// RenderPage renders a complete HTML document to the given writer.
func (r *Renderer) RenderPage(ctx context.Context, w io.Writer, page PageData) error {
	return r.render(ctx, KindPage, w, r.Document(page))
}

// head builds the document head section.
func (r *Renderer) head(page PageData) *Element {
	return Head(
		Meta(Charset("utf-8")),
		Meta(Name("viewport"), Content("width=device-width, initial-scale=1")),
		If(page.Title != "", Title(Text(page.Title))),
		Range(page.Meta, func(m MetaTag, _ int) Part { return metaTag(m) }),
		Range(page.Links, func(l LinkTag, _ int) Part { return linkTag(l) }),
		Range(page.StyleSheets, func(href string, _ int) Part {
			return Link(Rel("stylesheet"), Href(href))
		}),
		Range(page.Styles, func(css string, _ int) Part { return Style(Raw(css)) }),
		Range(page.Scripts, func(s ScriptTag, _ int) Part {
			return If(s.Defer || s.Async, scriptTag(s))
		}),
	)
}

// tail builds the scripts placed at the end of the body.
func (r *Renderer) tail(page PageData) Group {
	return Group{
		Range(page.Scripts, func(s ScriptTag, _ int) Part {
			return If(!s.Defer && !s.Async, scriptTag(s))
		}),
		If(r.config.ClientScript != "", Script(Src(r.config.ClientScript), Defer())),
		If(r.config.LiveReloadPath != "", Script(Rawf(liveReloadScript, r.config.LiveReloadPath))),
	}
}

// metaTag renders a meta element. Empty fields contribute nothing.
func metaTag(m MetaTag) *Element {
	return Meta(
		optional("name", m.Name),
		optional("property", m.Property),
		optional("http-equiv", m.HTTPEquiv),
		optional("content", m.Content),
	)
}

// linkTag renders a link element.
func linkTag(l LinkTag) *Element {
	return Link(
		optional("rel", l.Rel),
		optional("href", l.Href),
		optional("type", l.Type),
		optional("sizes", l.Sizes),
		optional("crossorigin", l.CrossOrigin),
		optional("media", l.Media),
	)
}

// scriptTag renders a script element.
func scriptTag(s ScriptTag) *Element {
	typ := s.Type
	if s.Module {
		typ = "module"
	}
	return Script(
		optional("src", s.Src),
		optional("type", typ),
		BoolAttr("defer", s.Defer),
		BoolAttr("async", s.Async),
		If(s.Inline != "", Raw(s.Inline)),
	)
}

// optional returns the attribute only when value is set.
func optional(name, value string) Part {
	if value == "" {
		return nil
	}
	return Attribute(name, value)
}
