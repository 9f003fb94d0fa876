package markup

import "github.com/vango-dev/starter/internal/errors"

// voidElements are elements that cannot have children or a closing tag.
var voidElements = map[string]bool{
	"area":   true,
	"base":   true,
	"br":     true,
	"col":    true,
	"embed":  true,
	"hr":     true,
	"img":    true,
	"input":  true,
	"link":   true,
	"meta":   true,
	"param":  true,
	"source": true,
	"track":  true,
	"wbr":    true,
}

// IsVoidElement returns true if the tag is a void element.
func IsVoidElement(tag string) bool {
	return voidElements[tag]
}

// Tag creates an element for an arbitrary tag name, looking up whether it
// is void. The tag name is not validated.
func Tag(name string, parts ...Part) *Element {
	return El(name, IsVoidElement(name), parts...)
}

// Heading creates an h1..h6 element for level.
// It panics with E101 unless 1 <= level <= 6.
func Heading(level int, parts ...Part) *Element {
	if level < 1 || level > 6 {
		panic(errors.New("E101").WithDetailf("heading level %d is outside 1..6", level))
	}
	return El(headingTags[level-1], false, parts...)
}

var headingTags = [...]string{"h1", "h2", "h3", "h4", "h5", "h6"}

// Document structure elements

func Html(parts ...Part) *Element     { return El("html", false, parts...) }
func Head(parts ...Part) *Element     { return El("head", false, parts...) }
func Body(parts ...Part) *Element     { return El("body", false, parts...) }
func Title(parts ...Part) *Element    { return El("title", false, parts...) }
func Meta(parts ...Part) *Element     { return El("meta", true, parts...) }
func Link(parts ...Part) *Element     { return El("link", true, parts...) }
func Base(parts ...Part) *Element     { return El("base", true, parts...) }
func Style(parts ...Part) *Element    { return El("style", false, parts...) }
func Script(parts ...Part) *Element   { return El("script", false, parts...) }
func Noscript(parts ...Part) *Element { return El("noscript", false, parts...) }

// Content sectioning elements

func Header(parts ...Part) *Element  { return El("header", false, parts...) }
func Footer(parts ...Part) *Element  { return El("footer", false, parts...) }
func Main(parts ...Part) *Element    { return El("main", false, parts...) }
func Nav(parts ...Part) *Element     { return El("nav", false, parts...) }
func Section(parts ...Part) *Element { return El("section", false, parts...) }
func Article(parts ...Part) *Element { return El("article", false, parts...) }
func Aside(parts ...Part) *Element   { return El("aside", false, parts...) }
func Address(parts ...Part) *Element { return El("address", false, parts...) }
func Hgroup(parts ...Part) *Element  { return El("hgroup", false, parts...) }
func H1(parts ...Part) *Element      { return El("h1", false, parts...) }
func H2(parts ...Part) *Element      { return El("h2", false, parts...) }
func H3(parts ...Part) *Element      { return El("h3", false, parts...) }
func H4(parts ...Part) *Element      { return El("h4", false, parts...) }
func H5(parts ...Part) *Element      { return El("h5", false, parts...) }
func H6(parts ...Part) *Element      { return El("h6", false, parts...) }

// Text content elements

func Div(parts ...Part) *Element        { return El("div", false, parts...) }
func P(parts ...Part) *Element          { return El("p", false, parts...) }
func Span(parts ...Part) *Element       { return El("span", false, parts...) }
func Pre(parts ...Part) *Element        { return El("pre", false, parts...) }
func Blockquote(parts ...Part) *Element { return El("blockquote", false, parts...) }
func Ul(parts ...Part) *Element         { return El("ul", false, parts...) }
func Ol(parts ...Part) *Element         { return El("ol", false, parts...) }
func Li(parts ...Part) *Element         { return El("li", false, parts...) }
func Dl(parts ...Part) *Element         { return El("dl", false, parts...) }
func Dt(parts ...Part) *Element         { return El("dt", false, parts...) }
func Dd(parts ...Part) *Element         { return El("dd", false, parts...) }
func Hr(parts ...Part) *Element         { return El("hr", true, parts...) }
func Figure(parts ...Part) *Element     { return El("figure", false, parts...) }
func Figcaption(parts ...Part) *Element { return El("figcaption", false, parts...) }

// Inline text semantics

func A(parts ...Part) *Element      { return El("a", false, parts...) }
func Strong(parts ...Part) *Element { return El("strong", false, parts...) }
func Em(parts ...Part) *Element     { return El("em", false, parts...) }
func B(parts ...Part) *Element      { return El("b", false, parts...) }
func I(parts ...Part) *Element      { return El("i", false, parts...) }
func U(parts ...Part) *Element      { return El("u", false, parts...) }
func S(parts ...Part) *Element      { return El("s", false, parts...) }
func Small(parts ...Part) *Element  { return El("small", false, parts...) }
func Mark(parts ...Part) *Element   { return El("mark", false, parts...) }
func Sub(parts ...Part) *Element    { return El("sub", false, parts...) }
func Sup(parts ...Part) *Element    { return El("sup", false, parts...) }
func Code(parts ...Part) *Element   { return El("code", false, parts...) }
func Kbd(parts ...Part) *Element    { return El("kbd", false, parts...) }
func Samp(parts ...Part) *Element   { return El("samp", false, parts...) }
func Abbr(parts ...Part) *Element   { return El("abbr", false, parts...) }
func Time_(parts ...Part) *Element  { return El("time", false, parts...) }
func Q(parts ...Part) *Element      { return El("q", false, parts...) }
func Br(parts ...Part) *Element     { return El("br", true, parts...) }
func Wbr(parts ...Part) *Element    { return El("wbr", true, parts...) }

// Embedded content

func Img(parts ...Part) *Element     { return El("img", true, parts...) }
func Picture(parts ...Part) *Element { return El("picture", false, parts...) }
func Source(parts ...Part) *Element  { return El("source", true, parts...) }
func Video(parts ...Part) *Element   { return El("video", false, parts...) }
func Audio(parts ...Part) *Element   { return El("audio", false, parts...) }
func Track(parts ...Part) *Element   { return El("track", true, parts...) }
func Iframe(parts ...Part) *Element  { return El("iframe", false, parts...) }
func Embed(parts ...Part) *Element   { return El("embed", true, parts...) }
func Object(parts ...Part) *Element  { return El("object", false, parts...) }
func Param(parts ...Part) *Element   { return El("param", true, parts...) }
func Canvas(parts ...Part) *Element  { return El("canvas", false, parts...) }
func Svg(parts ...Part) *Element     { return El("svg", false, parts...) }

// Table elements

func Table(parts ...Part) *Element    { return El("table", false, parts...) }
func Caption(parts ...Part) *Element  { return El("caption", false, parts...) }
func Colgroup(parts ...Part) *Element { return El("colgroup", false, parts...) }
func Col(parts ...Part) *Element      { return El("col", true, parts...) }
func Thead(parts ...Part) *Element    { return El("thead", false, parts...) }
func Tbody(parts ...Part) *Element    { return El("tbody", false, parts...) }
func Tfoot(parts ...Part) *Element    { return El("tfoot", false, parts...) }
func Tr(parts ...Part) *Element       { return El("tr", false, parts...) }
func Th(parts ...Part) *Element       { return El("th", false, parts...) }
func Td(parts ...Part) *Element       { return El("td", false, parts...) }

// Form elements

func Form(parts ...Part) *Element     { return El("form", false, parts...) }
func Fieldset(parts ...Part) *Element { return El("fieldset", false, parts...) }
func Legend(parts ...Part) *Element   { return El("legend", false, parts...) }
func Label(parts ...Part) *Element    { return El("label", false, parts...) }
func Input(parts ...Part) *Element    { return El("input", true, parts...) }
func Button(parts ...Part) *Element   { return El("button", false, parts...) }
func Select(parts ...Part) *Element   { return El("select", false, parts...) }
func Optgroup(parts ...Part) *Element { return El("optgroup", false, parts...) }
func Option(parts ...Part) *Element   { return El("option", false, parts...) }
func Textarea(parts ...Part) *Element { return El("textarea", false, parts...) }
func Output(parts ...Part) *Element   { return El("output", false, parts...) }
func Progress(parts ...Part) *Element { return El("progress", false, parts...) }
func Meter(parts ...Part) *Element    { return El("meter", false, parts...) }
func Datalist(parts ...Part) *Element { return El("datalist", false, parts...) }

// Interactive elements

func Details(parts ...Part) *Element  { return El("details", false, parts...) }
func Summary(parts ...Part) *Element  { return El("summary", false, parts...) }
func Dialog(parts ...Part) *Element   { return El("dialog", false, parts...) }
func Menu(parts ...Part) *Element     { return El("menu", false, parts...) }
func Template(parts ...Part) *Element { return El("template", false, parts...) }
func Slot(parts ...Part) *Element     { return El("slot", false, parts...) }
