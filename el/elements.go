// This file re-exports markup element constructors for the el package.
package el

import "github.com/vango-dev/starter/pkg/markup"

func Html(parts ...Part) *Element {
	return markup.Html(parts...)
}
func Head(parts ...Part) *Element {
	return markup.Head(parts...)
}
func Body(parts ...Part) *Element {
	return markup.Body(parts...)
}
func Title(parts ...Part) *Element {
	return markup.Title(parts...)
}
func Meta(parts ...Part) *Element {
	return markup.Meta(parts...)
}
func Link(parts ...Part) *Element {
	return markup.Link(parts...)
}
func Base(parts ...Part) *Element {
	return markup.Base(parts...)
}
func Style(parts ...Part) *Element {
	return markup.Style(parts...)
}
func Script(parts ...Part) *Element {
	return markup.Script(parts...)
}
func Noscript(parts ...Part) *Element {
	return markup.Noscript(parts...)
}
func Header(parts ...Part) *Element {
	return markup.Header(parts...)
}
func Footer(parts ...Part) *Element {
	return markup.Footer(parts...)
}
func Main(parts ...Part) *Element {
	return markup.Main(parts...)
}
func Nav(parts ...Part) *Element {
	return markup.Nav(parts...)
}
func Section(parts ...Part) *Element {
	return markup.Section(parts...)
}
func Article(parts ...Part) *Element {
	return markup.Article(parts...)
}
func Aside(parts ...Part) *Element {
	return markup.Aside(parts...)
}
func Address(parts ...Part) *Element {
	return markup.Address(parts...)
}
func Hgroup(parts ...Part) *Element {
	return markup.Hgroup(parts...)
}
func H1(parts ...Part) *Element {
	return markup.H1(parts...)
}
func H2(parts ...Part) *Element {
	return markup.H2(parts...)
}
func H3(parts ...Part) *Element {
	return markup.H3(parts...)
}
func H4(parts ...Part) *Element {
	return markup.H4(parts...)
}
func H5(parts ...Part) *Element {
	return markup.H5(parts...)
}
func H6(parts ...Part) *Element {
	return markup.H6(parts...)
}
func Div(parts ...Part) *Element {
	return markup.Div(parts...)
}
func P(parts ...Part) *Element {
	return markup.P(parts...)
}
func Span(parts ...Part) *Element {
	return markup.Span(parts...)
}
func Pre(parts ...Part) *Element {
	return markup.Pre(parts...)
}
func Blockquote(parts ...Part) *Element {
	return markup.Blockquote(parts...)
}
func Ul(parts ...Part) *Element {
	return markup.Ul(parts...)
}
func Ol(parts ...Part) *Element {
	return markup.Ol(parts...)
}
func Li(parts ...Part) *Element {
	return markup.Li(parts...)
}
func Dl(parts ...Part) *Element {
	return markup.Dl(parts...)
}
func Dt(parts ...Part) *Element {
	return markup.Dt(parts...)
}
func Dd(parts ...Part) *Element {
	return markup.Dd(parts...)
}
func Hr(parts ...Part) *Element {
	return markup.Hr(parts...)
}
func Figure(parts ...Part) *Element {
	return markup.Figure(parts...)
}
func Figcaption(parts ...Part) *Element {
	return markup.Figcaption(parts...)
}
func A(parts ...Part) *Element {
	return markup.A(parts...)
}
func Strong(parts ...Part) *Element {
	return markup.Strong(parts...)
}
func Em(parts ...Part) *Element {
	return markup.Em(parts...)
}
func B(parts ...Part) *Element {
	return markup.B(parts...)
}
func I(parts ...Part) *Element {
	return markup.I(parts...)
}
func U(parts ...Part) *Element {
	return markup.U(parts...)
}
func S(parts ...Part) *Element {
	return markup.S(parts...)
}
func Small(parts ...Part) *Element {
	return markup.Small(parts...)
}
func Mark(parts ...Part) *Element {
	return markup.Mark(parts...)
}
func Sub(parts ...Part) *Element {
	return markup.Sub(parts...)
}
func Sup(parts ...Part) *Element {
	return markup.Sup(parts...)
}
func Code(parts ...Part) *Element {
	return markup.Code(parts...)
}
func Kbd(parts ...Part) *Element {
	return markup.Kbd(parts...)
}
func Samp(parts ...Part) *Element {
	return markup.Samp(parts...)
}
func Abbr(parts ...Part) *Element {
	return markup.Abbr(parts...)
}
func Time_(parts ...Part) *Element {
	return markup.Time_(parts...)
}
func Q(parts ...Part) *Element {
	return markup.Q(parts...)
}
func Br(parts ...Part) *Element {
	return markup.Br(parts...)
}
func Wbr(parts ...Part) *Element {
	return markup.Wbr(parts...)
}
func Img(parts ...Part) *Element {
	return markup.Img(parts...)
}
func Picture(parts ...Part) *Element {
	return markup.Picture(parts...)
}
func Source(parts ...Part) *Element {
	return markup.Source(parts...)
}
func Video(parts ...Part) *Element {
	return markup.Video(parts...)
}
func Audio(parts ...Part) *Element {
	return markup.Audio(parts...)
}
func Track(parts ...Part) *Element {
	return markup.Track(parts...)
}
func Iframe(parts ...Part) *Element {
	return markup.Iframe(parts...)
}
func Embed(parts ...Part) *Element {
	return markup.Embed(parts...)
}
func Object(parts ...Part) *Element {
	return markup.Object(parts...)
}
func Param(parts ...Part) *Element {
	return markup.Param(parts...)
}
func Canvas(parts ...Part) *Element {
	return markup.Canvas(parts...)
}
func Svg(parts ...Part) *Element {
	return markup.Svg(parts...)
}
func Table(parts ...Part) *Element {
	return markup.Table(parts...)
}
func Caption(parts ...Part) *Element {
	return markup.Caption(parts...)
}
func Colgroup(parts ...Part) *Element {
	return markup.Colgroup(parts...)
}
func Col(parts ...Part) *Element {
	return markup.Col(parts...)
}
func Thead(parts ...Part) *Element {
	return markup.Thead(parts...)
}
func Tbody(parts ...Part) *Element {
	return markup.Tbody(parts...)
}
func Tfoot(parts ...Part) *Element {
	return markup.Tfoot(parts...)
}
func Tr(parts ...Part) *Element {
	return markup.Tr(parts...)
}
func Th(parts ...Part) *Element {
	return markup.Th(parts...)
}
func Td(parts ...Part) *Element {
	return markup.Td(parts...)
}
func Form(parts ...Part) *Element {
	return markup.Form(parts...)
}
func Fieldset(parts ...Part) *Element {
	return markup.Fieldset(parts...)
}
func Legend(parts ...Part) *Element {
	return markup.Legend(parts...)
}
func Label(parts ...Part) *Element {
	return markup.Label(parts...)
}
func Input(parts ...Part) *Element {
	return markup.Input(parts...)
}
func Button(parts ...Part) *Element {
	return markup.Button(parts...)
}
func Select(parts ...Part) *Element {
	return markup.Select(parts...)
}
func Optgroup(parts ...Part) *Element {
	return markup.Optgroup(parts...)
}
func Option(parts ...Part) *Element {
	return markup.Option(parts...)
}
func Textarea(parts ...Part) *Element {
	return markup.Textarea(parts...)
}
func Output(parts ...Part) *Element {
	return markup.Output(parts...)
}
func Progress(parts ...Part) *Element {
	return markup.Progress(parts...)
}
func Meter(parts ...Part) *Element {
	return markup.Meter(parts...)
}
func Datalist(parts ...Part) *Element {
	return markup.Datalist(parts...)
}
func Details(parts ...Part) *Element {
	return markup.Details(parts...)
}
func Summary(parts ...Part) *Element {
	return markup.Summary(parts...)
}
func Dialog(parts ...Part) *Element {
	return markup.Dialog(parts...)
}
func Menu(parts ...Part) *Element {
	return markup.Menu(parts...)
}
func Template(parts ...Part) *Element {
	return markup.Template(parts...)
}
func Slot(parts ...Part) *Element {
	return markup.Slot(parts...)
}
