package components

import . "github.com/vango-dev/starter/el"

// Card renders a titled content box. Attributes in body apply to the
// body container.
func Card(title string, body ...Part) *Element {
	return Article(Class("card"),
		If(title != "", Header(Class("card-header"), H3(Text(title)))),
		Div(Class("card-body"), Group(body)),
	)
}

// Badge renders a small inline label.
func Badge(label string, variant string) *Element {
	return Span(Class("badge"), If(variant != "", Class("badge-"+variant)), Text(label))
}
