package components

import . "github.com/vango-dev/starter/el"

// MenuItem is one navigation entry.
type MenuItem struct {
	Label string
	Href  string
}

// MainMenu renders the site navigation. The item whose Href equals active is
// marked with aria-current="page".
func MainMenu(items []MenuItem, active string) *Element {
	return Nav(Class("menu"), AriaLabel("Main"),
		Ul(Range(items, func(item MenuItem, _ int) Part {
			current := item.Href == active
			return Li(
				A(
					Href(item.Href),
					If(current, Class("active")),
					If(current, AriaCurrent("page")),
					Text(item.Label),
				),
			)
		})),
	)
}
