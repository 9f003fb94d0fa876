// Package el provides the HTML DSL for starter pages and components.
//
// It re-exports element constructors, attribute helpers and the
// conditional helpers from github.com/vango-dev/starter/pkg/markup.
//
// Typical usage:
//
//	import . "github.com/vango-dev/starter/el"
//
//	func Card(title string, body ...Part) *Element {
//	    return Div(Class("card"), H2(Text(title)), Group(body))
//	}
//
// This keeps the dot-imported DSL in a dedicated package while rendering
// and serving live in pkg/render and internal/server.
package el
