package pages

import (
	"context"

	. "github.com/vango-dev/starter/el"
)

// About describes how the site works.
func About(ctx context.Context) Part {
	steps := []string{
		"Handlers build a tree of elements with plain function calls.",
		"Attributes given more than once merge: classes append, the rest overwrite.",
		"The tree is serialized once, with text and attribute values escaped.",
		"Fragment endpoints return a single element that the client swaps in.",
	}
	return Group{
		H1(Text("About")),
		P(Text("This site has no client-side templates. Everything you see was rendered by the server.")),
		Ol(Range(steps, func(s string, _ int) Part { return Li(Text(s)) })),
		P(
			Text("See the "),
			A(Href("/components"), Text("component gallery")),
			Text(" or export the site with "),
			Code(Text("starter export")),
			Text("."),
		),
	}
}
