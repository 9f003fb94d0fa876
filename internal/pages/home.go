package pages

import (
	"context"

	. "github.com/vango-dev/starter/el"
	"github.com/vango-dev/starter/internal/components"
)

// Home is the landing page: an introduction and the live counter.
func Home(ctx context.Context) Part {
	return Group{
		Section(Class("hero"),
			H1(Text("Server-rendered, fragment-swapped")),
			P(Class("lead"),
				Text("Every page here is built from plain Go functions and rendered on the server. "),
				Text("Interactions post to an endpoint and swap the returned HTML into place."),
			),
		),
		components.Card("Counter",
			P(Text("The counter lives on the server. Each click returns a new fragment.")),
			components.Counter(0),
		),
		components.Card("Notifications",
			P(Text("Toasts are fragments too:")),
			Div(Class("button-row"),
				Range([]components.Level{
					components.LevelSuccess,
					components.LevelInfo,
					components.LevelWarning,
					components.LevelError,
				}, func(level components.Level, _ int) Part {
					return Button(
						Type("button"),
						Class("btn", "btn-"+string(level)),
						Data("get", "/fragments/toast?level="+string(level)),
						Data("target", "#toasts"),
						Text(string(level)),
					)
				}),
			),
		),
	}
}
