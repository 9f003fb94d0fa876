package components

import (
	"time"

	. "github.com/vango-dev/starter/el"
)

// Layout wraps page content with the site header, navigation and footer.
func Layout(site string, menu []MenuItem, active string, content ...Part) Group {
	return Group{
		Header(Class("site-header"),
			A(Class("brand"), Href("/"), Text(site)),
			MainMenu(menu, active),
		),
		Main(ID("content"), Class("site-main"), Group(content)),
		Footer(Class("site-footer"),
			Small(Textf("© %d %s", time.Now().Year(), site)),
		),
		Div(ID("toasts"), Class("toast-stack"), Aria("live", "polite")),
	}
}
