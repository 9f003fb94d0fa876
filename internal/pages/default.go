package pages

// SiteName is the name shown in the header and titles.
const SiteName = "Starter"

// Stylesheet is the site stylesheet, an asset in the static directory.
const Stylesheet = "app.css"

// Default returns the registry with the built-in pages.
func Default() *Registry {
	return NewRegistry(SiteName, Stylesheet).MustRegister(
		Page{
			Name:        "home",
			Path:        "/",
			Title:       "Home",
			Description: "A server-rendered starter site built on a small HTML engine.",
			Order:       0,
			Content:     Home,
		},
		Page{
			Name:        "components",
			Path:        "/components",
			Title:       "Components",
			Description: "The reusable fragments that make up the starter site.",
			Order:       10,
			Content:     Components,
		},
		Page{
			Name:        "about",
			Path:        "/about",
			Title:       "About",
			Description: "How the starter renders pages and fragments.",
			Order:       20,
			Content:     About,
		},
	)
}
