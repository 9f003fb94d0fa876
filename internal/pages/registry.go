package pages

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/vango-dev/starter/internal/components"
	"github.com/vango-dev/starter/internal/errors"
	"github.com/vango-dev/starter/pkg/assets"
	"github.com/vango-dev/starter/pkg/markup"
	"github.com/vango-dev/starter/pkg/render"
	"github.com/vango-dev/starter/pkg/routepath"
)

// StaticPrefix is the URL prefix static assets are served under.
const StaticPrefix = "/static/"

// Page is one full-document route of the site.
type Page struct {
	// Name identifies the page in the CLI and export file names.
	Name string

	// Path is the URL path the page is served at.
	Path string

	// Title is the document title and menu label.
	Title string

	// Description fills the description meta tag.
	Description string

	// Order positions the page in the menu. Lower comes first.
	Order int

	// Content builds the main content of the page.
	Content func(ctx context.Context) markup.Part
}

// Registry maps page names and paths to pages.
// It is safe for concurrent use.
type Registry struct {
	site        string
	stylesheets []string

	mu     sync.RWMutex
	assets assets.Resolver
	byName map[string]Page
	byPath map[string]Page
}

// NewRegistry creates an empty registry for the named site. Stylesheets
// are asset names resolved under StaticPrefix.
func NewRegistry(site string, stylesheets ...string) *Registry {
	return &Registry{
		site:        site,
		stylesheets: stylesheets,
		assets:      assets.NewPassthroughResolver(StaticPrefix),
		byName:      make(map[string]Page),
		byPath:      make(map[string]Page),
	}
}

// Register adds a page. Names and paths must be unique.
func (r *Registry) Register(p Page) error {
	if p.Name == "" || strings.ContainsAny(p.Name, `/\. `) {
		return fmt.Errorf("invalid page name %q", p.Name)
	}
	if !strings.HasPrefix(p.Path, "/") {
		return fmt.Errorf("page %q: path %q must start with /", p.Name, p.Path)
	}
	if !routepath.IsCanonical(p.Path) {
		return fmt.Errorf("page %q: path %q is not canonical", p.Name, p.Path)
	}
	if p.Content == nil {
		return fmt.Errorf("page %q has no content", p.Name)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byName[p.Name]; ok {
		return fmt.Errorf("page %q already registered", p.Name)
	}
	if other, ok := r.byPath[p.Path]; ok {
		return fmt.Errorf("path %s already served by page %q", p.Path, other.Name)
	}
	r.byName[p.Name] = p
	r.byPath[p.Path] = p
	return nil
}

// MustRegister is like Register but panics on error.
func (r *Registry) MustRegister(pages ...Page) *Registry {
	for _, p := range pages {
		if err := r.Register(p); err != nil {
			panic(err)
		}
	}
	return r
}

// SetAssets sets the resolver used for stylesheet URLs, e.g. one backed
// by a fingerprint manifest.
func (r *Registry) SetAssets(res assets.Resolver) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.assets = res
}

// Asset resolves an asset name to its URL.
func (r *Registry) Asset(name string) string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.assets.Asset(name)
}

// Get returns the page with the given name, or an E501 error.
func (r *Registry) Get(name string) (Page, error) {
	r.mu.RLock()
	p, ok := r.byName[name]
	r.mu.RUnlock()
	if !ok {
		return Page{}, errors.New("E501").
			WithDetailf("no page named %q", name).
			WithSuggestion("Available pages: " + strings.Join(r.Names(), ", "))
	}
	return p, nil
}

// LookupPath returns the page served at path.
func (r *Registry) LookupPath(path string) (Page, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.byPath[path]
	return p, ok
}

// Pages returns all pages in menu order.
func (r *Registry) Pages() []Page {
	r.mu.RLock()
	pages := make([]Page, 0, len(r.byName))
	for _, p := range r.byName {
		pages = append(pages, p)
	}
	r.mu.RUnlock()

	sort.Slice(pages, func(i, j int) bool {
		if pages[i].Order != pages[j].Order {
			return pages[i].Order < pages[j].Order
		}
		return pages[i].Name < pages[j].Name
	})
	return pages
}

// Names returns the page names in menu order.
func (r *Registry) Names() []string {
	pages := r.Pages()
	names := make([]string, len(pages))
	for i, p := range pages {
		names[i] = p.Name
	}
	return names
}

// Menu returns the navigation items for all pages.
func (r *Registry) Menu() []components.MenuItem {
	pages := r.Pages()
	items := make([]components.MenuItem, len(pages))
	for i, p := range pages {
		items[i] = components.MenuItem{Label: p.Title, Href: p.Path}
	}
	return items
}

// PageData builds the document for p: the page content inside the site
// layout, with title and meta tags filled in.
func (r *Registry) PageData(ctx context.Context, p Page) render.PageData {
	title := r.site
	if p.Title != "" && p.Path != "/" {
		title = p.Title + " · " + r.site
	}

	var meta []render.MetaTag
	if p.Description != "" {
		meta = append(meta,
			render.MetaTag{Name: "description", Content: p.Description},
			render.MetaTag{Property: "og:description", Content: p.Description},
		)
	}
	meta = append(meta, render.MetaTag{Property: "og:title", Content: title})

	return render.PageData{
		Title:       title,
		Meta:        meta,
		StyleSheets: r.stylesheetURLs(),
		Body:        components.Layout(r.site, r.Menu(), p.Path, p.Content(ctx)),
	}
}

func (r *Registry) stylesheetURLs() []string {
	if len(r.stylesheets) == 0 {
		return nil
	}
	urls := make([]string, len(r.stylesheets))
	for i, name := range r.stylesheets {
		urls[i] = r.Asset(name)
	}
	return urls
}
