package assets

// Resolver turns an asset name into a URL path.
type Resolver interface {
	Asset(name string) string
}

type manifestResolver struct {
	manifest *Manifest
	prefix   string
}

// NewResolver resolves names through m and prepends prefix:
//
//	NewResolver(m, "/static/").Asset("app.css") // "/static/app.3f2a9c1e.css"
func NewResolver(m *Manifest, prefix string) Resolver {
	return &manifestResolver{manifest: m, prefix: prefix}
}

func (r *manifestResolver) Asset(name string) string {
	return r.prefix + r.manifest.Resolve(name)
}

type passthrough struct {
	prefix string
}

// NewPassthroughResolver only prepends prefix, for serving unhashed files.
func NewPassthroughResolver(prefix string) Resolver {
	return passthrough{prefix: prefix}
}

func (p passthrough) Asset(name string) string {
	return p.prefix + name
}
