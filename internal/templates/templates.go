package templates

import (
	"bytes"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"text/template"

	"github.com/vango-dev/starter/internal/errors"
)

// Config contains template variables.
type Config struct {
	// ProjectName is the name of the project.
	ProjectName string

	// Port is the server port. Zero means 3000.
	Port int

	// Bucket and Region fill the S3 export settings.
	Bucket string
	Region string
}

// Template is a named set of project files.
type Template struct {
	Name        string
	Description string

	// Files maps slash-separated relative paths to text/template sources.
	Files map[string]string
}

var templates = map[string]*Template{
	"minimal": minimalTemplate(),
	"site":    siteTemplate(),
	"s3":      s3Template(),
}

// Get returns a template by name.
func Get(name string) (*Template, error) {
	tmpl, ok := templates[name]
	if !ok {
		return nil, errors.New("E502").
			WithDetailf("no template named %q", name).
			WithSuggestion("Available templates: " + strings.Join(List(), ", "))
	}
	return tmpl, nil
}

// List returns the template names, sorted.
func List() []string {
	names := make([]string, 0, len(templates))
	for name := range templates {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Paths returns the template's file paths, sorted.
func (t *Template) Paths() []string {
	paths := make([]string, 0, len(t.Files))
	for p := range t.Files {
		paths = append(paths, p)
	}
	sort.Strings(paths)
	return paths
}

// Create writes the template into dir and returns the files written.
// Nothing is written if any target file already exists.
func (t *Template) Create(dir string, cfg Config) ([]string, error) {
	if cfg.Port == 0 {
		cfg.Port = 3000
	}
	if cfg.ProjectName == "" {
		cfg.ProjectName = filepath.Base(dir)
		if abs, err := filepath.Abs(dir); err == nil {
			cfg.ProjectName = filepath.Base(abs)
		}
	}

	rendered := make(map[string][]byte, len(t.Files))
	for _, rel := range t.Paths() {
		full := filepath.Join(dir, filepath.FromSlash(rel))
		if _, err := os.Stat(full); err == nil {
			return nil, errors.New("E503").WithDetail(full)
		}

		tmpl, err := template.New(rel).Parse(t.Files[rel])
		if err != nil {
			return nil, errors.Newf(errors.CategoryCLI, "invalid template %s: %v", rel, err)
		}
		var buf bytes.Buffer
		if err := tmpl.Execute(&buf, cfg); err != nil {
			return nil, errors.Newf(errors.CategoryCLI, "template execute error %s: %v", rel, err)
		}
		rendered[full] = buf.Bytes()
	}

	written := make([]string, 0, len(rendered))
	for _, rel := range t.Paths() {
		full := filepath.Join(dir, filepath.FromSlash(rel))
		if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
			return written, err
		}
		if err := os.WriteFile(full, rendered[full], 0o644); err != nil {
			return written, err
		}
		written = append(written, full)
	}
	return written, nil
}

const configHeader = `# {{.ProjectName}} configuration.
# Every key can be overridden with a STARTER_ environment variable,
# e.g. STARTER_SERVER_PORT=8080.
`

func minimalTemplate() *Template {
	return &Template{
		Name:        "minimal",
		Description: "Config file and an empty static directory",
		Files: map[string]string{
			"starter.yaml": configHeader + `
server:
  port: {{.Port}}
`,
			"static/.gitkeep": "",
		},
	}
}

const siteConfig = `
server:
  host: localhost
  port: {{.Port}}
  static_dir: static
  live_reload: true

render:
  lang: en

log:
  level: info
  format: text

dev:
  watch: [static]
  debounce: 100ms

export:
  dir: dist
`

const stylesheet = `body {
  margin: 0;
  font: 16px/1.5 system-ui, sans-serif;
}

.site-main {
  max-width: 60rem;
  margin: 0 auto;
  padding: 2rem;
}
`

func siteTemplate() *Template {
	return &Template{
		Name:        "site",
		Description: "Live-reload config with a stylesheet",
		Files: map[string]string{
			"starter.yaml":      configHeader + siteConfig,
			"static/app.css":    stylesheet,
			"static/robots.txt": "User-agent: *\nAllow: /\n",
		},
	}
}

func s3Template() *Template {
	return &Template{
		Name:        "s3",
		Description: "Site template that publishes exports to S3",
		Files: map[string]string{
			"starter.yaml": configHeader + siteConfig + `  s3:
    bucket: {{if .Bucket}}{{.Bucket}}{{else}}{{.ProjectName}}-site{{end}}
    region: {{if .Region}}{{.Region}}{{else}}us-east-1{{end}}
    prefix: ""
`,
			"static/app.css":    stylesheet,
			"static/robots.txt": "User-agent: *\nAllow: /\n",
		},
	}
}
