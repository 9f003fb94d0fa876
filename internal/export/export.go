package export

import (
	"bytes"
	"context"
	"log/slog"
	"mime"
	"os"
	"path"
	"path/filepath"
	"sort"

	"github.com/vango-dev/starter/internal/errors"
	"github.com/vango-dev/starter/internal/pages"
	"github.com/vango-dev/starter/pkg/assets"
	"github.com/vango-dev/starter/pkg/render"
)

// ContentType is the content type of exported pages.
const ContentType = "text/html; charset=utf-8"

// Publisher uploads an exported page.
type Publisher interface {
	Publish(ctx context.Context, name string, body []byte, contentType string) error
}

// Result describes one exported page or asset. Exactly one of Page and
// Asset is set.
type Result struct {
	Page      string
	Asset     string
	File      string
	Bytes     int
	Published bool
}

// Exporter renders every registered page to a static HTML file.
type Exporter struct {
	Registry  *pages.Registry
	Renderer  *render.Renderer
	Dir       string
	Publisher Publisher // optional
	Logger    *slog.Logger

	// StaticDir, when set and present, is fingerprinted into Dir/static
	// and pages link the hashed files. Ignore lists base-name globs to
	// leave out.
	StaticDir string
	Ignore    []string

	// Extra files are written to Dir unchanged, keyed by file name.
	Extra map[string][]byte
}

// FileName returns the output file name for a page: index.html for the
// root path, <name>.html otherwise.
func FileName(p pages.Page) string {
	if p.Path == "/" {
		return "index.html"
	}
	return p.Name + ".html"
}

// Export copies the static assets, then renders and writes all pages in
// menu order, publishing each file when a Publisher is set. It stops at
// the first failure and returns what was completed so far.
func (e *Exporter) Export(ctx context.Context) ([]Result, error) {
	logger := e.Logger
	if logger == nil {
		logger = slog.Default()
	}
	if err := os.MkdirAll(e.Dir, 0o755); err != nil {
		return nil, errors.New("E301").WithDetail(e.Dir).Wrap(err)
	}

	results, err := e.exportAssets(ctx, logger)
	if err != nil {
		return results, err
	}
	extra, err := e.exportExtra(ctx)
	results = append(results, extra...)
	if err != nil {
		return results, err
	}

	for _, p := range e.Registry.Pages() {
		if err := ctx.Err(); err != nil {
			return results, err
		}

		res, err := e.exportPage(ctx, p)
		if err != nil {
			return results, err
		}
		logger.Info("exported page", "page", res.Page, "file", res.File, "bytes", res.Bytes, "published", res.Published)
		results = append(results, res)
	}
	return results, nil
}

func (e *Exporter) exportPage(ctx context.Context, p pages.Page) (Result, error) {
	var buf bytes.Buffer
	if err := e.Renderer.RenderPage(ctx, &buf, e.Registry.PageData(ctx, p)); err != nil {
		return Result{}, err
	}

	name := FileName(p)
	file := filepath.Join(e.Dir, name)
	if err := writeFileAtomic(file, buf.Bytes()); err != nil {
		return Result{}, errors.New("E301").WithDetail(file).Wrap(err)
	}

	res := Result{Page: p.Name, File: file, Bytes: buf.Len()}
	if e.Publisher != nil {
		if err := e.publish(ctx, name, buf.Bytes(), ContentType); err != nil {
			return res, err
		}
		res.Published = true
	}
	return res, nil
}

// exportAssets fingerprints StaticDir into Dir/static, writes the manifest
// and points the registry at the hashed names.
func (e *Exporter) exportAssets(ctx context.Context, logger *slog.Logger) ([]Result, error) {
	if e.StaticDir == "" {
		return nil, nil
	}
	if _, err := os.Stat(e.StaticDir); os.IsNotExist(err) {
		logger.Debug("no static directory", "dir", e.StaticDir)
		return nil, nil
	}

	staticOut := filepath.Join(e.Dir, "static")
	m, err := assets.Build(e.StaticDir, staticOut, e.Ignore...)
	if err != nil {
		return nil, errors.New("E301").WithDetail(e.StaticDir).Wrap(err)
	}
	if err := m.Save(filepath.Join(staticOut, assets.ManifestFile)); err != nil {
		return nil, errors.New("E301").WithDetail(assets.ManifestFile).Wrap(err)
	}
	e.Registry.SetAssets(assets.NewResolver(m, pages.StaticPrefix))

	entries := m.All()
	names := make([]string, 0, len(entries))
	for name := range entries {
		names = append(names, name)
	}
	sort.Strings(names)

	var results []Result
	for _, name := range names {
		hashed := entries[name]
		file := filepath.Join(staticOut, filepath.FromSlash(hashed))
		res := Result{Asset: name, File: file}

		data, err := os.ReadFile(file)
		if err != nil {
			return results, errors.New("E301").WithDetail(file).Wrap(err)
		}
		res.Bytes = len(data)

		if e.Publisher != nil {
			if err := e.publish(ctx, path.Join("static", hashed), data, assetContentType(hashed)); err != nil {
				return results, err
			}
			res.Published = true
		}
		logger.Debug("exported asset", "asset", name, "file", file)
		results = append(results, res)
	}
	logger.Info("exported assets", "count", len(results), "dir", staticOut)
	return results, nil
}

func (e *Exporter) exportExtra(ctx context.Context) ([]Result, error) {
	names := make([]string, 0, len(e.Extra))
	for name := range e.Extra {
		names = append(names, name)
	}
	sort.Strings(names)

	var results []Result
	for _, name := range names {
		data := e.Extra[name]
		file := filepath.Join(e.Dir, filepath.FromSlash(name))
		if err := writeFileAtomic(file, data); err != nil {
			return results, errors.New("E301").WithDetail(file).Wrap(err)
		}
		res := Result{Asset: name, File: file, Bytes: len(data)}
		if e.Publisher != nil {
			if err := e.publish(ctx, name, data, assetContentType(name)); err != nil {
				return results, err
			}
			res.Published = true
		}
		results = append(results, res)
	}
	return results, nil
}

func (e *Exporter) publish(ctx context.Context, name string, body []byte, contentType string) error {
	err := e.Publisher.Publish(ctx, name, body, contentType)
	if err != nil && !errors.HasCode(err, "E302") {
		err = errors.New("E302").WithDetail(name).Wrap(err)
	}
	return err
}

func assetContentType(name string) string {
	if ct := mime.TypeByExtension(path.Ext(name)); ct != "" {
		return ct
	}
	return "application/octet-stream"
}

// writeFileAtomic writes data next to file and renames it into place so
// readers never see a partial page.
func writeFileAtomic(file string, data []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(file), "."+filepath.Base(file)+".*")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Chmod(tmp.Name(), 0o644); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), file)
}
