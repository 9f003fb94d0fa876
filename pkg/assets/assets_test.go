package assets

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestManifestResolve(t *testing.T) {
	m := NewManifest()
	m.Set("app.css", "app.abc12345.css")

	tests := []struct {
		name     string
		source   string
		expected string
	}{
		{"found entry", "app.css", "app.abc12345.css"},
		{"missing entry returns original", "unknown.js", "unknown.js"},
		{"empty string returns empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, m.Resolve(tt.source))
		})
	}

	assert.True(t, m.Has("app.css"))
	assert.False(t, m.Has("unknown.js"))
	assert.Equal(t, 1, m.Len())
}

func TestManifestAllIsCopy(t *testing.T) {
	m := NewManifest()
	m.Set("a.js", "a.1.js")

	all := m.All()
	all["b.js"] = "b.2.js"
	assert.Equal(t, 1, m.Len())
}

func TestManifestSaveLoad(t *testing.T) {
	m := NewManifest()
	m.Set("app.css", "app.abc12345.css")
	m.Set("img/logo.svg", "img/logo.0011aabb.svg")

	file := filepath.Join(t.TempDir(), ManifestFile)
	require.NoError(t, m.Save(file))

	loaded, err := LoadManifest(file)
	require.NoError(t, err)
	assert.Equal(t, m.All(), loaded.All())

	_, err = LoadManifest(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)

	bad := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte("{"), 0o644))
	_, err = LoadManifest(bad)
	assert.Error(t, err)
}

func TestResolvers(t *testing.T) {
	m := NewManifest()
	m.Set("app.css", "app.abc12345.css")

	assert.Equal(t, "/static/app.abc12345.css", NewResolver(m, "/static/").Asset("app.css"))
	assert.Equal(t, "/static/other.css", NewResolver(m, "/static/").Asset("other.css"))
	assert.Equal(t, "/static/app.css", NewPassthroughResolver("/static/").Asset("app.css"))
}

func TestFingerprint(t *testing.T) {
	a := Fingerprint("css/app.css", []byte("body{}"))
	b := Fingerprint("css/app.css", []byte("body{margin:0}"))

	assert.Regexp(t, `^css/app\.[0-9a-f]{8}\.css$`, a)
	assert.NotEqual(t, a, b)
	assert.Equal(t, a, Fingerprint("css/app.css", []byte("body{}")))

	assert.Regexp(t, `^LICENSE\.[0-9a-f]{8}$`, Fingerprint("LICENSE", nil))
	assert.Regexp(t, `^\.nojekyll\.[0-9a-f]{8}$`, Fingerprint(".nojekyll", nil))
}

func TestBuild(t *testing.T) {
	src := t.TempDir()
	dst := filepath.Join(t.TempDir(), "static")
	require.NoError(t, os.WriteFile(filepath.Join(src, "app.css"), []byte("body{}"), 0o644))
	require.NoError(t, os.MkdirAll(filepath.Join(src, "img"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(src, "img", "logo.svg"), []byte("<svg/>"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(src, "draft.swp"), []byte("x"), 0o644))

	m, err := Build(src, dst, "*.swp")
	require.NoError(t, err)
	assert.Equal(t, 2, m.Len())
	assert.False(t, m.Has("draft.swp"))

	hashed := m.Resolve("img/logo.svg")
	assert.Regexp(t, `^img/logo\.[0-9a-f]{8}\.svg$`, hashed)

	data, err := os.ReadFile(filepath.Join(dst, filepath.FromSlash(hashed)))
	require.NoError(t, err)
	assert.Equal(t, "<svg/>", string(data))
}

func TestBuildMissingSource(t *testing.T) {
	_, err := Build(filepath.Join(t.TempDir(), "missing"), t.TempDir())
	assert.Error(t, err)
}
