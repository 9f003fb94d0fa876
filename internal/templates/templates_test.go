package templates

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vango-dev/starter/internal/config"
	"github.com/vango-dev/starter/internal/errors"
)

func TestGet(t *testing.T) {
	for _, name := range []string{"minimal", "site", "s3"} {
		tmpl, err := Get(name)
		require.NoError(t, err, name)
		assert.Equal(t, name, tmpl.Name)
	}

	_, err := Get("nonexistent")
	require.Error(t, err)
	assert.True(t, errors.HasCode(err, "E502"))
}

func TestList(t *testing.T) {
	assert.Equal(t, []string{"minimal", "s3", "site"}, List())
}

// Every template must produce a config the loader accepts.
func TestTemplatesProduceValidConfig(t *testing.T) {
	for _, name := range List() {
		t.Run(name, func(t *testing.T) {
			dir := filepath.Join(t.TempDir(), "blog")
			tmpl, err := Get(name)
			require.NoError(t, err)

			files, err := tmpl.Create(dir, Config{Port: 8080})
			require.NoError(t, err)
			assert.Len(t, files, len(tmpl.Files))

			cfg, err := config.Load(filepath.Join(dir, "starter.yaml"))
			require.NoError(t, err)
			assert.Equal(t, 8080, cfg.Server.Port)
			assert.DirExists(t, filepath.Join(dir, "static"))
		})
	}
}

func TestS3TemplateDefaults(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "blog")
	tmpl, err := Get("s3")
	require.NoError(t, err)
	_, err = tmpl.Create(dir, Config{})
	require.NoError(t, err)

	cfg, err := config.Load(filepath.Join(dir, "starter.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "blog-site", cfg.Export.S3.Bucket)
	assert.Equal(t, "us-east-1", cfg.Export.S3.Region)
	assert.Equal(t, 3000, cfg.Server.Port)
	assert.True(t, cfg.Server.LiveReload)
}

func TestCreateRefusesToOverwrite(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "static"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "static", "app.css"), []byte("mine"), 0o644))

	tmpl, err := Get("site")
	require.NoError(t, err)
	_, err = tmpl.Create(dir, Config{})
	require.Error(t, err)
	assert.True(t, errors.HasCode(err, "E503"))

	assert.NoFileExists(t, filepath.Join(dir, "starter.yaml"))
	data, err := os.ReadFile(filepath.Join(dir, "static", "app.css"))
	require.NoError(t, err)
	assert.Equal(t, "mine", string(data))
}
