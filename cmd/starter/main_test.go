package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vango-dev/starter/internal/errors"
)

// run executes the CLI in an empty working directory.
func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	chdir(t, t.TempDir())

	var stdout, stderr bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return stdout.String(), stderr.String(), err
}

func TestVersionShort(t *testing.T) {
	out, _, err := run(t, "version", "--short")
	require.NoError(t, err)
	assert.Equal(t, "dev\n", out)
}

func TestVersion(t *testing.T) {
	out, _, err := run(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "Version:    dev")
	assert.Contains(t, out, "Go version:")
}

func TestRenderPage(t *testing.T) {
	out, _, err := run(t, "render", "about")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "<!DOCTYPE html>"))
	assert.Contains(t, out, "<title>About · Starter</title>")
}

func TestRenderContentOnly(t *testing.T) {
	out, _, err := run(t, "render", "about", "--content")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "<h1>About</h1>"))
	assert.NotContains(t, out, "<html")
}

func TestRenderToFile(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "home.html")

	out, stderr, err := run(t, "render", "home", "-o", file)
	require.NoError(t, err)
	assert.Empty(t, out)
	assert.Contains(t, stderr, "Wrote "+file)

	data, err := os.ReadFile(file)
	require.NoError(t, err)
	assert.Contains(t, string(data), "<title>Starter</title>")
}

func TestRenderUnknownPage(t *testing.T) {
	_, _, err := run(t, "render", "nope")
	require.Error(t, err)
	assert.True(t, errors.HasCode(err, "E501"))
}

func TestRenderRequiresPage(t *testing.T) {
	_, _, err := run(t, "render")
	assert.Error(t, err)
}

func TestExport(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "public")

	out, _, err := run(t, "export", "--dir", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "Exported 3 pages and 1 assets to "+dir)

	for _, name := range []string{"index.html", "components.html", "about.html"} {
		assert.FileExists(t, filepath.Join(dir, name))
	}
}

func TestExportWithStaticDir(t *testing.T) {
	chdir(t, t.TempDir())
	require.NoError(t, os.Mkdir("static", 0o755))
	require.NoError(t, os.WriteFile(filepath.Join("static", "app.css"), []byte("body{}"), 0o644))

	var stdout bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&stdout)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"export"})
	require.NoError(t, cmd.ExecuteContext(context.Background()))

	assert.Contains(t, stdout.String(), "Exported 3 pages and 2 assets to dist")
	assert.FileExists(t, filepath.Join("dist", "static", "manifest.json"))
}

func TestInitThenRender(t *testing.T) {
	chdir(t, t.TempDir())

	cmd := newRootCmd()
	var stdout bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"init", "--port", "4000"})
	require.NoError(t, cmd.ExecuteContext(context.Background()))
	assert.Contains(t, stdout.String(), "Created site project in .")
	assert.FileExists(t, "starter.yaml")
	assert.FileExists(t, filepath.Join("static", "app.css"))

	// The generated config is picked up from the working directory.
	cmd = newRootCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"render", "home"})
	require.NoError(t, cmd.ExecuteContext(context.Background()))

	// A second init refuses to overwrite.
	cmd = newRootCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"init"})
	err := cmd.ExecuteContext(context.Background())
	require.Error(t, err)
	assert.True(t, errors.HasCode(err, "E503"))
}

func TestConfigFileErrors(t *testing.T) {
	_, _, err := run(t, "--config", "/does/not/exist.yaml", "render", "home")
	require.Error(t, err)
	assert.True(t, errors.HasCode(err, "E202"))
}

func TestInvalidConfigFromEnv(t *testing.T) {
	t.Setenv("STARTER_RENDER_LANG", "not a lang")
	_, _, err := run(t, "render", "home")
	require.Error(t, err)
	assert.True(t, errors.HasCode(err, "E201"))
}
