package bundle

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, dir, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "quill.yml"), []byte(content), 0644))
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, `bundle:
    name: BlogBundle
    namespace: Blog
    path: src/BlogBundle

defaults:
    format: xml
`)

	cfg, err := Load(dir)
	require.NoError(t, err)

	assert.Equal(t, "BlogBundle", cfg.Bundle.Name)
	assert.Equal(t, "Blog", cfg.Bundle.Namespace)
	assert.Equal(t, filepath.Join(dir, "src", "BlogBundle"), cfg.Bundle.Path)
	assert.Equal(t, "xml", cfg.DefaultFormat)
}

func TestLoad_Defaults(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, `bundle:
    name: BlogBundle
`)

	cfg, err := Load(dir)
	require.NoError(t, err)

	assert.Equal(t, "BlogBundle", cfg.Bundle.Name)
	assert.Equal(t, "App", cfg.Bundle.Namespace)
	assert.Equal(t, filepath.Join(dir, "src", "AppBundle"), cfg.Bundle.Path)
	assert.Equal(t, "yaml", cfg.DefaultFormat)
}

func TestLoad_AbsoluteBundlePath(t *testing.T) {
	dir := t.TempDir()
	abs := filepath.Join(dir, "elsewhere", "Bundle")
	writeConfig(t, dir, "bundle:\n    path: "+abs+"\n")

	cfg, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, abs, cfg.Bundle.Path)
}

func TestLoad_MissingConfig(t *testing.T) {
	_, err := Load(t.TempDir())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not in a Quill project")
}
