package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestFileSource_INI(t *testing.T) {
	path := writeFile(t, t.TempDir(), "gradual.ini", `
[gradual]
ignore_missing_imports = True

[gradual-trio.*]
disallow_untyped_defs = True
`)

	doc, err := FileSource{Path: path}.Load()
	require.NoError(t, err)
	assert.Equal(t, path, doc.Source)
	require.Len(t, doc.Global.Entries, 1)
	assert.Equal(t, "ignore_missing_imports", doc.Global.Entries[0].Key)
	assert.Equal(t, "True", doc.Global.Entries[0].Value)
	require.Len(t, doc.Overrides, 1)
	assert.Equal(t, []string{"trio.*"}, doc.Overrides[0].Patterns)
}

func TestFileSource_FileNotFound(t *testing.T) {
	_, err := FileSource{Path: "/nonexistent/gradual.ini"}.Load()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrFileNotFound)
}

func TestFileSource_Directory(t *testing.T) {
	_, err := FileSource{Path: t.TempDir()}.Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "directory")
}

func TestFileSource_UnknownExtension(t *testing.T) {
	path := writeFile(t, t.TempDir(), "gradual.conf", "x = y")
	_, err := FileSource{Path: path}.Load()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnknownFormat)
}

func TestFileSource_EmptyFileIsAllDefaults(t *testing.T) {
	path := writeFile(t, t.TempDir(), "gradual.ini", "")

	doc, err := FileSource{Path: path}.Load()
	require.NoError(t, err)
	assert.Empty(t, doc.Global.Entries)
	assert.Empty(t, doc.Overrides)
	assert.Empty(t, doc.Ignored)
}

func TestDiscover(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "pyproject.toml", "[tool.gradual]\n")
	writeFile(t, dir, "gradual.ini", "[gradual]\n")

	// gradual.ini outranks pyproject.toml.
	path, err := Discover(dir)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "gradual.ini"), path)
}

func TestDiscover_NoConfig(t *testing.T) {
	_, err := Discover(t.TempDir())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNoConfigFile)
}

func TestStaticSource(t *testing.T) {
	doc := &Document{Source: "inline"}
	loaded, err := StaticSource{Doc: doc}.Load()
	require.NoError(t, err)
	assert.Same(t, doc, loaded)
	assert.Equal(t, "inline", StaticSource{Doc: doc}.Name())

	empty, err := StaticSource{}.Load()
	require.NoError(t, err)
	assert.Empty(t, empty.Global.Entries)
}
