package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseINI_GlobalAndOverrides(t *testing.T) {
	doc, err := ParseINI("gradual.ini", []byte(`
[gradual]
python_version = 3.11
ignore_missing_imports = True

[gradual-trio._core.*]
warn_return_any = False
`))
	require.NoError(t, err)

	require.Len(t, doc.Global.Entries, 2)
	assert.Equal(t, Entry{Key: "python_version", Value: "3.11"}, doc.Global.Entries[0])
	assert.Equal(t, Entry{Key: "ignore_missing_imports", Value: "True"}, doc.Global.Entries[1])

	require.Len(t, doc.Overrides, 1)
	assert.Equal(t, "gradual-trio._core.*", doc.Overrides[0].Name)
	assert.Equal(t, []string{"trio._core.*"}, doc.Overrides[0].Patterns)
	assert.Equal(t, Entry{Key: "warn_return_any", Value: "False"}, doc.Overrides[0].Entries[0])
}

func TestParseINI_CommaSeparatedPatterns(t *testing.T) {
	doc, err := ParseINI("gradual.ini", []byte(`
[gradual-trio.*, outcome.*]
ignore_missing_imports = True
`))
	require.NoError(t, err)
	require.Len(t, doc.Overrides, 1)
	assert.Equal(t, []string{"trio.*", "outcome.*"}, doc.Overrides[0].Patterns)
}

func TestParseINI_ForeignSectionsIgnored(t *testing.T) {
	doc, err := ParseINI("setup.cfg", []byte(`
[metadata]
name = trio

[flake8]
max-line-length = 99

[gradual]
warn_unused_ignores = True
`))
	require.NoError(t, err)
	assert.Equal(t, []string{"metadata", "flake8"}, doc.Ignored)
	require.Len(t, doc.Global.Entries, 1)
}

func TestParseINI_DuplicateKeysPreserved(t *testing.T) {
	doc, err := ParseINI("gradual.ini", []byte(`
[gradual]
pretty = True
pretty = False
`))
	require.NoError(t, err)
	require.Len(t, doc.Global.Entries, 2)
	assert.Equal(t, "True", doc.Global.Entries[0].Value)
	assert.Equal(t, "False", doc.Global.Entries[1].Value)
}

func TestParseINI_MultilineList(t *testing.T) {
	doc, err := ParseINI("gradual.ini", []byte(`
[gradual]
files = trio,
    docs
`))
	require.NoError(t, err)
	require.Len(t, doc.Global.Entries, 1)
	value, ok := doc.Global.Entries[0].Value.(string)
	require.True(t, ok)
	assert.Contains(t, value, "trio")
	assert.Contains(t, value, "docs")
}

func TestParseINI_Malformed(t *testing.T) {
	_, err := ParseINI("gradual.ini", []byte("[gradual\nbroken"))
	assert.Error(t, err)
}

func TestParseINI_EmptyPatternSection(t *testing.T) {
	_, err := ParseINI("gradual.ini", []byte("[gradual-]\nx = y\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no module pattern")
}
