package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseYAML(t *testing.T) {
	doc, err := ParseYAML("gradual.yaml", []byte(`
python_version: "3.11"
warn_return_any: true
overrides:
  - module: trio.*
    warn_return_any: false
  - module:
      - outcome
      - pytest.*
    ignore_errors: true
`))
	require.NoError(t, err)

	require.Len(t, doc.Global.Entries, 2)
	assert.Equal(t, Entry{Key: "python_version", Value: "3.11"}, doc.Global.Entries[0])
	assert.Equal(t, Entry{Key: "warn_return_any", Value: true}, doc.Global.Entries[1])

	require.Len(t, doc.Overrides, 2)
	assert.Equal(t, []string{"trio.*"}, doc.Overrides[0].Patterns)
	assert.Equal(t, []string{"outcome", "pytest.*"}, doc.Overrides[1].Patterns)
}

func TestParseYAML_OverridesMustBeList(t *testing.T) {
	_, err := ParseYAML("gradual.yaml", []byte("overrides: nope\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "must be a list")
}

func TestParseYAML_Malformed(t *testing.T) {
	_, err := ParseYAML("gradual.yaml", []byte(":\n  - ]["))
	assert.Error(t, err)
}

func TestParseJSON(t *testing.T) {
	doc, err := ParseJSON("gradual.json", []byte(`{
		"warn_return_any": true,
		"overrides": [{"module": "trio.*", "warn_return_any": false}]
	}`))
	require.NoError(t, err)
	require.Len(t, doc.Global.Entries, 1)
	require.Len(t, doc.Overrides, 1)
	assert.Equal(t, Entry{Key: "warn_return_any", Value: false}, doc.Overrides[0].Entries[0])
}

func TestParseJSON_Invalid(t *testing.T) {
	_, err := ParseJSON("gradual.json", []byte("{ not json }"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid JSON")
}

func TestParseJSON_ModuleTypeErrors(t *testing.T) {
	_, err := ParseJSON("gradual.json", []byte(`{"overrides": [{"module": 42}]}`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "must be a string or list of strings")

	_, err = ParseJSON("gradual.json", []byte(`{"overrides": [{"module": ["a", 1]}]}`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "entries must be strings")
}
