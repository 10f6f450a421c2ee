package option

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCoerceBool(t *testing.T) {
	spec := &Spec{Name: "flag", Type: TypeBool}

	tests := []struct {
		name    string
		raw     any
		want    bool
		wantErr bool
	}{
		{name: "native true", raw: true, want: true},
		{name: "native false", raw: false, want: false},
		{name: "True", raw: "True", want: true},
		{name: "FALSE", raw: "FALSE", want: false},
		{name: "yes", raw: "yes", want: true},
		{name: "No", raw: "No", want: false},
		{name: "on", raw: "on", want: true},
		{name: "off", raw: "off", want: false},
		{name: "one", raw: "1", want: true},
		{name: "zero", raw: "0", want: false},
		{name: "padded", raw: "  true ", want: true},
		{name: "int one", raw: 1, want: true},
		{name: "int zero", raw: int64(0), want: false},
		{name: "garbage", raw: "maybe", wantErr: true},
		{name: "int out of range", raw: 2, wantErr: true},
		{name: "float", raw: 1.0, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := spec.Coerce(tt.raw)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCoerceString(t *testing.T) {
	spec := &Spec{Name: "python_version", Type: TypeString}

	got, err := spec.Coerce(" 3.11 ")
	require.NoError(t, err)
	assert.Equal(t, "3.11", got)

	// Unquoted TOML floats silently drop trailing zeros; reject them.
	_, err = spec.Coerce(3.1)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "quote the value")
}

func TestCoerceEnum(t *testing.T) {
	spec := &Spec{
		Name: "follow_imports",
		Type: TypeEnum,
		Enum: []string{"normal", "silent", "skip", "error"},
	}

	got, err := spec.Coerce("silent")
	require.NoError(t, err)
	assert.Equal(t, "silent", got)

	_, err = spec.Coerce("sometimes")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "must be one of")
}

func TestCoerceList(t *testing.T) {
	spec := &Spec{Name: "files", Type: TypeList}

	tests := []struct {
		name string
		raw  any
		want []string
	}{
		{name: "comma separated", raw: "trio, tests", want: []string{"trio", "tests"}},
		{name: "newline separated", raw: "trio,\n  tests\n", want: []string{"trio", "tests"}},
		{name: "native strings", raw: []string{"a", " b "}, want: []string{"a", "b"}},
		{name: "native any", raw: []any{"a", "b"}, want: []string{"a", "b"}},
		{name: "trailing comma", raw: "a,", want: []string{"a"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := spec.Coerce(tt.raw)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := spec.Coerce([]any{"a", 3})
	assert.Error(t, err)
}

func TestRegistryRegister(t *testing.T) {
	reg := NewRegistry()

	err := reg.Register(&Spec{Name: "custom_flag", Type: TypeBool, Default: false})
	require.NoError(t, err)

	spec, ok := reg.Lookup("custom_flag")
	require.True(t, ok)
	assert.Equal(t, TypeBool, spec.Type)

	// Duplicates are rejected.
	err = reg.Register(&Spec{Name: "custom_flag", Type: TypeBool})
	assert.Error(t, err)

	// Enum specs must declare values.
	err = reg.Register(&Spec{Name: "mode", Type: TypeEnum})
	assert.Error(t, err)

	// Defaults must match the declared type.
	err = reg.Register(&Spec{Name: "bad_default", Type: TypeBool, Default: "nope"})
	assert.Error(t, err)
}

func TestBuiltinRegistry(t *testing.T) {
	reg := Builtin()

	// Names from the checker's standard set.
	for _, name := range []string{
		"ignore_missing_imports",
		"warn_unused_ignores",
		"warn_return_any",
		"disallow_any_decorated",
		"follow_imports",
		"python_version",
		"files",
	} {
		_, ok := reg.Lookup(name)
		assert.True(t, ok, "missing builtin option %s", name)
	}

	// Input discovery options cannot vary per module.
	files, _ := reg.Lookup("files")
	assert.Equal(t, ScopeGlobal, files.Scope)

	// Suppression flags are marked for redundancy tracking.
	imi, _ := reg.Lookup("ignore_missing_imports")
	assert.True(t, imi.Suppression)
	assert.Equal(t, ScopePerModule, imi.Scope)

	// Every strict-implied option must exist and be boolean.
	for _, name := range StrictImplied() {
		spec, ok := reg.Lookup(name)
		require.True(t, ok, "strict implies unknown option %s", name)
		assert.Equal(t, TypeBool, spec.Type)
	}
}

func TestDefaults(t *testing.T) {
	reg := Builtin()
	defaults := reg.Defaults()

	assert.Equal(t, reg.Len(), len(defaults))
	assert.Equal(t, false, defaults["ignore_missing_imports"])
	assert.Equal(t, true, defaults["strict_optional"])
	assert.Equal(t, "normal", defaults["follow_imports"])
	assert.Equal(t, []string{}, defaults["files"])
}
