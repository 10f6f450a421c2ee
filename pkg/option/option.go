package option

import (
	"fmt"
	"strings"
)

// Type identifies the representation of an option value.
type Type string

// Value types.
const (
	TypeBool   Type = "bool"
	TypeString Type = "string"
	TypeEnum   Type = "enum"
	TypeList   Type = "list"
)

// Scope declares where an option may legally appear.
type Scope int

const (
	// ScopeGlobal options may appear only in the global section.
	ScopeGlobal Scope = iota

	// ScopePerModule options may appear globally and in module-pattern
	// sections.
	ScopePerModule
)

// String returns a human-readable scope name.
func (s Scope) String() string {
	switch s {
	case ScopeGlobal:
		return "global"
	case ScopePerModule:
		return "per-module"
	default:
		return "unknown"
	}
}

// Spec describes a single configuration option.
type Spec struct {
	// Name is the option key as it appears in configuration files.
	Name string

	// Type is the declared value type.
	Type Type

	// Default is the value in effect when the option is not set.
	// Must already have the declared type.
	Default any

	// Scope controls whether the option can be overridden per module.
	Scope Scope

	// Enum lists the legal values for TypeEnum options.
	Enum []string

	// Suppression marks options whose sole purpose is to silence another
	// diagnostic (e.g. ignore_missing_imports). Tracked so that stale
	// suppressions can be reported back to the user.
	Suppression bool
}

// Coerce converts a raw configuration value to the spec's declared type.
// Raw values are strings when read from INI sources and native scalars when
// read from TOML, YAML, or JSON sources.
func (s *Spec) Coerce(raw any) (any, error) {
	switch s.Type {
	case TypeBool:
		return coerceBool(raw)
	case TypeString:
		return coerceString(raw)
	case TypeEnum:
		v, err := coerceString(raw)
		if err != nil {
			return nil, err
		}
		for _, allowed := range s.Enum {
			if v == allowed {
				return v, nil
			}
		}
		return nil, fmt.Errorf("invalid value %q (must be one of: %s)", v, strings.Join(s.Enum, ", "))
	case TypeList:
		return coerceList(raw)
	default:
		return nil, fmt.Errorf("unsupported option type %q", s.Type)
	}
}

// truthy and falsy are the canonical boolean tokens, compared
// case-insensitively. They follow INI conventions.
var (
	truthy = map[string]bool{"true": true, "yes": true, "on": true, "1": true}
	falsy  = map[string]bool{"false": true, "no": true, "off": true, "0": true}
)

func coerceBool(raw any) (any, error) {
	switch v := raw.(type) {
	case bool:
		return v, nil
	case string:
		tok := strings.ToLower(strings.TrimSpace(v))
		if truthy[tok] {
			return true, nil
		}
		if falsy[tok] {
			return false, nil
		}
		return nil, fmt.Errorf("invalid boolean %q (accepted: true/false, yes/no, on/off, 1/0)", v)
	case int:
		if v == 1 {
			return true, nil
		}
		if v == 0 {
			return false, nil
		}
		return nil, fmt.Errorf("invalid boolean %d (accepted: 0 or 1)", v)
	case int64:
		return coerceBool(int(v))
	default:
		return nil, fmt.Errorf("invalid boolean value of type %T", raw)
	}
}

func coerceString(raw any) (string, error) {
	switch v := raw.(type) {
	case string:
		return strings.TrimSpace(v), nil
	case int, int64, float64, bool:
		// Unquoted scalars are ambiguous: TOML parses python_version = 3.10
		// as the float 3.1, silently losing the trailing zero.
		return "", fmt.Errorf("expected a string, got %T %v (quote the value)", raw, raw)
	default:
		return "", fmt.Errorf("expected a string, got %T", raw)
	}
}

// coerceList accepts a native list of strings or a single string split on
// commas and newlines, with surrounding whitespace trimmed and empty items
// dropped.
func coerceList(raw any) (any, error) {
	switch v := raw.(type) {
	case []string:
		out := make([]string, 0, len(v))
		for _, item := range v {
			if trimmed := strings.TrimSpace(item); trimmed != "" {
				out = append(out, trimmed)
			}
		}
		return out, nil
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			s, ok := item.(string)
			if !ok {
				return nil, fmt.Errorf("list items must be strings, got %T", item)
			}
			if trimmed := strings.TrimSpace(s); trimmed != "" {
				out = append(out, trimmed)
			}
		}
		return out, nil
	case string:
		split := strings.FieldsFunc(v, func(r rune) bool {
			return r == ',' || r == '\n'
		})
		out := make([]string, 0, len(split))
		for _, item := range split {
			if trimmed := strings.TrimSpace(item); trimmed != "" {
				out = append(out, trimmed)
			}
		}
		return out, nil
	default:
		return nil, fmt.Errorf("expected a list of strings, got %T", raw)
	}
}
