package config

import (
	"fmt"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

// ParseTOML parses a TOML-format configuration.
//
// Inside pyproject.toml the checker configuration lives under [tool.gradual],
// with [[tool.gradual.overrides]] entries for per-module overrides. A
// standalone gradual.toml may put the same keys at the top level. A
// pyproject.toml without a [tool.gradual] table yields an empty document.
func ParseTOML(source string, data []byte) (*Document, error) {
	var raw map[string]any
	if err := toml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("invalid TOML: %w", err)
	}

	table := raw
	if tool, ok := raw["tool"].(map[string]any); ok {
		if nested, ok := tool["gradual"].(map[string]any); ok {
			table = nested
		} else if filepath.Base(source) == "pyproject.toml" {
			return &Document{Source: source}, nil
		}
	} else if filepath.Base(source) == "pyproject.toml" {
		return &Document{Source: source}, nil
	}

	return mapDocument(source, table)
}
