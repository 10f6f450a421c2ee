package config

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// ParseYAML parses a YAML-format configuration: top-level keys are global
// options, and an `overrides` list carries per-module override mappings with
// a `module` key.
func ParseYAML(source string, data []byte) (*Document, error) {
	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("invalid YAML: %w", err)
	}
	return mapDocument(source, raw)
}

// ParseJSON parses a JSON-format configuration with the same shape as the
// YAML form.
func ParseJSON(source string, data []byte) (*Document, error) {
	if !json.Valid(data) {
		return nil, fmt.Errorf("invalid JSON syntax")
	}
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("invalid JSON: %w", err)
	}
	return mapDocument(source, raw)
}

// overridesKey is the reserved key carrying per-module override mappings in
// TOML, YAML, and JSON documents.
const overridesKey = "overrides"

// moduleKey names the pattern(s) an override mapping applies to.
const moduleKey = "module"

// mapDocument converts an unordered mapping into a Document. Keys are
// emitted in sorted order so identical inputs produce identical documents.
func mapDocument(source string, raw map[string]any) (*Document, error) {
	doc := &Document{Source: source, Global: Section{Name: GlobalSection}}
	for _, key := range sortedKeys(raw) {
		if key == overridesKey {
			continue
		}
		doc.Global.Entries = append(doc.Global.Entries, Entry{Key: key, Value: raw[key]})
	}

	rawOverrides, ok := raw[overridesKey]
	if !ok {
		return doc, nil
	}
	list, ok := rawOverrides.([]any)
	if !ok {
		return nil, fmt.Errorf("%q must be a list of mappings, got %T", overridesKey, rawOverrides)
	}

	for i, item := range list {
		mapping, ok := item.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("%s[%d] must be a mapping, got %T", overridesKey, i, item)
		}
		patterns, err := overridePatterns(mapping[moduleKey])
		if err != nil {
			return nil, fmt.Errorf("%s[%d]: %w", overridesKey, i, err)
		}

		section := Section{
			Name:     fmt.Sprintf("%s[%d] (%s)", overridesKey, i, strings.Join(patterns, ",")),
			Patterns: patterns,
		}
		for _, key := range sortedKeys(mapping) {
			if key == moduleKey {
				continue
			}
			section.Entries = append(section.Entries, Entry{Key: key, Value: mapping[key]})
		}
		doc.Overrides = append(doc.Overrides, section)
	}
	return doc, nil
}

func overridePatterns(value any) ([]string, error) {
	switch v := value.(type) {
	case nil:
		return nil, fmt.Errorf("missing %q key", moduleKey)
	case string:
		patterns := splitPatterns(v)
		if len(patterns) == 0 {
			return nil, fmt.Errorf("%q names no module pattern", moduleKey)
		}
		return patterns, nil
	case []any:
		var patterns []string
		for _, item := range v {
			s, ok := item.(string)
			if !ok {
				return nil, fmt.Errorf("%q entries must be strings, got %T", moduleKey, item)
			}
			if trimmed := strings.TrimSpace(s); trimmed != "" {
				patterns = append(patterns, trimmed)
			}
		}
		if len(patterns) == 0 {
			return nil, fmt.Errorf("%q names no module pattern", moduleKey)
		}
		return patterns, nil
	default:
		return nil, fmt.Errorf("%q must be a string or list of strings, got %T", moduleKey, value)
	}
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
