package config

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/gradualcheck/gradual/pkg/option"
)

// GenerateSchema builds a JSON Schema document describing the structured
// (YAML/JSON) configuration form for the given registry. Unknown keys are
// allowed by the schema; flagging them is the resolver's job, where they can
// be warnings instead of hard failures.
func GenerateSchema(reg *option.Registry) map[string]any {
	properties := map[string]any{}
	overrideProperties := map[string]any{
		moduleKey: map[string]any{
			"description": "Module pattern(s) this override applies to.",
			"anyOf": []any{
				map[string]any{"type": "string"},
				map[string]any{"type": "array", "items": map[string]any{"type": "string"}},
			},
		},
	}

	for _, name := range reg.Names() {
		spec, _ := reg.Lookup(name)
		prop := schemaProperty(spec)
		properties[name] = prop
		if spec.Scope == option.ScopePerModule {
			overrideProperties[name] = prop
		}
	}

	properties[overridesKey] = map[string]any{
		"type": "array",
		"items": map[string]any{
			"type":                 "object",
			"required":             []any{moduleKey},
			"properties":           overrideProperties,
			"additionalProperties": true,
		},
	}

	return map[string]any{
		"$schema":              "https://json-schema.org/draft/2020-12/schema",
		"title":                "gradual configuration",
		"type":                 "object",
		"properties":           properties,
		"additionalProperties": true,
	}
}

func schemaProperty(spec *option.Spec) map[string]any {
	switch spec.Type {
	case option.TypeBool:
		return map[string]any{"type": "boolean"}
	case option.TypeString:
		return map[string]any{"type": "string"}
	case option.TypeEnum:
		values := make([]any, len(spec.Enum))
		for i, v := range spec.Enum {
			values[i] = v
		}
		return map[string]any{"type": "string", "enum": values}
	case option.TypeList:
		return map[string]any{
			"anyOf": []any{
				map[string]any{"type": "string"},
				map[string]any{"type": "array", "items": map[string]any{"type": "string"}},
			},
		}
	default:
		return map[string]any{}
	}
}

// SchemaJSON renders the generated schema as formatted JSON.
func SchemaJSON(reg *option.Registry) ([]byte, error) {
	data, err := json.MarshalIndent(GenerateSchema(reg), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal schema: %w", err)
	}
	return append(data, '\n'), nil
}

// ValidateStructured checks a decoded YAML/JSON configuration value against
// the registry's generated schema. The value is round-tripped through JSON
// so that YAML-decoded scalars carry the types the schema library expects.
func ValidateStructured(reg *option.Registry, value any) error {
	schemaData, err := json.Marshal(GenerateSchema(reg))
	if err != nil {
		return fmt.Errorf("failed to marshal schema: %w", err)
	}

	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("gradual-config.schema.json", bytes.NewReader(schemaData)); err != nil {
		return fmt.Errorf("failed to register schema: %w", err)
	}
	schema, err := compiler.Compile("gradual-config.schema.json")
	if err != nil {
		return fmt.Errorf("failed to compile schema: %w", err)
	}

	normalized, err := normalizeJSON(value)
	if err != nil {
		return err
	}
	if err := schema.Validate(normalized); err != nil {
		return fmt.Errorf("schema validation failed: %w", err)
	}
	return nil
}

func normalizeJSON(value any) (any, error) {
	data, err := json.Marshal(value)
	if err != nil {
		return nil, fmt.Errorf("value is not JSON-serializable: %w", err)
	}
	var out any
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, fmt.Errorf("failed to normalize value: %w", err)
	}
	return out, nil
}
