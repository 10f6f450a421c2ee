package option

import (
	"fmt"
	"sort"
)

// Registry holds the set of recognized options.
type Registry struct {
	specs map[string]*Spec
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{specs: make(map[string]*Spec)}
}

// Register adds a spec to the registry. Duplicate names and malformed specs
// are rejected.
func (r *Registry) Register(spec *Spec) error {
	if spec == nil {
		return fmt.Errorf("spec cannot be nil")
	}
	if spec.Name == "" {
		return fmt.Errorf("spec name cannot be empty")
	}
	if _, exists := r.specs[spec.Name]; exists {
		return fmt.Errorf("duplicate option %q", spec.Name)
	}
	if spec.Type == TypeEnum && len(spec.Enum) == 0 {
		return fmt.Errorf("enum option %q declares no values", spec.Name)
	}
	if spec.Default != nil {
		if _, err := spec.Coerce(spec.Default); err != nil {
			return fmt.Errorf("default for %q does not match declared type: %w", spec.Name, err)
		}
	}
	r.specs[spec.Name] = spec
	return nil
}

// Lookup returns the spec for an option name.
func (r *Registry) Lookup(name string) (*Spec, bool) {
	spec, ok := r.specs[name]
	return spec, ok
}

// Names returns all registered option names in sorted order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.specs))
	for name := range r.specs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Len returns the number of registered options.
func (r *Registry) Len() int {
	return len(r.specs)
}

// Defaults returns a fresh map of every option's default value.
func (r *Registry) Defaults() map[string]any {
	defaults := make(map[string]any, len(r.specs))
	for name, spec := range r.specs {
		defaults[name] = spec.DefaultValue()
	}
	return defaults
}

// DefaultValue returns the spec's default, substituting the type's zero
// value when no explicit default is declared.
func (s *Spec) DefaultValue() any {
	if s.Default != nil {
		return s.Default
	}
	switch s.Type {
	case TypeBool:
		return false
	case TypeString, TypeEnum:
		return ""
	case TypeList:
		return []string{}
	default:
		return nil
	}
}
