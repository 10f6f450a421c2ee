package resolve

import (
	"encoding/json"
	"slices"
	"sort"
	"strings"
	"sync"

	"github.com/gradualcheck/gradual/internal/matching"
	"github.com/gradualcheck/gradual/pkg/config"
	"github.com/gradualcheck/gradual/pkg/option"
)

// moduleOverride is one module-pattern section after validation.
type moduleOverride struct {
	section  string
	patterns []*matching.Pattern
	raw      []string
	values   map[string]any
	order    int
}

// ResolvedConfig is the final, typed configuration. It is immutable once
// produced; the per-module cache is internal and guarded, so a single
// ResolvedConfig may be shared freely across analysis workers.
type ResolvedConfig struct {
	runID     string
	registry  *option.Registry
	explicit  map[string]any
	overrides []moduleOverride

	global Settings

	mu    sync.RWMutex
	cache map[string]Settings
}

func newResolvedConfig(runID string, registry *option.Registry, explicit map[string]any, overrides []moduleOverride) *ResolvedConfig {
	global := registry.Defaults()
	for name, value := range explicit {
		global[name] = value
	}
	return &ResolvedConfig{
		runID:     runID,
		registry:  registry,
		explicit:  explicit,
		overrides: overrides,
		global:    Settings{values: global},
		cache:     map[string]Settings{},
	}
}

// RunID identifies the resolution that produced this config, for log
// correlation.
func (c *ResolvedConfig) RunID() string {
	return c.runID
}

// Registry returns the registry this config was validated against.
func (c *ResolvedConfig) Registry() *option.Registry {
	return c.registry
}

// Global returns the effective global settings: registry defaults overlaid
// with the explicitly configured values.
func (c *ResolvedConfig) Global() Settings {
	return c.global
}

// ForModule returns the effective settings for a fully qualified module
// name. Matching overrides are applied over the global settings in
// ascending specificity, so the most specific pattern wins; declaration
// order breaks ties. The merge happens on first query and is cached.
func (c *ResolvedConfig) ForModule(module string) Settings {
	c.mu.RLock()
	cached, ok := c.cache[module]
	c.mu.RUnlock()
	if ok {
		return cached
	}

	settings := c.computeModule(module)

	c.mu.Lock()
	c.cache[module] = settings
	c.mu.Unlock()
	return settings
}

func (c *ResolvedConfig) computeModule(module string) Settings {
	type match struct {
		specificity int
		order       int
		values      map[string]any
	}

	var matches []match
	for _, ov := range c.overrides {
		best := -1
		for _, pattern := range ov.patterns {
			if pattern.Matches(module) && pattern.Specificity() > best {
				best = pattern.Specificity()
			}
		}
		if best >= 0 {
			matches = append(matches, match{specificity: best, order: ov.order, values: ov.values})
		}
	}
	if len(matches) == 0 {
		return c.global
	}

	sort.Slice(matches, func(i, j int) bool {
		if matches[i].specificity != matches[j].specificity {
			return matches[i].specificity < matches[j].specificity
		}
		return matches[i].order < matches[j].order
	})

	merged := make(map[string]any, len(c.global.values))
	for name, value := range c.global.values {
		merged[name] = value
	}
	for _, m := range matches {
		for name, value := range m.values {
			merged[name] = value
		}
	}
	return Settings{values: merged}
}

// UnusedOverrides reports the override patterns that matched none of the
// given module names, in declaration order. Callers that honor
// warn_unused_configs surface these to the user so stale sections can be
// cleaned up.
func (c *ResolvedConfig) UnusedOverrides(modules []string) []string {
	var unused []string
	for _, ov := range c.overrides {
		for _, pattern := range ov.patterns {
			used := false
			for _, module := range modules {
				if pattern.Matches(module) {
					used = true
					break
				}
			}
			if !used {
				unused = append(unused, pattern.String())
			}
		}
	}
	return unused
}

// Document re-serializes the configuration: the explicitly set global values
// plus every override section, in a form that resolves back to an identical
// ResolvedConfig. Entries are emitted in sorted key order.
func (c *ResolvedConfig) Document() *config.Document {
	doc := &config.Document{
		Source: "resolved",
		Global: config.Section{Name: config.GlobalSection, Entries: sortedEntries(c.explicit)},
	}
	for _, ov := range c.overrides {
		doc.Overrides = append(doc.Overrides, config.Section{
			Name:     config.SectionPrefix + strings.Join(ov.raw, ","),
			Patterns: append([]string(nil), ov.raw...),
			Entries:  sortedEntries(ov.values),
		})
	}
	return doc
}

func sortedEntries(values map[string]any) []config.Entry {
	names := make([]string, 0, len(values))
	for name := range values {
		names = append(names, name)
	}
	sort.Strings(names)
	entries := make([]config.Entry, 0, len(names))
	for _, name := range names {
		entries = append(entries, config.Entry{Key: name, Value: values[name]})
	}
	return entries
}

// Settings is an immutable view of the effective option values for one
// scope. Every registered option has a value of its declared type.
type Settings struct {
	values map[string]any
}

// Value returns the raw typed value for an option name.
func (s Settings) Value(name string) (any, bool) {
	v, ok := s.values[name]
	return v, ok
}

// Bool returns a boolean option's value, or false for unknown names.
func (s Settings) Bool(name string) bool {
	v, _ := s.values[name].(bool)
	return v
}

// String returns a string or enum option's value, or "" for unknown names.
func (s Settings) String(name string) string {
	v, _ := s.values[name].(string)
	return v
}

// StringList returns a copy of a list option's value.
func (s Settings) StringList(name string) []string {
	v, _ := s.values[name].([]string)
	return append([]string(nil), v...)
}

// Names returns all option names in sorted order.
func (s Settings) Names() []string {
	names := make([]string, 0, len(s.values))
	for name := range s.values {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Equal reports whether two settings carry identical values.
func (s Settings) Equal(other Settings) bool {
	if len(s.values) != len(other.values) {
		return false
	}
	for name, value := range s.values {
		otherValue, ok := other.values[name]
		if !ok || !valueEqual(value, otherValue) {
			return false
		}
	}
	return true
}

// MarshalJSON renders the settings with deterministic key order.
func (s Settings) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.values)
}

func valueEqual(a, b any) bool {
	if av, ok := a.([]string); ok {
		bv, ok := b.([]string)
		return ok && slices.Equal(av, bv)
	}
	return a == b
}
