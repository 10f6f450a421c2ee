package config

// Section names recognized in INI sources. Sections that carry neither
// GlobalSection nor the SectionPrefix belong to other tools and are ignored.
const (
	GlobalSection = "gradual"
	SectionPrefix = "gradual-"
)

// Entry is a single key/value pair as read from a source. Value holds the
// raw string for INI sources and the native scalar for TOML, YAML, and JSON
// sources; type coercion is the resolver's job.
type Entry struct {
	Key   string
	Value any
}

// Section groups entries under one scope. A section with no patterns is the
// global section; otherwise the patterns name the modules the entries apply
// to.
type Section struct {
	// Name is the section identity as written in the source, used in
	// diagnostics (e.g. "gradual-trio.*").
	Name string

	// Patterns are the module-name patterns this section applies to.
	// Empty for the global section.
	Patterns []string

	Entries []Entry
}

// Document is the parsed form of one configuration source.
type Document struct {
	// Source names where the document came from, used in diagnostics.
	Source string

	// Global holds the global-section entries in source order.
	Global Section

	// Overrides holds the module-pattern sections in source order.
	Overrides []Section

	// Ignored lists foreign section names that were skipped (INI files such
	// as setup.cfg routinely hold other tools' sections).
	Ignored []string
}

// Source yields a parsed Document.
type Source interface {
	// Name identifies the source for diagnostics.
	Name() string

	// Load parses the source.
	Load() (*Document, error)
}

// StaticSource wraps an already-built Document, most usefully the output of
// ResolvedConfig.Document when re-resolving a configuration.
type StaticSource struct {
	Doc *Document
}

// Name implements Source.
func (s StaticSource) Name() string {
	if s.Doc != nil && s.Doc.Source != "" {
		return s.Doc.Source
	}
	return "static"
}

// Load implements Source.
func (s StaticSource) Load() (*Document, error) {
	if s.Doc == nil {
		return &Document{Source: "static"}, nil
	}
	return s.Doc, nil
}
