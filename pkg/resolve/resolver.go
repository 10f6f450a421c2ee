package resolve

import (
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/gradualcheck/gradual/internal/matching"
	"github.com/gradualcheck/gradual/pkg/config"
	"github.com/gradualcheck/gradual/pkg/diag"
	"github.com/gradualcheck/gradual/pkg/logging"
	"github.com/gradualcheck/gradual/pkg/option"
)

// Resolver validates and merges configuration sources.
type Resolver struct {
	registry *option.Registry
	strict   bool
	logger   *slog.Logger
}

// Option configures a Resolver.
type Option func(*Resolver)

// WithRegistry replaces the built-in option registry, e.g. to include
// plugin-contributed options.
func WithRegistry(reg *option.Registry) Option {
	return func(r *Resolver) {
		if reg != nil {
			r.registry = reg
		}
	}
}

// WithStrictMode makes unrecognized options fatal instead of warnings.
func WithStrictMode(strict bool) Option {
	return func(r *Resolver) {
		r.strict = strict
	}
}

// WithLogger sets the logger used for resolution tracing. Defaults to a
// no-op logger.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Resolver) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// New creates a Resolver with the built-in registry.
func New(opts ...Option) *Resolver {
	r := &Resolver{
		registry: option.Builtin(),
		logger:   logging.Nop(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(r)
		}
	}
	return r
}

// Registry returns the registry the resolver validates against.
func (r *Resolver) Registry() *option.Registry {
	return r.registry
}

// Resolve loads the sources in order and produces an immutable
// ResolvedConfig plus the ordered diagnostics recorded along the way.
//
// Later sources override earlier ones for the same scope. Structural errors
// (unparsable source, invalid module pattern, global-only option in a module
// section) abort and return a nil config together with the diagnostics
// collected so far. Coercion failures and redundant overrides do not abort:
// they are reported and the offending option keeps its default.
func (r *Resolver) Resolve(sources ...config.Source) (*ResolvedConfig, *diag.Report, error) {
	runID := uuid.NewString()
	report := &diag.Report{}
	logger := r.logger.With("run_id", runID)
	logger.Debug("resolving configuration", "sources", len(sources), "options", r.registry.Len())

	docs := make([]*config.Document, 0, len(sources))
	for _, src := range sources {
		doc, err := src.Load()
		if err != nil {
			return nil, report, &ParseError{Source: src.Name(), Err: err}
		}
		for _, name := range doc.Ignored {
			report.Infof("", name, "skipping section [%s]: not a %s section", name, config.GlobalSection)
		}
		logger.Debug("loaded source", "source", doc.Source,
			"global_entries", len(doc.Global.Entries), "override_sections", len(doc.Overrides))
		docs = append(docs, doc)
	}

	var unknown []string

	// The strict shorthand is expanded before any explicit option so that
	// explicit values always win regardless of their position in the file.
	global := map[string]any{}
	if r.strictShorthandEnabled(docs) {
		for _, name := range option.StrictImplied() {
			global[name] = true
		}
	}

	for _, doc := range docs {
		if err := r.applySection(doc.Global, true, global, nil, report, &unknown); err != nil {
			return nil, report, err
		}
	}

	var overrides []moduleOverride
	for _, doc := range docs {
		for _, sec := range doc.Overrides {
			patterns := make([]*matching.Pattern, 0, len(sec.Patterns))
			for _, raw := range sec.Patterns {
				pattern, err := matching.Compile(raw)
				if err != nil {
					return nil, report, &ParseError{Source: doc.Source, Err: err}
				}
				patterns = append(patterns, pattern)
			}

			values := map[string]any{}
			if err := r.applySection(sec, false, values, global, report, &unknown); err != nil {
				return nil, report, err
			}
			overrides = append(overrides, moduleOverride{
				section:  sec.Name,
				patterns: patterns,
				raw:      append([]string(nil), sec.Patterns...),
				values:   values,
				order:    len(overrides),
			})
		}
	}

	if r.strict && len(unknown) > 0 {
		return nil, report, &StrictModeError{Options: dedupe(unknown)}
	}

	cfg := newResolvedConfig(runID, r.registry, global, overrides)
	logger.Debug("configuration resolved",
		"set_options", len(global), "overrides", len(overrides), "diagnostics", report.Len())
	return cfg, report, nil
}

// strictShorthandEnabled peeks at the global sections for the final value of
// the strict flag. Coercion problems are ignored here; the main pass reports
// them.
func (r *Resolver) strictShorthandEnabled(docs []*config.Document) bool {
	enabled := false
	spec, ok := r.registry.Lookup("strict")
	if !ok {
		return false
	}
	for _, doc := range docs {
		for _, entry := range doc.Global.Entries {
			if entry.Key != "strict" {
				continue
			}
			if v, err := spec.Coerce(entry.Value); err == nil {
				enabled = v.(bool)
			}
		}
	}
	return enabled
}

// applySection validates one section's entries into target. When the section
// is module-scoped, effectiveGlobal carries the explicitly-set global values
// for redundancy detection, and global-only options are rejected.
func (r *Resolver) applySection(sec config.Section, isGlobal bool, target, effectiveGlobal map[string]any, report *diag.Report, unknown *[]string) error {
	sectionName := sec.Name
	if sectionName == "" {
		sectionName = config.GlobalSection
	}

	seen := map[string]bool{}
	for _, entry := range sec.Entries {
		spec, ok := r.registry.Lookup(entry.Key)
		if !ok {
			*unknown = append(*unknown, entry.Key)
			severity := diag.SeverityWarning
			if r.strict {
				severity = diag.SeverityError
			}
			report.Add(diag.Diagnostic{
				Severity: severity,
				Option:   entry.Key,
				Section:  sectionName,
				Message:  "unrecognized option",
			})
			continue
		}

		if !isGlobal && spec.Scope == option.ScopeGlobal {
			return &ScopeViolationError{Option: entry.Key, Section: sectionName}
		}

		value, err := spec.Coerce(entry.Value)
		if err != nil {
			cerr := &TypeCoercionError{
				Option:  entry.Key,
				Section: sectionName,
				Raw:     entry.Value,
				Want:    spec.Type,
				Err:     err,
			}
			report.Add(diag.Diagnostic{
				Severity: diag.SeverityError,
				Option:   entry.Key,
				Section:  sectionName,
				Message:  fmt.Sprintf("%v (using default)", err),
				Err:      cerr,
			})
			continue
		}

		if seen[entry.Key] {
			report.Warnf(entry.Key, sectionName, "duplicate key: earlier value is ignored")
		}
		seen[entry.Key] = true

		if !isGlobal {
			effective, set := effectiveGlobal[entry.Key]
			if !set {
				effective = spec.DefaultValue()
			}
			if valueEqual(effective, value) {
				report.Warnf(entry.Key, sectionName, "override restates the global value and has no effect")
			}
		}

		target[entry.Key] = value
	}
	return nil
}

func dedupe(names []string) []string {
	seen := map[string]bool{}
	out := make([]string, 0, len(names))
	for _, name := range names {
		if !seen[name] {
			seen[name] = true
			out = append(out, name)
		}
	}
	return out
}
