// Package config reads checker configuration sources into a neutral document
// model.
//
// A Document is an ordered set of raw entries split into the global section
// and zero or more module-pattern override sections. Parsing is deliberately
// dumb: it preserves what the file said and attaches no meaning to keys or
// values. Validation, type coercion, and merging happen in pkg/resolve.
//
// Four on-disk formats are supported, auto-detected by file extension:
//
//   - INI (gradual.ini, setup.cfg): [gradual] is the global section and
//     [gradual-<pattern>] sections carry per-module overrides. Patterns may
//     be comma-separated. Sections belonging to other tools are ignored.
//   - TOML (pyproject.toml): [tool.gradual] is the global table and
//     [[tool.gradual.overrides]] entries with a `module` key carry
//     per-module overrides.
//   - YAML and JSON: top-level keys are global options and an `overrides`
//     list carries per-module overrides.
//
// Because TOML, YAML, and JSON mappings are unordered, their entries are
// emitted in sorted key order so that repeated loads of the same file produce
// identical documents.
package config
