// Package resolve turns raw configuration documents into a validated, typed,
// immutable ResolvedConfig.
//
// Resolution walks the ordered sources, validates every entry against the
// option registry, coerces values to their declared types, checks scope
// legality, and records diagnostics along the way:
//
//	resolver := resolve.New(resolve.WithLogger(logger))
//	cfg, report, err := resolver.Resolve(config.FileSource{Path: "gradual.ini"})
//
// Structural problems (unparsable sources, global-only options in module
// sections) abort with an error. Everything else — unknown options, values
// that fail coercion, overrides with no effect — is collected in the report
// while resolution continues, so callers always get a best-effort config and
// can decide for themselves whether warnings are acceptable.
//
// Merging global values with module overrides is lazy: ForModule computes
// the effective settings for one module the first time it is asked and
// caches the result. A ResolvedConfig is never mutated after construction
// and is safe to share across analysis workers.
package resolve
