// Package matching implements module-name pattern matching for per-module
// configuration sections.
//
// A pattern is a dotted module path whose components may be the wildcard `*`.
// A trailing `.*` matches the named package itself and every submodule, which
// is what configuration overrides almost always want. Matching is backed by
// doublestar globs over the slash-mapped module path.
//
// Each compiled pattern carries a specificity score so that a resolver can
// apply overlapping overrides deterministically: exact patterns beat wildcard
// patterns, and wildcard patterns with a longer literal prefix beat vaguer
// ones. Ties fall back to declaration order.
package matching
