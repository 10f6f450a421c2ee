// Package diag defines the diagnostics emitted during configuration
// resolution.
//
// Diagnostics are ordered (severity, option, section, message) records. The
// resolver appends them to a Report as it works; callers read the report once
// resolution completes and decide whether warnings are acceptable.
//
// Reports can be narrowed with expression filters:
//
//	f, _ := diag.CompileFilter(`severity == "error" || option startsWith "warn_"`)
//	kept, _ := f.Apply(report.All())
package diag
