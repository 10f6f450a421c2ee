// Package option defines the registry of configuration options understood by
// the gradual type checker.
//
// Every option has a declared value type (bool, string, enum, or list), a
// default, and a scope: global-only options may appear only in the global
// configuration section, while per-module options may additionally be
// overridden in module-pattern sections.
//
// The built-in registry covers the standard checker flags:
//
//	reg := option.Builtin()
//	spec, ok := reg.Lookup("ignore_missing_imports")
//
// Registries are extensible so that plugins can contribute their own options:
//
//	reg.Register(&option.Spec{Name: "plugin_flag", Type: option.TypeBool, Default: false})
//
// Coercion from raw configuration values to the declared type lives on Spec.
// Boolean coercion accepts the usual INI truthy tokens (true/false, yes/no,
// on/off, 1/0) case-insensitively.
package option
