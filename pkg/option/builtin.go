package option

// builtinSpecs is the standard option set understood by the checker.
var builtinSpecs = []*Spec{
	// Input discovery. These describe what gets checked and cannot vary per
	// module.
	{Name: "files", Type: TypeList, Scope: ScopeGlobal},
	{Name: "exclude", Type: TypeList, Scope: ScopeGlobal},
	{Name: "plugins", Type: TypeList, Scope: ScopeGlobal},
	{Name: "custom_typeshed_dir", Type: TypeString, Scope: ScopeGlobal},
	{Name: "python_version", Type: TypeString, Scope: ScopeGlobal},
	{Name: "platform", Type: TypeString, Scope: ScopeGlobal},
	{Name: "namespace_packages", Type: TypeBool, Default: true, Scope: ScopeGlobal},
	{Name: "explicit_package_bases", Type: TypeBool, Scope: ScopeGlobal},

	// Import handling.
	{Name: "ignore_missing_imports", Type: TypeBool, Scope: ScopePerModule, Suppression: true},
	{Name: "follow_imports", Type: TypeEnum, Default: "normal", Scope: ScopePerModule,
		Enum: []string{"normal", "silent", "skip", "error"}},

	// Strictness toggles, overridable per module.
	{Name: "disallow_untyped_defs", Type: TypeBool, Scope: ScopePerModule},
	{Name: "disallow_incomplete_defs", Type: TypeBool, Scope: ScopePerModule},
	{Name: "check_untyped_defs", Type: TypeBool, Scope: ScopePerModule},
	{Name: "disallow_untyped_calls", Type: TypeBool, Scope: ScopePerModule},
	{Name: "disallow_untyped_decorators", Type: TypeBool, Scope: ScopePerModule},
	{Name: "disallow_any_decorated", Type: TypeBool, Scope: ScopePerModule},
	{Name: "disallow_any_generics", Type: TypeBool, Scope: ScopePerModule},
	{Name: "disallow_any_explicit", Type: TypeBool, Scope: ScopePerModule},
	{Name: "disallow_subclassing_any", Type: TypeBool, Scope: ScopePerModule},
	{Name: "no_implicit_optional", Type: TypeBool, Scope: ScopePerModule},
	{Name: "strict_optional", Type: TypeBool, Default: true, Scope: ScopePerModule},
	{Name: "strict_equality", Type: TypeBool, Scope: ScopePerModule},
	{Name: "implicit_reexport", Type: TypeBool, Default: true, Scope: ScopePerModule},
	{Name: "allow_redefinition", Type: TypeBool, Scope: ScopePerModule},
	{Name: "allow_untyped_globals", Type: TypeBool, Scope: ScopePerModule},
	{Name: "local_partial_types", Type: TypeBool, Scope: ScopePerModule},

	// Warning toggles.
	{Name: "warn_return_any", Type: TypeBool, Scope: ScopePerModule},
	{Name: "warn_no_return", Type: TypeBool, Default: true, Scope: ScopePerModule},
	{Name: "warn_unreachable", Type: TypeBool, Scope: ScopePerModule},
	{Name: "warn_unused_ignores", Type: TypeBool, Scope: ScopePerModule},
	{Name: "warn_redundant_casts", Type: TypeBool, Scope: ScopeGlobal},
	{Name: "warn_unused_configs", Type: TypeBool, Scope: ScopeGlobal},

	// Error suppression.
	{Name: "ignore_errors", Type: TypeBool, Scope: ScopePerModule, Suppression: true},

	// Output.
	{Name: "show_error_codes", Type: TypeBool, Default: true, Scope: ScopeGlobal},
	{Name: "pretty", Type: TypeBool, Scope: ScopeGlobal},
	{Name: "color_output", Type: TypeBool, Default: true, Scope: ScopeGlobal},
	{Name: "error_summary", Type: TypeBool, Default: true, Scope: ScopeGlobal},

	// Shorthand that enables the full strictness set. Expanded by the
	// resolver, not stored.
	{Name: "strict", Type: TypeBool, Scope: ScopeGlobal},
}

// strictImplied lists the options switched on by `strict = True`.
var strictImplied = []string{
	"disallow_untyped_defs",
	"disallow_incomplete_defs",
	"check_untyped_defs",
	"disallow_untyped_calls",
	"disallow_untyped_decorators",
	"disallow_any_generics",
	"disallow_subclassing_any",
	"no_implicit_optional",
	"strict_equality",
	"warn_return_any",
	"warn_unused_ignores",
	"warn_redundant_casts",
	"warn_unused_configs",
}

// StrictImplied returns the option names enabled by the strict shorthand.
func StrictImplied() []string {
	out := make([]string, len(strictImplied))
	copy(out, strictImplied)
	return out
}

// Builtin returns a fresh registry populated with the standard option set.
func Builtin() *Registry {
	reg := NewRegistry()
	for _, spec := range builtinSpecs {
		if err := reg.Register(spec); err != nil {
			// The built-in table is static; a failure here is a programming
			// error.
			panic(err)
		}
	}
	return reg
}
