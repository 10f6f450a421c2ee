package diag

import (
	"fmt"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

// Filter selects diagnostics with a boolean expression. The expression sees
// the fields of each diagnostic as plain strings:
//
//	severity == "error"
//	option startsWith "disallow_"
//	section != "" && severity != "info"
type Filter struct {
	source  string
	program *vm.Program
}

// filterEnv is the sample environment used for compile-time type checking.
func filterEnv(d Diagnostic) map[string]any {
	return map[string]any{
		"severity": string(d.Severity),
		"option":   d.Option,
		"section":  d.Section,
		"message":  d.Message,
	}
}

// CompileFilter compiles a filter expression.
func CompileFilter(expression string) (*Filter, error) {
	program, err := expr.Compile(expression, expr.Env(filterEnv(Diagnostic{})), expr.AsBool())
	if err != nil {
		return nil, fmt.Errorf("compile filter %q: %w", expression, err)
	}
	return &Filter{source: expression, program: program}, nil
}

// Match reports whether the diagnostic satisfies the filter.
func (f *Filter) Match(d Diagnostic) (bool, error) {
	result, err := expr.Run(f.program, filterEnv(d))
	if err != nil {
		return false, fmt.Errorf("eval filter %q: %w", f.source, err)
	}
	ok, _ := result.(bool)
	return ok, nil
}

// Apply returns the diagnostics that satisfy the filter, preserving order.
func (f *Filter) Apply(diags []Diagnostic) ([]Diagnostic, error) {
	out := make([]Diagnostic, 0, len(diags))
	for _, d := range diags {
		ok, err := f.Match(d)
		if err != nil {
			return nil, err
		}
		if ok {
			out = append(out, d)
		}
	}
	return out, nil
}
