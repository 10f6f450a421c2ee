package resolve

import (
	"fmt"
	"strings"

	"github.com/gradualcheck/gradual/pkg/option"
)

// ParseError reports a malformed configuration source. It is fatal: no
// ResolvedConfig is produced.
type ParseError struct {
	Source string
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("cannot parse %s: %v", e.Source, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// TypeCoercionError reports a value that does not match the declared option
// type. Coercion failures are collected as diagnostics rather than aborting
// resolution; the offending option falls back to its default.
type TypeCoercionError struct {
	Option  string
	Section string
	Raw     any
	Want    option.Type
	Err     error
}

func (e *TypeCoercionError) Error() string {
	return fmt.Sprintf("option %q in [%s]: cannot coerce %v to %s: %v", e.Option, e.Section, e.Raw, e.Want, e.Err)
}

func (e *TypeCoercionError) Unwrap() error {
	return e.Err
}

// ScopeViolationError reports a global-only option used in a module-pattern
// section. It is fatal.
type ScopeViolationError struct {
	Option  string
	Section string
}

func (e *ScopeViolationError) Error() string {
	return fmt.Sprintf("option %q is global-only and cannot be set in module section [%s]", e.Option, e.Section)
}

// StrictModeError aggregates the unrecognized options that failed resolution
// under strict mode.
type StrictModeError struct {
	Options []string
}

func (e *StrictModeError) Error() string {
	return fmt.Sprintf("unrecognized options in strict mode: %s", strings.Join(e.Options, ", "))
}
