package diag

import (
	"fmt"
	"strings"
)

// Severity classifies a diagnostic.
type Severity string

// Severities, from most to least severe.
const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
	SeverityInfo    Severity = "info"
)

// Diagnostic is a single resolution finding.
type Diagnostic struct {
	// Severity is error, warning, or info.
	Severity Severity `json:"severity"`

	// Option is the option name the finding concerns, if any.
	Option string `json:"option,omitempty"`

	// Section identifies where the finding originated: the global section
	// name or a module-pattern section.
	Section string `json:"section,omitempty"`

	// Message is the human-readable description.
	Message string `json:"message"`

	// Err carries the underlying typed error for programmatic inspection
	// (e.g. errors.As with *resolve.TypeCoercionError). May be nil.
	Err error `json:"-"`
}

// String formats the diagnostic for terminal output.
func (d Diagnostic) String() string {
	var b strings.Builder
	b.WriteString(string(d.Severity))
	b.WriteString(":")
	if d.Section != "" {
		fmt.Fprintf(&b, " [%s]", d.Section)
	}
	if d.Option != "" {
		fmt.Fprintf(&b, " %s:", d.Option)
	}
	b.WriteString(" ")
	b.WriteString(d.Message)
	return b.String()
}

// Report is an ordered collection of diagnostics. The zero value is ready to
// use. A Report is not safe for concurrent mutation; resolution is
// single-threaded and the report is read-only afterwards.
type Report struct {
	diags []Diagnostic
}

// Add appends a diagnostic, preserving insertion order.
func (r *Report) Add(d Diagnostic) {
	r.diags = append(r.diags, d)
}

// Errorf appends an error-severity diagnostic.
func (r *Report) Errorf(option, section, format string, args ...any) {
	r.Add(Diagnostic{Severity: SeverityError, Option: option, Section: section, Message: fmt.Sprintf(format, args...)})
}

// Warnf appends a warning-severity diagnostic.
func (r *Report) Warnf(option, section, format string, args ...any) {
	r.Add(Diagnostic{Severity: SeverityWarning, Option: option, Section: section, Message: fmt.Sprintf(format, args...)})
}

// Infof appends an info-severity diagnostic.
func (r *Report) Infof(option, section, format string, args ...any) {
	r.Add(Diagnostic{Severity: SeverityInfo, Option: option, Section: section, Message: fmt.Sprintf(format, args...)})
}

// All returns the diagnostics in the order they were recorded.
func (r *Report) All() []Diagnostic {
	out := make([]Diagnostic, len(r.diags))
	copy(out, r.diags)
	return out
}

// Errors returns only the error-severity diagnostics.
func (r *Report) Errors() []Diagnostic {
	var out []Diagnostic
	for _, d := range r.diags {
		if d.Severity == SeverityError {
			out = append(out, d)
		}
	}
	return out
}

// HasErrors reports whether any error-severity diagnostic was recorded.
func (r *Report) HasErrors() bool {
	for _, d := range r.diags {
		if d.Severity == SeverityError {
			return true
		}
	}
	return false
}

// Len returns the number of recorded diagnostics.
func (r *Report) Len() int {
	return len(r.diags)
}
