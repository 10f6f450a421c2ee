package matching

import (
	"fmt"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// Specificity scores. Exact patterns always outrank wildcard patterns;
// among wildcard patterns, more literal leading components win.
const (
	// ScoreExactBase is the base score for patterns without wildcards.
	ScoreExactBase = 1 << 16
)

// Pattern is a compiled module-name pattern.
//
// Patterns are dotted module paths where a component may be `*`:
//
//   - "trio.lowlevel" matches exactly that module
//   - "trio.*" matches trio and every submodule
//   - "*.tests" matches any direct submodule named tests
type Pattern struct {
	raw   string
	glob  string
	score int
}

// Compile validates and compiles a module-name pattern.
func Compile(raw string) (*Pattern, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return nil, fmt.Errorf("empty module pattern")
	}

	components := strings.Split(trimmed, ".")
	exact := true
	literalPrefix := 0
	counting := true
	for _, comp := range components {
		if comp == "" {
			return nil, fmt.Errorf("invalid module pattern %q: empty component", raw)
		}
		if strings.Contains(comp, "*") {
			if comp != "*" {
				return nil, fmt.Errorf("invalid module pattern %q: wildcard must be a whole component", raw)
			}
			exact = false
			counting = false
			continue
		}
		if counting {
			literalPrefix++
		}
	}

	// Module names map onto slash-separated paths so that doublestar can
	// match them. A trailing * spans the module itself and all submodules.
	globComponents := make([]string, len(components))
	copy(globComponents, components)
	if !exact && globComponents[len(globComponents)-1] == "*" {
		globComponents[len(globComponents)-1] = "**"
	}
	glob := strings.Join(globComponents, "/")
	if !doublestar.ValidatePattern(glob) {
		return nil, fmt.Errorf("invalid module pattern %q", raw)
	}

	score := literalPrefix
	if exact {
		score = ScoreExactBase + len(components)
	}

	return &Pattern{raw: trimmed, glob: glob, score: score}, nil
}

// String returns the original pattern text.
func (p *Pattern) String() string {
	return p.raw
}

// Specificity returns the precedence score; higher scores win when multiple
// patterns match the same module.
func (p *Pattern) Specificity() int {
	return p.score
}

// Matches reports whether the pattern matches a fully qualified module name.
func (p *Pattern) Matches(module string) bool {
	if module == "" {
		return false
	}
	ok, err := doublestar.Match(p.glob, strings.ReplaceAll(module, ".", "/"))
	return err == nil && ok
}
