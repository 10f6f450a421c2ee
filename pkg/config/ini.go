package config

import (
	"fmt"
	"strings"

	"gopkg.in/ini.v1"
)

// ParseINI parses an INI-format configuration (gradual.ini or setup.cfg).
//
// [gradual] holds global options. [gradual-<pattern>] sections hold
// per-module overrides; the pattern part may list several patterns separated
// by commas. Sections belonging to other tools are recorded as ignored.
func ParseINI(source string, data []byte) (*Document, error) {
	file, err := ini.LoadSources(ini.LoadOptions{
		// Duplicate keys are preserved so the resolver can flag them.
		AllowShadows: true,
		// configparser-style files use indented continuation lines for lists.
		AllowPythonMultilineValues: true,
	}, data)
	if err != nil {
		return nil, fmt.Errorf("invalid INI: %w", err)
	}

	doc := &Document{Source: source}
	for _, sec := range file.Sections() {
		name := sec.Name()
		if name == ini.DefaultSection {
			// Keys outside any section. setup.cfg files should not have
			// them; skip silently rather than guess a scope.
			continue
		}

		switch {
		case name == GlobalSection:
			doc.Global = Section{Name: name, Entries: sectionEntries(sec)}
		case strings.HasPrefix(name, SectionPrefix):
			patterns := splitPatterns(strings.TrimPrefix(name, SectionPrefix))
			if len(patterns) == 0 {
				return nil, fmt.Errorf("section [%s] names no module pattern", name)
			}
			doc.Overrides = append(doc.Overrides, Section{
				Name:     name,
				Patterns: patterns,
				Entries:  sectionEntries(sec),
			})
		default:
			doc.Ignored = append(doc.Ignored, name)
		}
	}
	return doc, nil
}

func sectionEntries(sec *ini.Section) []Entry {
	var entries []Entry
	for _, key := range sec.Keys() {
		// ValueWithShadows yields every occurrence of a duplicated key in
		// source order.
		for _, value := range key.ValueWithShadows() {
			entries = append(entries, Entry{Key: key.Name(), Value: value})
		}
	}
	return entries
}

func splitPatterns(list string) []string {
	var patterns []string
	for _, p := range strings.Split(list, ",") {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			patterns = append(patterns, trimmed)
		}
	}
	return patterns
}
