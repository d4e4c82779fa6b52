package discovery

import (
	"path/filepath"
	"strings"
)

// Filter filters test cases by name pattern
type Filter struct{}

// NewFilter creates a new Filter
func NewFilter() *Filter {
	return &Filter{}
}

// FilterByName filters case paths by name pattern using wildcard matching.
// Supports patterns like "fib*" or "*loops*"; a pattern without wildcards
// is treated as a substring match on the base name.
func (f *Filter) FilterByName(cases []string, pattern string) []string {
	if pattern == "" {
		return cases
	}

	var filtered []string
	for _, c := range cases {
		name := filepath.Base(c)

		if matched, err := filepath.Match(pattern, name); err == nil && matched {
			filtered = append(filtered, c)
			continue
		}

		if !strings.ContainsAny(pattern, "*?") && strings.Contains(name, pattern) {
			filtered = append(filtered, c)
		}
	}

	return filtered
}
