package discovery

import (
	"path"
	"strings"

	"gtp/internal/domain"
)

// Filter narrows descriptors by a name pattern
type Filter struct{}

// NewFilter creates a new Filter
func NewFilter() *Filter {
	return &Filter{}
}

// Apply filters descriptors by name pattern using wildcard matching.
// Supports patterns like "test_add*" or "*division*". An empty pattern
// keeps everything. Order is preserved.
func (f *Filter) Apply(descs []domain.TestDescriptor, pattern string) []domain.TestDescriptor {
	if pattern == "" {
		return descs
	}

	var filtered []domain.TestDescriptor
	for _, d := range descs {
		if f.Matches(d.Name, pattern) {
			filtered = append(filtered, d)
		}
	}
	return filtered
}

// Matches reports whether a test name matches the pattern.
// Tries * and ? wildcard matching first, then a part-wise substring match
// for patterns like "*remainder*", then a plain contains check when the
// pattern has no wildcards at all.
func (f *Filter) Matches(name, pattern string) bool {
	if matched, err := path.Match(pattern, name); err == nil && matched {
		return true
	}

	if strings.Contains(pattern, "*") {
		// Remove wildcards and check that every remaining part appears in the name
		parts := strings.Split(pattern, "*")
		hasNonEmptyPart := false
		for _, part := range parts {
			if part == "" {
				continue
			}
			hasNonEmptyPart = true
			if !strings.Contains(name, part) {
				return false
			}
		}
		return hasNonEmptyPart
	}

	if !strings.Contains(pattern, "?") {
		return strings.Contains(name, pattern)
	}

	return false
}
