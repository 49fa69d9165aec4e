// Copyright 2025 Erst Users
// SPDX-License-Identifier: Apache-2.0

package gasreport

import (
	"github.com/bmatcuk/doublestar/v4"
	"github.com/go-analyze/bulk"
)

// DefaultIgnorePattern is always excluded when no match patterns are given.
const DefaultIgnorePattern = "node_modules/**/*"

// PathMatcher reports whether a contract file path matches a glob pattern.
type PathMatcher interface {
	Matches(pattern, path string) bool
}

// DoublestarMatcher matches with doublestar semantics, so "**" spans
// directories. Malformed patterns never match.
type DoublestarMatcher struct{}

func (DoublestarMatcher) Matches(pattern, path string) bool {
	ok, err := doublestar.Match(pattern, path)
	return err == nil && ok
}

// ValidPattern reports whether pattern is a well-formed glob.
func ValidPattern(pattern string) bool {
	return doublestar.ValidatePattern(pattern)
}

// LoadOptions controls which contracts Parse keeps.
type LoadOptions struct {
	IgnorePatterns []string
	MatchPatterns  []string
	// Matcher defaults to DoublestarMatcher.
	Matcher PathMatcher
}

func (o LoadOptions) matcher() PathMatcher {
	if o.Matcher == nil {
		return DoublestarMatcher{}
	}
	return o.Matcher
}

// Keep reports whether a contract declared in filePath survives filtering.
// Match patterns take precedence: when any are set, ignore patterns are not
// consulted at all.
func (o LoadOptions) Keep(filePath string) bool {
	m := o.matcher()
	anyMatch := func(patterns []string) bool {
		return len(bulk.SliceFilter(func(p string) bool {
			return m.Matches(p, filePath)
		}, patterns)) > 0
	}

	if len(o.MatchPatterns) > 0 {
		return anyMatch(o.MatchPatterns)
	}
	ignore := append([]string{DefaultIgnorePattern}, o.IgnorePatterns...)
	return !anyMatch(ignore)
}
