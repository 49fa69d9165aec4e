// Copyright 2025 Erst Users
// SPDX-License-Identifier: Apache-2.0

package gasreport

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type prefixMatcher struct{}

func (prefixMatcher) Matches(pattern, path string) bool {
	return len(path) >= len(pattern) && path[:len(pattern)] == pattern
}

func TestDoublestarMatcher(t *testing.T) {
	tests := []struct {
		pattern string
		path    string
		want    bool
	}{
		{"**/Foo.sol", "src/Foo.sol", true},
		{"**/Foo.sol", "src/deep/nested/Foo.sol", true},
		{"**/Foo.sol", "src/FooBar.sol", false},
		{"node_modules/**/*", "node_modules/pkg/A.sol", true},
		{"node_modules/**/*", "lib/node_modules.sol", false},
		{"src/*.sol", "src/a/B.sol", false},
		{"src/[", "src/[", false},
	}
	for _, tt := range tests {
		t.Run(tt.pattern+"|"+tt.path, func(t *testing.T) {
			assert.Equal(t, tt.want, DoublestarMatcher{}.Matches(tt.pattern, tt.path))
		})
	}
}

func TestValidPattern(t *testing.T) {
	assert.True(t, ValidPattern("src/**/*.sol"))
	assert.True(t, ValidPattern("Foo.sol"))
	assert.False(t, ValidPattern("src/[a-"))
}

func TestLoadOptionsKeep(t *testing.T) {
	tests := []struct {
		name string
		opts LoadOptions
		path string
		want bool
	}{
		{"default keeps src", LoadOptions{}, "src/A.sol", true},
		{"default drops node_modules", LoadOptions{}, "node_modules/x/A.sol", false},
		{"ignore any", LoadOptions{IgnorePatterns: []string{"test/**/*", "**/Mock*.sol"}}, "src/mocks/MockA.sol", false},
		{"ignore miss", LoadOptions{IgnorePatterns: []string{"test/**/*"}}, "src/A.sol", true},
		{"match hit", LoadOptions{MatchPatterns: []string{"src/A.sol"}}, "src/A.sol", true},
		{"match miss", LoadOptions{MatchPatterns: []string{"src/A.sol"}}, "src/B.sol", false},
		{"match ignores ignore list", LoadOptions{
			MatchPatterns:  []string{"src/**/*"},
			IgnorePatterns: []string{"src/**/*"},
		}, "src/A.sol", true},
		{"custom matcher", LoadOptions{IgnorePatterns: []string{"src/"}, Matcher: prefixMatcher{}}, "src/A.sol", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.opts.Keep(tt.path))
		})
	}
}
