// Copyright 2025 Erst Users
// SPDX-License-Identifier: Apache-2.0

package render

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Rubilmax/foundry-gas-diff/internal/compare"
)

func TestMarkdown_Empty(t *testing.T) {
	out := Markdown(MarkdownOptions{}, nil)

	assert.True(t, strings.HasPrefix(out, DefaultHeader+"\n"))
	assert.Contains(t, out, "no changes in gas cost")
	assert.NotContains(t, out, "|")
	assert.NotContains(t, out, "<details>")
}

func TestMarkdown_Provenance(t *testing.T) {
	tests := []struct {
		name string
		opts MarkdownOptions
		want string
	}{
		{"none", MarkdownOptions{}, ""},
		{"commit", MarkdownOptions{Repository: "o/r", CommitHash: "abc"},
			"> Generated at commit: [abc](https://github.com/o/r/commit/abc)"},
		{"with reference", MarkdownOptions{Repository: "o/r", CommitHash: "abc", RefCommitHash: "def"},
			"> Generated at commit: [abc](https://github.com/o/r/commit/abc), compared to commit: [def](https://github.com/o/r/commit/def)"},
		{"no repository", MarkdownOptions{CommitHash: "abc"}, "> Generated at commit: `abc`"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, provenance(tt.opts))
		})
	}
}

func TestMarkdown_Report(t *testing.T) {
	out := Markdown(MarkdownOptions{
		Header:          "# Gas diff",
		Repository:      "Rubilmax/foundry-gas-diff",
		CommitHash:      "0123abc",
		SummaryQuantile: compare.DefaultSummaryQuantile,
	}, sampleDiffs())

	assert.True(t, strings.HasPrefix(out, "# Gas diff\n\n> Generated at commit: [0123abc]"))
	assert.Contains(t, out, "### 🧾 Summary (20% most significant diffs)")
	assert.Contains(t, out, "<details>")
	assert.Contains(t, out, "</details>")

	assert.Contains(t, out, "| **Token** | 510000 (+10000) **+2.00%** ❌ | transfer | 1000 (0) | **0.00%** ➖ | 1100 (+100) | **+10.00%** ❌ |")
	assert.Contains(t, out, "| burn | 2000 (-1000) | **-33.33%** ✅ |")
	assert.Contains(t, out, "| 2000 (-) | - |")
	assert.Contains(t, out, "| **Vault** | 1200 (+200) **+20.00%** ❌ |")

	// |avg| = [10, 33.33]: the 0.8 quantile is 10, so both methods are
	// summarized and the Token header appears in both tables.
	assert.Equal(t, 2, strings.Count(out, "| **Token** |"))
	// Vault has no methods and never reaches the summary.
	assert.Equal(t, 1, strings.Count(out, "| **Vault** |"))
}

func TestMarkdown_SummaryQuantile(t *testing.T) {
	out := Markdown(MarkdownOptions{SummaryQuantile: 1}, sampleDiffs())
	summary, full, found := strings.Cut(out, "<details>")
	assert.True(t, found)

	assert.Contains(t, summary, "### 🧾 Summary (0% most significant diffs)")
	assert.Contains(t, summary, "| burn |")
	assert.NotContains(t, summary, "transfer")
	assert.Contains(t, full, "transfer")
}

func TestMarkdown_ZeroQuantileSummarizesEverything(t *testing.T) {
	out := Markdown(MarkdownOptions{}, sampleDiffs())
	summary, _, found := strings.Cut(out, "<details>")
	assert.True(t, found)

	assert.Contains(t, summary, "### 🧾 Summary (100% most significant diffs)")
	assert.Contains(t, summary, "| transfer |")
	assert.Contains(t, summary, "| burn |")
}

func TestMarkdown_EmptySummary(t *testing.T) {
	diffs := []compare.DiffReport{{
		Name:           "Cheap",
		DeploymentCost: compare.NewDiffCell(100, 100),
		Methods: []compare.DiffMethod{{
			Name: "tiny",
			Min:  compare.NewDiffCell(10, 20),
			Avg:  compare.NewDiffCell(10, 20),
		}},
	}}
	out := Markdown(MarkdownOptions{SummaryQuantile: 0.8}, diffs)
	assert.Contains(t, out, "_No method changed significantly enough to be summarized._")
	assert.Contains(t, out, "| **Cheap** |")
}
