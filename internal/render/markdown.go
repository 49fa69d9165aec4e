// Copyright 2025 Erst Users
// SPDX-License-Identifier: Apache-2.0

package render

import (
	"fmt"
	"math"
	"strings"

	"github.com/Rubilmax/foundry-gas-diff/internal/compare"
)

// DefaultHeader opens every Markdown report unless overridden.
const DefaultHeader = "# Changes to gas cost"

// NoChangesMarkdown replaces both tables when nothing changed.
const NoChangesMarkdown = "### There are no changes in gas cost"

const (
	glyphIncrease = "❌"
	glyphDecrease = "✅"
	glyphNeutral  = "➖"
)

// MarkdownOptions describes the surroundings of a Markdown report.
type MarkdownOptions struct {
	Header string

	// Repository is the "owner/name" slug used to link commits.
	Repository    string
	CommitHash    string
	RefCommitHash string

	// SummaryQuantile is used as given: zero summarizes every significant
	// method. Callers wanting the usual cut set compare.DefaultSummaryQuantile.
	SummaryQuantile float64
}

// Markdown renders diffs as a pull request comment: a header, the commits the
// reports came from, a summary of the most significant changes and the full
// diff folded in a <details> block.
func Markdown(opts MarkdownOptions, diffs []compare.DiffReport) string {
	header := opts.Header
	if header == "" {
		header = DefaultHeader
	}
	q := opts.SummaryQuantile

	var sb strings.Builder
	sb.WriteString(header)
	sb.WriteString("\n\n")
	if line := provenance(opts); line != "" {
		sb.WriteString(line)
		sb.WriteString("\n\n")
	}

	if len(diffs) == 0 {
		sb.WriteString(NoChangesMarkdown)
		sb.WriteString("\n")
		return sb.String()
	}

	fmt.Fprintf(&sb, "### 🧾 Summary (%d%% most significant diffs)\n\n", int(math.Round((1-q)*100)))
	if summary := compare.Summarize(diffs, q); len(summary) > 0 {
		writeMarkdownTable(&sb, summary)
	} else {
		sb.WriteString("_No method changed significantly enough to be summarized._\n")
	}

	sb.WriteString("\n---\n\n")
	sb.WriteString("<details>\n<summary><strong>Full diff report</strong> 👇</summary>\n<br />\n\n")
	writeMarkdownTable(&sb, diffs)
	sb.WriteString("</details>\n")
	return sb.String()
}

func provenance(opts MarkdownOptions) string {
	if opts.CommitHash == "" {
		return ""
	}
	line := "> Generated at commit: " + commitLink(opts.Repository, opts.CommitHash)
	if opts.RefCommitHash != "" {
		line += ", compared to commit: " + commitLink(opts.Repository, opts.RefCommitHash)
	}
	return line
}

func commitLink(repository, hash string) string {
	if repository == "" {
		return "`" + hash + "`"
	}
	return fmt.Sprintf("[%s](https://github.com/%s/commit/%s)", hash, repository, hash)
}

var markdownColumns = []struct {
	title string
	align string
}{
	{"Contract", ":-"},
	{"Deployment Cost (+/-)", "-:"},
	{"Method", ":-"},
	{"Min (+/-)", "-:"},
	{"%", "-:"},
	{"Avg (+/-)", "-:"},
	{"%", "-:"},
	{"Median (+/-)", "-:"},
	{"%", "-:"},
	{"Max (+/-)", "-:"},
	{"%", "-:"},
	{"# Calls (+/-)", "-:"},
}

func writeMarkdownTable(sb *strings.Builder, diffs []compare.DiffReport) {
	titles := make([]string, len(markdownColumns))
	aligns := make([]string, len(markdownColumns))
	for i, c := range markdownColumns {
		titles[i], aligns[i] = c.title, c.align
	}
	writeMarkdownRow(sb, titles)
	writeMarkdownRow(sb, aligns)

	for _, diff := range diffs {
		contract := "**" + diff.Name + "**"
		deployment := markdownValue(diff.DeploymentCost) + " " + markdownPercent(diff.DeploymentCost)
		if len(diff.Methods) == 0 {
			writeMarkdownRow(sb, []string{contract, deployment, "", "", "", "", "", "", "", "", "", ""})
			continue
		}
		for i, m := range diff.Methods {
			if i > 0 {
				contract, deployment = "", ""
			}
			writeMarkdownRow(sb, []string{
				contract,
				deployment,
				m.Name,
				markdownValue(m.Min), markdownPercent(m.Min),
				markdownValue(m.Avg), markdownPercent(m.Avg),
				markdownValue(m.Median), markdownPercent(m.Median),
				markdownValue(m.Max), markdownPercent(m.Max),
				markdownValue(m.Calls),
			})
		}
	}
}

func writeMarkdownRow(sb *strings.Builder, cells []string) {
	sb.WriteString("| ")
	sb.WriteString(strings.Join(cells, " | "))
	sb.WriteString(" |\n")
}

func markdownValue(c compare.DiffCell) string {
	if math.IsNaN(c.Current) {
		return Placeholder
	}
	return fmt.Sprintf("%s (%s)", FormatValue(c.Current), FormatDelta(c.Delta))
}

func markdownPercent(c compare.DiffCell) string {
	if math.IsNaN(c.Prcnt) {
		return Placeholder
	}
	glyph := glyphNeutral
	switch {
	case c.Delta > 0:
		glyph = glyphIncrease
	case c.Delta < 0:
		glyph = glyphDecrease
	}
	return "**" + FormatPercent(c.Prcnt) + "** " + glyph
}
