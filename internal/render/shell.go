// Copyright 2025 Erst Users
// SPDX-License-Identifier: Apache-2.0

package render

import (
	"strings"

	"github.com/Rubilmax/foundry-gas-diff/internal/compare"
	"github.com/Rubilmax/foundry-gas-diff/internal/terminal"
)

const (
	minContractWidth = 8
	minMethodWidth   = 7
	minNumberWidth   = 8
)

// NoChangesShell is printed instead of a table when nothing changed.
const NoChangesShell = "There are no changes in gas cost"

// Shell renders diffs as a fixed-width table for terminal output.
//
// Every numeric column shows the current value, the signed delta and the
// signed percentage, styled by the direction of the change. The contract name
// and its deployment cost only appear on the first row of each contract.
func Shell(diffs []compare.DiffReport, style terminal.CellStyle) string {
	if style == nil {
		style = terminal.PlainStyle{}
	}
	if len(diffs) == 0 {
		return style.Italic(NoChangesShell) + "\n"
	}

	t := newShellTable(diffs)
	var sb strings.Builder

	headers := []string{"Contract", "Deployment Cost", "Method", "Min", "Avg", "Median", "Max", "# Calls"}
	cells := make([]string, len(headers))
	for i, h := range headers {
		cells[i] = style.Bold(center(h, t.widths[i]))
	}
	t.writeRow(&sb, cells)
	t.writeSeparator(&sb)

	for _, diff := range diffs {
		deployment := t.cell(diff.DeploymentCost, style)
		contract := padRight(diff.Name, t.widths[0])
		if len(diff.Methods) == 0 {
			t.writeRow(&sb, []string{contract, deployment, padRight("", t.widths[2]),
				t.blank(), t.blank(), t.blank(), t.blank(), t.blank()})
		}
		for i, m := range diff.Methods {
			if i > 0 {
				contract = padRight("", t.widths[0])
				deployment = t.blank()
			}
			t.writeRow(&sb, []string{
				contract,
				deployment,
				padRight(m.Name, t.widths[2]),
				t.cell(m.Min, style),
				t.cell(m.Avg, style),
				t.cell(m.Median, style),
				t.cell(m.Max, style),
				t.cell(m.Calls, style),
			})
		}
		t.writeSeparator(&sb)
	}
	return sb.String()
}

type shellTable struct {
	number int
	widths []int
}

func newShellTable(diffs []compare.DiffReport) *shellTable {
	contractWidth, methodWidth, numberWidth := minContractWidth, minMethodWidth, minNumberWidth
	measure := func(c compare.DiffCell) {
		numberWidth = max(numberWidth, width(FormatValue(c.Current)), width(FormatDelta(c.Delta)), width(FormatPercent(c.Prcnt)))
	}
	for _, d := range diffs {
		contractWidth = max(contractWidth, width(d.Name))
		measure(d.DeploymentCost)
		for _, m := range d.Methods {
			methodWidth = max(methodWidth, width(m.Name))
			for _, c := range []compare.DiffCell{m.Min, m.Avg, m.Median, m.Max, m.Calls} {
				measure(c)
			}
		}
	}

	cellWidth := 3*numberWidth + 2
	return &shellTable{
		number: numberWidth,
		widths: []int{contractWidth, cellWidth, methodWidth, cellWidth, cellWidth, cellWidth, cellWidth, cellWidth},
	}
}

func (t *shellTable) cell(c compare.DiffCell, style terminal.CellStyle) string {
	text := strings.Join([]string{
		padLeft(FormatValue(c.Current), t.number),
		padLeft(FormatDelta(c.Delta), t.number),
		padLeft(FormatPercent(c.Prcnt), t.number),
	}, " ")
	return styleFor(style, c)(text)
}

func (t *shellTable) blank() string {
	return strings.Repeat(" ", 3*t.number+2)
}

func (t *shellTable) writeRow(sb *strings.Builder, cells []string) {
	sb.WriteString("| ")
	sb.WriteString(strings.Join(cells, " | "))
	sb.WriteString(" |\n")
}

func (t *shellTable) writeSeparator(sb *strings.Builder) {
	sb.WriteString("|")
	for _, w := range t.widths {
		sb.WriteString(strings.Repeat("-", w+2))
		sb.WriteString("|")
	}
	sb.WriteString("\n")
}
