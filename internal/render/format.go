// Copyright 2025 Erst Users
// SPDX-License-Identifier: Apache-2.0

// Package render formats gas diffs for a terminal, for Markdown comments and
// as a chart image.
package render

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/Rubilmax/foundry-gas-diff/internal/compare"
	"github.com/Rubilmax/foundry-gas-diff/internal/terminal"
)

// Placeholder stands in for numbers that are unavailable.
const Placeholder = "-"

// FormatValue prints v without a fractional part when it has none.
func FormatValue(v float64) string {
	if math.IsNaN(v) {
		return Placeholder
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// FormatDelta prints v with an explicit sign for positive values.
func FormatDelta(v float64) string {
	if math.IsNaN(v) {
		return Placeholder
	}
	if v > 0 {
		return "+" + FormatValue(v)
	}
	return FormatValue(v)
}

// FormatPercent prints p with two decimals and an explicit sign.
func FormatPercent(p float64) string {
	switch {
	case math.IsNaN(p):
		return Placeholder
	case math.IsInf(p, 1):
		return "+∞%"
	case math.IsInf(p, -1):
		return "-∞%"
	case p == 0:
		return "0.00%"
	}
	return fmt.Sprintf("%+.2f%%", p)
}

// styleFor picks the style matching the direction of the cell's change.
func styleFor(style terminal.CellStyle, cell compare.DiffCell) func(string) string {
	switch {
	case cell.Delta > 0:
		return style.Increase
	case cell.Delta < 0:
		return style.Decrease
	default:
		return style.Neutral
	}
}

func width(s string) int {
	return utf8.RuneCountInString(s)
}

func padRight(s string, n int) string {
	if w := width(s); w < n {
		return s + strings.Repeat(" ", n-w)
	}
	return s
}

func padLeft(s string, n int) string {
	if w := width(s); w < n {
		return strings.Repeat(" ", n-w) + s
	}
	return s
}

func center(s string, n int) string {
	w := width(s)
	if w >= n {
		return s
	}
	left := (n - w) / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", n-w-left)
}
