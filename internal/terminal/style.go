// Copyright 2025 Erst Users
// SPDX-License-Identifier: Apache-2.0

package terminal

// CellStyle decorates table cells according to the direction of a change.
// Implementations decide how, or whether, text gets highlighted.
type CellStyle interface {
	Increase(text string) string
	Decrease(text string) string
	Neutral(text string) string
	Bold(text string) string
	Italic(text string) string
}

// PlainStyle leaves text untouched.
type PlainStyle struct{}

func (PlainStyle) Increase(text string) string { return text }
func (PlainStyle) Decrease(text string) string { return text }
func (PlainStyle) Neutral(text string) string  { return text }
func (PlainStyle) Bold(text string) string     { return text }
func (PlainStyle) Italic(text string) string   { return text }
