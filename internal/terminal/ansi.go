// Copyright 2025 Erst Users
// SPDX-License-Identifier: Apache-2.0

package terminal

import (
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

// ANSIStyle highlights increases in red and decreases in green. Colors are
// only emitted when enabled.
type ANSIStyle struct {
	enabled  bool
	increase *color.Color
	decrease *color.Color
	bold     *color.Color
	italic   *color.Color
}

// NewANSIStyle returns a style whose colors follow the environment of stdout.
func NewANSIStyle() *ANSIStyle {
	return NewANSIStyleWith(ColorEnabled(os.Stdout))
}

// NewANSIStyleWith returns a style with colors forced on or off.
func NewANSIStyleWith(enabled bool) *ANSIStyle {
	s := &ANSIStyle{
		enabled:  enabled,
		increase: color.New(color.FgRed),
		decrease: color.New(color.FgGreen),
		bold:     color.New(color.Bold),
		italic:   color.New(color.Italic),
	}
	for _, c := range []*color.Color{s.increase, s.decrease, s.bold, s.italic} {
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return s
}

// ColorEnabled reports whether colored output should be written to f.
// NO_COLOR always wins, FORCE_COLOR forces colors on, TERM=dumb turns them
// off, otherwise f must be a terminal.
func ColorEnabled(f *os.File) bool {
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return false
	}
	if os.Getenv("FORCE_COLOR") != "" {
		return true
	}
	if os.Getenv("TERM") == "dumb" {
		return false
	}
	if f == nil {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func (s *ANSIStyle) Enabled() bool {
	return s.enabled
}

func (s *ANSIStyle) Increase(text string) string { return s.increase.Sprint(text) }
func (s *ANSIStyle) Decrease(text string) string { return s.decrease.Sprint(text) }
func (s *ANSIStyle) Neutral(text string) string  { return text }
func (s *ANSIStyle) Bold(text string) string     { return s.bold.Sprint(text) }
func (s *ANSIStyle) Italic(text string) string   { return s.italic.Sprint(text) }
