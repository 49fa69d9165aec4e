// Copyright 2025 Erst Users
// SPDX-License-Identifier: Apache-2.0

package terminal

import (
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func unsetEnv(t *testing.T, key string) {
	t.Helper()
	value, exists := os.LookupEnv(key)
	_ = os.Unsetenv(key)
	t.Cleanup(func() {
		if exists {
			_ = os.Setenv(key, value)
			return
		}
		_ = os.Unsetenv(key)
	})
}

func TestColorEnabled(t *testing.T) {
	t.Run("NO_COLOR disables color", func(t *testing.T) {
		t.Setenv("NO_COLOR", "1")
		assert.False(t, ColorEnabled(os.Stdout))
	})

	t.Run("NO_COLOR overrides force", func(t *testing.T) {
		t.Setenv("FORCE_COLOR", "1")
		t.Setenv("NO_COLOR", "1")
		assert.False(t, ColorEnabled(os.Stdout))
	})

	t.Run("FORCE_COLOR enables color", func(t *testing.T) {
		unsetEnv(t, "NO_COLOR")
		t.Setenv("FORCE_COLOR", "1")
		assert.True(t, ColorEnabled(nil))
	})

	t.Run("TERM=dumb disables color", func(t *testing.T) {
		unsetEnv(t, "NO_COLOR")
		unsetEnv(t, "FORCE_COLOR")
		t.Setenv("TERM", "dumb")
		assert.False(t, ColorEnabled(os.Stdout))
	})

	t.Run("nil file without force", func(t *testing.T) {
		unsetEnv(t, "NO_COLOR")
		unsetEnv(t, "FORCE_COLOR")
		t.Setenv("TERM", "xterm")
		assert.False(t, ColorEnabled(nil))
	})
}

func TestANSIStyle(t *testing.T) {
	t.Run("colorized when enabled", func(t *testing.T) {
		s := NewANSIStyleWith(true)
		assert.True(t, s.Enabled())
		assert.Contains(t, s.Increase("+10"), "\x1b[31m")
		assert.Contains(t, s.Decrease("-10"), "\x1b[32m")
		assert.Contains(t, s.Bold("Contract"), "\x1b[1m")
		assert.Contains(t, s.Italic("note"), "\x1b[3m")
		assert.Equal(t, "0", s.Neutral("0"))
	})

	t.Run("plain when disabled", func(t *testing.T) {
		s := NewANSIStyleWith(false)
		for _, out := range []string{s.Increase("a"), s.Decrease("b"), s.Bold("c"), s.Italic("d")} {
			assert.False(t, strings.Contains(out, "\x1b"), "unexpected escape in %q", out)
		}
		assert.Equal(t, "a", s.Increase("a"))
	})
}

func TestPlainAndMockStyle(t *testing.T) {
	var p PlainStyle
	assert.Equal(t, "x", p.Increase("x"))
	assert.Equal(t, "x", p.Italic("x"))

	m := NewMockStyle()
	assert.Equal(t, "[increase]+1[/increase]", m.Increase("+1"))
	assert.Equal(t, "[decrease]-1[/decrease]", m.Decrease("-1"))
	m.Increase("+2")
	assert.Equal(t, 2, m.Count("increase"))
	assert.Equal(t, 0, m.Count("bold"))
}
