// Copyright 2025 Erst Users
// SPDX-License-Identifier: Apache-2.0

package logger

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"TRACE", slog.LevelDebug},
		{" info ", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"ERROR", slog.LevelError},
		{"", slog.LevelWarn},
		{"verbose", slog.LevelWarn},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseLevel(tt.in))
		})
	}
}

func TestSetOutputAndLevel(t *testing.T) {
	prev := Level()
	t.Cleanup(func() {
		SetLevel(prev)
		SetOutput(nil, false)
	})

	var buf bytes.Buffer
	SetLevel(slog.LevelInfo)
	SetOutput(&buf, false)

	Logger.Debug("hidden")
	Logger.Info("loaded report", "contracts", 3)

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "loaded report")
	assert.Contains(t, out, "contracts=3")

	buf.Reset()
	SetOutput(&buf, true)
	Logger.Warn("duplicate contract", "name", "Token")
	require.NotEmpty(t, buf.String())
	assert.Contains(t, buf.String(), `"name":"Token"`)
}
