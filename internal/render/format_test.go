// Copyright 2025 Erst Users
// SPDX-License-Identifier: Apache-2.0

package render

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatPercent(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{12.345, "+12.35%"},
		{10, "+10.00%"},
		{-25, "-25.00%"},
		{0, "0.00%"},
		{math.Inf(1), "+∞%"},
		{math.Inf(-1), "-∞%"},
		{math.NaN(), "-"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatPercent(tt.in))
		})
	}
}

func TestFormatValueAndDelta(t *testing.T) {
	assert.Equal(t, "1100", FormatValue(1100))
	assert.Equal(t, "12.5", FormatValue(12.5))
	assert.Equal(t, "-", FormatValue(math.NaN()))

	assert.Equal(t, "+100", FormatDelta(100))
	assert.Equal(t, "-50", FormatDelta(-50))
	assert.Equal(t, "0", FormatDelta(0))
	assert.Equal(t, "-", FormatDelta(math.NaN()))
}

func TestPadding(t *testing.T) {
	assert.Equal(t, "ab  ", padRight("ab", 4))
	assert.Equal(t, "  ab", padLeft("ab", 4))
	assert.Equal(t, " ab ", center("ab", 4))
	assert.Equal(t, "  +∞%", padLeft("+∞%", 5))
	assert.Equal(t, "toolong", padRight("toolong", 3))
}
