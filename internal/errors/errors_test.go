// Copyright 2025 Erst Users
// SPDX-License-Identifier: Apache-2.0

package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSentinelErrors(t *testing.T) {
	assert.NotNil(t, ErrFormat)
	assert.NotNil(t, ErrValidation)
	assert.NotNil(t, ErrConfig)
	assert.NotNil(t, ErrReadReport)
	assert.NotNil(t, ErrRender)
}

func TestErrorWrapping(t *testing.T) {
	baseErr := fmt.Errorf("base error")

	wrappedErr := WrapFormatError("Counter", "no deployment cost found")
	assert.True(t, errors.Is(wrappedErr, ErrFormat))
	assert.Contains(t, wrappedErr.Error(), "Counter")
	assert.Contains(t, wrappedErr.Error(), "not a gas report")

	wrappedErr = WrapFormatError("", "empty table")
	assert.True(t, errors.Is(wrappedErr, ErrFormat))
	assert.NotContains(t, wrappedErr.Error(), "contract")

	wrappedErr = WrapValidationError("unknown sort criterion \"gas\"")
	assert.True(t, errors.Is(wrappedErr, ErrValidation))
	assert.Contains(t, wrappedErr.Error(), "gas")

	wrappedErr = WrapConfigError("failed to read config file", baseErr)
	assert.True(t, errors.Is(wrappedErr, ErrConfig))
	assert.True(t, errors.Is(wrappedErr, baseErr))

	wrappedErr = WrapReadReport("reports/base.txt", baseErr)
	assert.True(t, errors.Is(wrappedErr, ErrReadReport))
	assert.True(t, errors.Is(wrappedErr, baseErr))
	assert.Contains(t, wrappedErr.Error(), "reports/base.txt")

	wrappedErr = WrapRenderError("chart", baseErr)
	assert.True(t, Is(wrappedErr, ErrRender))
	assert.True(t, Is(wrappedErr, baseErr))
}

func TestErrorComparison(t *testing.T) {
	err1 := WrapFormatError("A", "test")
	err2 := WrapValidationError("test")

	assert.True(t, errors.Is(err1, ErrFormat))
	assert.False(t, errors.Is(err1, ErrValidation))

	assert.True(t, errors.Is(err2, ErrValidation))
	assert.False(t, errors.Is(err2, ErrFormat))
}
