// Copyright 2025 Erst Users
// SPDX-License-Identifier: Apache-2.0

package errors

import (
	"errors"
	"fmt"
)

// Sentinel errors for comparison with errors.Is
var (
	ErrFormat     = errors.New("not a gas report")
	ErrValidation = errors.New("validation error")
	ErrConfig     = errors.New("configuration error")
	ErrReadReport = errors.New("failed to read gas report")
	ErrRender     = errors.New("failed to render gas diff")
)

// Wrap functions for consistent error wrapping
func WrapFormatError(contract, msg string) error {
	if contract == "" {
		return fmt.Errorf("%w: %s", ErrFormat, msg)
	}
	return fmt.Errorf("%w: contract %s: %s", ErrFormat, contract, msg)
}

func WrapValidationError(msg string) error {
	return fmt.Errorf("%w: %s", ErrValidation, msg)
}

func WrapConfigError(msg string, err error) error {
	return fmt.Errorf("%w: %s: %w", ErrConfig, msg, err)
}

func WrapReadReport(path string, err error) error {
	return fmt.Errorf("%w: %s: %w", ErrReadReport, path, err)
}

func WrapRenderError(msg string, err error) error {
	return fmt.Errorf("%w: %s: %w", ErrRender, msg, err)
}

// Is reports whether any error in err's chain matches target.
func Is(err, target error) bool {
	return errors.Is(err, target)
}
