// Copyright 2025 Erst Users
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"fmt"
	"math"
	"strings"

	"github.com/Rubilmax/foundry-gas-diff/internal/errors"
	"github.com/Rubilmax/foundry-gas-diff/internal/gasreport"
)

// Validator validates a specific aspect of the configuration.
type Validator interface {
	Validate(cfg *Config) error
}

// QuantileValidator checks that the summary quantile lies in [0, 1].
type QuantileValidator struct{}

func (v QuantileValidator) Validate(cfg *Config) error {
	q := cfg.SummaryQuantile
	if math.IsNaN(q) || q < 0 || q > 1 {
		return errors.WrapValidationError(fmt.Sprintf("summary_quantile must be between 0 and 1, got %g", q))
	}
	return nil
}

// SortValidator checks sort criteria and orders.
type SortValidator struct{}

func (v SortValidator) Validate(cfg *Config) error {
	return cfg.SortOptions().Validate()
}

// PatternValidator checks that every ignore and match pattern is a valid glob.
type PatternValidator struct{}

func (v PatternValidator) Validate(cfg *Config) error {
	for _, p := range append(append([]string{}, cfg.IgnorePatterns...), cfg.MatchPatterns...) {
		if !gasreport.ValidPattern(p) {
			return errors.WrapValidationError(fmt.Sprintf("invalid glob pattern %q", p))
		}
	}
	return nil
}

// LogLevelValidator checks that the log level is a known value.
type LogLevelValidator struct{}

var validLogLevels = map[string]bool{
	"trace": true,
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
}

func (v LogLevelValidator) Validate(cfg *Config) error {
	if cfg.LogLevel == "" {
		return nil
	}
	if !validLogLevels[strings.ToLower(cfg.LogLevel)] {
		return errors.WrapValidationError("log_level must be one of: trace, debug, info, warn, error")
	}
	return nil
}

// DefaultValidators returns the standard set of validators.
func DefaultValidators() []Validator {
	return []Validator{
		QuantileValidator{},
		SortValidator{},
		PatternValidator{},
		LogLevelValidator{},
	}
}

// RunValidators executes each validator against the config, returning the
// first error encountered.
func RunValidators(cfg *Config, validators []Validator) error {
	for _, v := range validators {
		if err := v.Validate(cfg); err != nil {
			return err
		}
	}
	return nil
}
