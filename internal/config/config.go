// Copyright 2025 Erst Users
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/Rubilmax/foundry-gas-diff/internal/compare"
	"github.com/Rubilmax/foundry-gas-diff/internal/errors"
	"github.com/Rubilmax/foundry-gas-diff/internal/gasreport"
	"github.com/Rubilmax/foundry-gas-diff/internal/render"
)

// Config holds every setting consumed by the parser, the diff engine and the
// renderers. It is built once per invocation and passed down explicitly.
type Config struct {
	IgnorePatterns  []string
	MatchPatterns   []string
	SortCriteria    []string
	SortOrders      []string
	SummaryQuantile float64
	Header          string
	LogLevel        string
	// OTelEndpoint enables tracing when set.
	OTelEndpoint string
}

var defaultConfig = &Config{
	SummaryQuantile: compare.DefaultSummaryQuantile,
	Header:          render.DefaultHeader,
	LogLevel:        "warn",
}

// Load builds the configuration from defaults, the first TOML file found and
// GASDIFF_* environment variables, in increasing precedence, and validates it.
func Load() (*Config, error) {
	cfg, err := Read()
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Read is Load without validation, for callers that layer more settings on
// top and call Validate themselves.
func Read() (*Config, error) {
	cfg := DefaultConfig()
	if err := cfg.loadFromFile(configPaths()); err != nil {
		return nil, err
	}
	if err := cfg.loadFromEnv(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func configPaths() []string {
	return []string{
		".gasdiff.toml",
		filepath.Join(os.ExpandEnv("$HOME"), ".gasdiff.toml"),
	}
}

func (c *Config) loadFromFile(paths []string) error {
	for _, path := range paths {
		if _, err := os.Stat(path); err != nil {
			continue
		}
		return c.loadTOML(path)
	}
	return nil
}

func (c *Config) loadTOML(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return errors.WrapConfigError("failed to read config file", err)
	}
	if err := c.parseTOML(string(data)); err != nil {
		return errors.WrapConfigError("failed to parse "+path, err)
	}
	return nil
}

// parseTOML understands the flat subset of TOML the config needs: one
// key = value pair per line, quoted strings, numbers and ["a", "b"] lists.
func (c *Config) parseTOML(content string) error {
	for n, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		parts := strings.SplitN(line, "=", 2)
		if len(parts) != 2 {
			return fmt.Errorf("line %d: expected key = value", n+1)
		}
		key := strings.TrimSpace(parts[0])
		rawVal := strings.TrimSpace(parts[1])

		switch key {
		case "ignore":
			c.IgnorePatterns = parseList(rawVal)
		case "match":
			c.MatchPatterns = parseList(rawVal)
		case "sort_criteria":
			c.SortCriteria = parseList(rawVal)
		case "sort_orders":
			c.SortOrders = parseList(rawVal)
		case "summary_quantile":
			q, err := strconv.ParseFloat(unquote(rawVal), 64)
			if err != nil {
				return fmt.Errorf("line %d: summary_quantile: %w", n+1, err)
			}
			c.SummaryQuantile = q
		case "header":
			c.Header = unquote(rawVal)
		case "log_level":
			c.LogLevel = unquote(rawVal)
		case "otel_endpoint":
			c.OTelEndpoint = unquote(rawVal)
		}
	}
	return nil
}

func (c *Config) loadFromEnv() error {
	if v := os.Getenv("GASDIFF_IGNORE"); v != "" {
		c.IgnorePatterns = splitList(v)
	}
	if v := os.Getenv("GASDIFF_MATCH"); v != "" {
		c.MatchPatterns = splitList(v)
	}
	if v := os.Getenv("GASDIFF_SORT_CRITERIA"); v != "" {
		c.SortCriteria = splitList(v)
	}
	if v := os.Getenv("GASDIFF_SORT_ORDERS"); v != "" {
		c.SortOrders = splitList(v)
	}
	if v := os.Getenv("GASDIFF_SUMMARY_QUANTILE"); v != "" {
		q, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return errors.WrapConfigError("invalid GASDIFF_SUMMARY_QUANTILE", err)
		}
		c.SummaryQuantile = q
	}
	c.Header = getEnv("GASDIFF_HEADER", c.Header)
	c.LogLevel = getEnv("GASDIFF_LOG_LEVEL", c.LogLevel)
	c.OTelEndpoint = getEnv("GASDIFF_OTEL_ENDPOINT", c.OTelEndpoint)
	return nil
}

// parseList accepts a ["a", "b"] list or a comma-separated string.
func parseList(raw string) []string {
	if strings.HasPrefix(raw, "[") && strings.HasSuffix(raw, "]") {
		raw = strings.Trim(raw, "[]")
	} else {
		raw = unquote(raw)
	}
	var out []string
	for _, p := range strings.Split(raw, ",") {
		if p = unquote(strings.TrimSpace(p)); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func splitList(raw string) []string {
	var out []string
	for _, p := range strings.Split(raw, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func unquote(s string) string {
	return strings.Trim(strings.TrimSpace(s), "\"'")
}

func (c *Config) Validate() error {
	return RunValidators(c, DefaultValidators())
}

// LoadOptions projects the filtering settings for the parser.
func (c *Config) LoadOptions() gasreport.LoadOptions {
	return gasreport.LoadOptions{
		IgnorePatterns: c.IgnorePatterns,
		MatchPatterns:  c.MatchPatterns,
	}
}

// SortOptions projects the ranking settings for the diff engine.
func (c *Config) SortOptions() compare.SortOptions {
	return compare.SortOptions{
		Criteria: c.SortCriteria,
		Orders:   c.SortOrders,
	}
}

func (c *Config) String() string {
	return fmt.Sprintf(
		"Config{Ignore: %v, Match: %v, Sort: %v/%v, Quantile: %g, LogLevel: %s}",
		c.IgnorePatterns, c.MatchPatterns, c.SortCriteria, c.SortOrders, c.SummaryQuantile, c.LogLevel,
	)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func DefaultConfig() *Config {
	return &Config{
		SummaryQuantile: defaultConfig.SummaryQuantile,
		Header:          defaultConfig.Header,
		LogLevel:        defaultConfig.LogLevel,
	}
}
