// Copyright 2025 Erst Users
// SPDX-License-Identifier: Apache-2.0

package gasreport

import (
	"fmt"
	"math"
	"os"
	"regexp"
	"strconv"
	"strings"
	"unicode"

	"github.com/Rubilmax/foundry-gas-diff/internal/errors"
)

var (
	ansiPattern    = regexp.MustCompile(`\x1b\[[0-9;]*[A-Za-z]`)
	integerPattern = regexp.MustCompile(`\d+`)
	headerPattern  = regexp.MustCompile(`^\S+:\S+(\s+[Cc]ontract)?$`)
)

// cellDelimiters are normalised to "|" before a row is split.
var cellDelimiters = strings.NewReplacer("│", "|", "┆", "|", "┊", "|")

const (
	labelDeploymentCost = "Deployment Cost"
	labelFunctionName   = "Function Name"
)

// ParseFile reads and parses the report stored at filePath.
func ParseFile(filePath string, opts LoadOptions) (*GasReport, error) {
	if filePath == "" {
		return nil, errors.WrapReadReport(filePath, fmt.Errorf("report file path cannot be empty"))
	}
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, errors.WrapReadReport(filePath, err)
	}
	return Parse(string(data), opts)
}

// Parse converts gas report text into a GasReport.
//
// Both table dialects printed by forge are understood: box-drawing tables
// delimited by "╭" and "╰" lines, and pipe tables whose first row is a
// "path:Name" header and which end at the first blank line. A table without
// a deployment cost and size aborts the whole parse with ErrFormat.
func Parse(text string, opts LoadOptions) (*GasReport, error) {
	report := NewGasReport()
	for _, rows := range splitTables(text) {
		contract, err := parseTable(rows)
		if err != nil {
			return nil, err
		}
		if !opts.Keep(contract.FilePath) {
			continue
		}
		report.Put(contract)
	}
	return report, nil
}

func cleanLine(line string) string {
	return strings.TrimSpace(ansiPattern.ReplaceAllString(line, ""))
}

func splitTables(text string) [][][]string {
	lines := strings.Split(text, "\n")
	for i := range lines {
		lines[i] = cleanLine(lines[i])
	}

	var tables [][][]string
	for i := 0; i < len(lines); i++ {
		switch line := lines[i]; {
		case strings.HasPrefix(line, "╭"):
			end := i + 1
			for end < len(lines) && !strings.HasPrefix(lines[end], "╰") {
				end++
			}
			tables = append(tables, tableRows(lines[i+1:end]))
			i = end
		case isPipeHeader(line):
			end := i + 1
			for end < len(lines) && strings.HasPrefix(lines[end], "|") {
				end++
			}
			tables = append(tables, tableRows(lines[i:end]))
			i = end - 1
		}
	}
	return tables
}

func isPipeHeader(line string) bool {
	if !strings.HasPrefix(line, "|") {
		return false
	}
	cells := splitCells(line)
	return len(cells) > 0 && headerPattern.MatchString(cells[0])
}

// isSeparator reports whether line only holds border glyphs. Rows whose cells
// are all empty count as separators too.
func isSeparator(line string) bool {
	return strings.IndexFunc(line, func(r rune) bool {
		return unicode.IsLetter(r) || unicode.IsDigit(r)
	}) < 0
}

func splitCells(line string) []string {
	parts := strings.Split(cellDelimiters.Replace(line), "|")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	if len(parts) > 0 && parts[0] == "" {
		parts = parts[1:]
	}
	if len(parts) > 0 && parts[len(parts)-1] == "" {
		parts = parts[:len(parts)-1]
	}
	return parts
}

func tableRows(lines []string) [][]string {
	rows := make([][]string, 0, len(lines))
	for _, line := range lines {
		if isSeparator(line) {
			continue
		}
		if cells := splitCells(line); len(cells) > 0 {
			rows = append(rows, cells)
		}
	}
	return rows
}

func parseHeader(cell string) (filePath, name string, ok bool) {
	fields := strings.Fields(cell)
	if len(fields) == 0 {
		return "", "", false
	}
	token := fields[0]
	idx := strings.LastIndex(token, ":")
	if idx <= 0 || idx == len(token)-1 {
		return "", "", false
	}
	return token[:idx], token[idx+1:], true
}

func parseTable(rows [][]string) (*ContractReport, error) {
	if len(rows) == 0 {
		return nil, errors.WrapFormatError("", "empty report table")
	}
	filePath, name, ok := parseHeader(rows[0][0])
	if !ok {
		return nil, errors.WrapFormatError("", fmt.Sprintf("unrecognized report header %q", rows[0][0]))
	}

	valuesRow := 1
	for i := 1; i < len(rows); i++ {
		if strings.EqualFold(rows[i][0], labelDeploymentCost) {
			valuesRow = i + 1
			break
		}
	}
	var tokens []string
	if valuesRow < len(rows) {
		tokens = integerPattern.FindAllString(strings.Join(rows[valuesRow], " "), 2)
	}
	if len(tokens) < 2 {
		return nil, errors.WrapFormatError(name, "no deployment cost or deployment size found")
	}

	contract := &ContractReport{
		Name:           name,
		FilePath:       filePath,
		DeploymentCost: parseNumber(tokens[0]),
		DeploymentSize: parseNumber(tokens[1]),
	}
	for _, cells := range rows[valuesRow+1:] {
		if cells[0] == "" || strings.EqualFold(cells[0], labelFunctionName) {
			continue
		}
		contract.putMethod(parseMethod(cells))
	}
	return contract, nil
}

func parseMethod(cells []string) MethodReport {
	field := func(i int) float64 {
		if i >= len(cells) {
			return math.NaN()
		}
		return parseNumber(cells[i])
	}
	return MethodReport{
		Name:   strings.Fields(cells[0])[0],
		Min:    field(1),
		Avg:    field(2),
		Median: field(3),
		Max:    field(4),
		Calls:  field(5),
	}
}

// parseNumber parses the literal decimal text of a cell; anything else is NaN.
func parseNumber(s string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return math.NaN()
	}
	return v
}
