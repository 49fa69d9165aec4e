// Copyright 2025 Erst Users
// SPDX-License-Identifier: Apache-2.0

// Package compare implements the gas diff engine. It joins a baseline and a
// candidate gas report on contract and method names, computes per-cell deltas
// and percentage changes, drops unchanged rows and ranks what is left.
package compare

import (
	"math"
	"sort"

	"github.com/go-analyze/bulk"

	"github.com/Rubilmax/foundry-gas-diff/internal/gasreport"
)

// DiffCell is the comparison of one numeric field between two reports.
type DiffCell struct {
	Previous float64
	Current  float64
	Delta    float64
	// Prcnt is the change relative to Previous, in percent. A zero Previous
	// yields 0 or a signed infinity depending on Delta.
	Prcnt float64
}

// NewDiffCell builds the cell comparing previous against current.
func NewDiffCell(previous, current float64) DiffCell {
	delta := current - previous
	return DiffCell{
		Previous: previous,
		Current:  current,
		Delta:    delta,
		Prcnt:    percentChange(previous, delta),
	}
}

func percentChange(previous, delta float64) float64 {
	switch {
	case math.IsNaN(delta):
		return math.NaN()
	case previous != 0:
		return 100 * delta / previous
	case delta > 0:
		return math.Inf(1)
	case delta < 0:
		return math.Inf(-1)
	default:
		return 0
	}
}

// Changed reports whether the cell carries a known, non-zero delta, or whether
// the value became available or unavailable. NaN on both sides is unchanged.
func (c DiffCell) Changed() bool {
	if math.IsNaN(c.Previous) != math.IsNaN(c.Current) {
		return true
	}
	return c.Delta != 0 && !math.IsNaN(c.Delta)
}

// DiffMethod compares one method present in both reports.
type DiffMethod struct {
	Name   string
	Min    DiffCell
	Avg    DiffCell
	Median DiffCell
	Max    DiffCell
	Calls  DiffCell
}

// Changed reports whether any of min, avg, median or max moved. Calls alone
// never qualify a method.
func (m DiffMethod) Changed() bool {
	return m.Min.Changed() || m.Avg.Changed() || m.Median.Changed() || m.Max.Changed()
}

// DiffReport holds the changes of one contract present in both reports.
type DiffReport struct {
	Name           string
	FilePath       string
	DeploymentCost DiffCell
	DeploymentSize DiffCell
	Methods        []DiffMethod
}

// maxAvgPrcnt is the largest |avg.Prcnt| over the report's methods. ok is false
// when no method carries a comparable percentage.
func (d DiffReport) maxAvgPrcnt() (best float64, ok bool) {
	for _, m := range d.Methods {
		v := math.Abs(m.Avg.Prcnt)
		if math.IsNaN(v) {
			continue
		}
		if !ok || v > best {
			best, ok = v, true
		}
	}
	return best, ok
}

// ComputeDiffs compares source (baseline) against compare (candidate).
//
// Only contracts and methods present on both sides are compared; the rest is
// dropped silently. Contracts are visited in candidate order. A method is kept
// when one of min, avg, median or max changed, and a contract is kept when it
// has a kept method or its deployment cost changed. Sort options are validated
// before any comparison takes place.
func ComputeDiffs(source, compare *gasreport.GasReport, opts SortOptions) ([]DiffReport, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	var diffs []DiffReport
	for _, current := range compare.Contracts() {
		previous, ok := source.Get(current.Name)
		if !ok {
			continue
		}
		diff := diffContract(previous, current)
		if len(diff.Methods) == 0 && !diff.DeploymentCost.Changed() {
			continue
		}
		opts.sortMethods(diff.Methods)
		diffs = append(diffs, diff)
	}

	sortReports(diffs)
	return diffs, nil
}

func diffContract(previous, current *gasreport.ContractReport) DiffReport {
	diff := DiffReport{
		Name:           current.Name,
		FilePath:       current.FilePath,
		DeploymentCost: NewDiffCell(previous.DeploymentCost, current.DeploymentCost),
		DeploymentSize: NewDiffCell(previous.DeploymentSize, current.DeploymentSize),
	}

	joined := bulk.SliceFilter(func(m gasreport.MethodReport) bool {
		_, ok := previous.Method(m.Name)
		return ok
	}, current.Methods)

	for _, cur := range joined {
		prev, _ := previous.Method(cur.Name)
		method := DiffMethod{
			Name:   cur.Name,
			Min:    NewDiffCell(prev.Min, cur.Min),
			Avg:    NewDiffCell(prev.Avg, cur.Avg),
			Median: NewDiffCell(prev.Median, cur.Median),
			Max:    NewDiffCell(prev.Max, cur.Max),
			Calls:  NewDiffCell(prev.Calls, cur.Calls),
		}
		if method.Changed() {
			diff.Methods = append(diff.Methods, method)
		}
	}
	return diff
}

// sortReports orders contracts by their largest |avg.Prcnt|, descending.
// Contracts without a comparable method percentage come last, ordered by
// |deploymentCost.Prcnt| descending, then by candidate order.
func sortReports(diffs []DiffReport) {
	sort.SliceStable(diffs, func(i, j int) bool {
		a, aok := diffs[i].maxAvgPrcnt()
		b, bok := diffs[j].maxAvgPrcnt()
		switch {
		case aok && bok:
			return a > b
		case aok != bok:
			return aok
		}
		return lessAbsDesc(diffs[i].DeploymentCost.Prcnt, diffs[j].DeploymentCost.Prcnt)
	})
}

// lessAbsDesc orders by absolute value, largest first, NaN last.
func lessAbsDesc(a, b float64) bool {
	a, b = math.Abs(a), math.Abs(b)
	switch {
	case math.IsNaN(a):
		return false
	case math.IsNaN(b):
		return true
	}
	return a > b
}
