// Copyright 2025 Erst Users
// SPDX-License-Identifier: Apache-2.0

package compare

import (
	"math"
	"slices"
	"sort"

	"github.com/go-analyze/bulk"
)

// SummaryMinGas is the minimum current min gas a method needs to appear in a
// summary. Cheaper methods swing by large percentages on tiny deltas.
const SummaryMinGas = 500

// DefaultSummaryQuantile is the quantile used when none is configured.
const DefaultSummaryQuantile = 0.8

// Quantile returns the nearest-rank, zero-indexed q-quantile of values:
// sorted[floor((n-1)*q)]. NaN values are ignored. ok is false when no value
// remains.
func Quantile(values []float64, q float64) (float64, bool) {
	sorted := slices.Clone(bulk.SliceFilter(func(v float64) bool {
		return !math.IsNaN(v)
	}, values))
	if len(sorted) == 0 {
		return 0, false
	}
	sort.Float64s(sorted)

	idx := int(math.Floor(float64(len(sorted)-1) * q))
	idx = min(max(idx, 0), len(sorted)-1)
	return sorted[idx], true
}

// Summarize keeps the most significant method changes of diffs. The threshold
// is the q-quantile of |avg.Prcnt| over every method in diffs; a method is
// kept when its |avg.Prcnt| reaches the threshold, its current min gas is at
// least SummaryMinGas and one of its min, median or max moved. Contracts left
// without methods are dropped. diffs is not modified.
func Summarize(diffs []DiffReport, q float64) []DiffReport {
	var magnitudes []float64
	for _, d := range diffs {
		for _, m := range d.Methods {
			magnitudes = append(magnitudes, math.Abs(m.Avg.Prcnt))
		}
	}
	threshold, ok := Quantile(magnitudes, q)
	if !ok {
		return nil
	}

	var summary []DiffReport
	for _, d := range diffs {
		methods := bulk.SliceFilter(func(m DiffMethod) bool {
			return m.Min.Current >= SummaryMinGas &&
				math.Abs(m.Avg.Prcnt) >= threshold &&
				(m.Min.Changed() || m.Median.Changed() || m.Max.Changed())
		}, d.Methods)
		if len(methods) == 0 {
			continue
		}
		d.Methods = methods
		summary = append(summary, d)
	}
	return summary
}
