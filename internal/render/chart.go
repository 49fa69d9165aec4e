// Copyright 2025 Erst Users
// SPDX-License-Identifier: Apache-2.0

package render

import (
	"math"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/go-analyze/charts"

	"github.com/Rubilmax/foundry-gas-diff/internal/compare"
	"github.com/Rubilmax/foundry-gas-diff/internal/errors"
)

// ChartLimit caps how many methods a chart shows.
const ChartLimit = 15

const (
	chartWidth     = 1024
	chartMinHeight = 320
	chartRowHeight = 36
)

type chartBar struct {
	label string
	prcnt float64
}

// ChartFormat maps a file extension to a chart output format.
func ChartFormat(path string) (string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		return charts.ChartOutputPNG, nil
	case ".jpg", ".jpeg":
		return charts.ChartOutputJPG, nil
	case ".svg":
		return charts.ChartOutputSVG, nil
	}
	return "", errors.WrapValidationError("unhandled chart file type: " + path)
}

// WriteChart renders the chart of diffs to path. The format follows the file
// extension.
func WriteChart(path string, diffs []compare.DiffReport) error {
	format, err := ChartFormat(path)
	if err != nil {
		return err
	}
	buf, err := Chart(format, diffs)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, buf, 0644); err != nil {
		return errors.WrapRenderError("write chart file failed", err)
	}
	return nil
}

// Chart draws a horizontal bar chart of the largest average gas changes,
// increases in red and decreases in green.
func Chart(format string, diffs []compare.DiffReport) ([]byte, error) {
	bars := chartBars(diffs)
	if len(bars) == 0 {
		return nil, errors.WrapValidationError("no average gas change to chart")
	}

	increases := make([]float64, len(bars))
	decreases := make([]float64, len(bars))
	labels := make([]string, len(bars))
	for i, b := range bars {
		labels[i] = b.label
		if b.prcnt > 0 {
			increases[i] = b.prcnt
		} else {
			decreases[i] = -b.prcnt
		}
	}

	opt := charts.NewHorizontalBarChartOptionWithData([][]float64{increases, decreases})
	opt.StackSeries = charts.Ptr(true)
	opt.Theme = charts.GetTheme(charts.ThemeLight).WithSeriesColors([]charts.Color{
		charts.ColorRed,
		charts.ColorGreenAlt1,
	})
	opt.Title.Text = "Average gas change (%)"
	opt.YAxis.Labels = labels
	for i := range opt.SeriesList {
		opt.SeriesList[i].Label.Show = charts.Ptr(true)
		opt.SeriesList[i].Label.ValueFormatter = func(f float64) string {
			if f == 0 {
				return ""
			}
			return charts.FormatValueHumanize(f, 2, false) + "%"
		}
	}

	p := charts.NewPainter(charts.PainterOptions{
		OutputFormat: format,
		Width:        chartWidth,
		Height:       max(chartMinHeight, chartRowHeight*(len(bars)+2)),
	})
	if err := p.HorizontalBarChart(opt); err != nil {
		return nil, errors.WrapRenderError("error rendering chart", err)
	}
	buf, err := p.Bytes()
	if err != nil {
		return nil, errors.WrapRenderError("error encoding chart", err)
	}
	return buf, nil
}

// HasChartData reports whether any method in diffs has a finite, non-zero
// average change for Chart to draw.
func HasChartData(diffs []compare.DiffReport) bool {
	return len(chartBars(diffs)) > 0
}

// chartBars picks the methods with the largest finite |avg.Prcnt|, at most
// ChartLimit of them, ordered smallest first.
func chartBars(diffs []compare.DiffReport) []chartBar {
	var bars []chartBar
	for _, d := range diffs {
		for _, m := range d.Methods {
			p := m.Avg.Prcnt
			if math.IsNaN(p) || math.IsInf(p, 0) || p == 0 {
				continue
			}
			bars = append(bars, chartBar{label: d.Name + "." + m.Name, prcnt: p})
		}
	}
	sort.SliceStable(bars, func(i, j int) bool {
		return math.Abs(bars[i].prcnt) > math.Abs(bars[j].prcnt)
	})
	if len(bars) > ChartLimit {
		bars = bars[:ChartLimit]
	}
	for i, j := 0, len(bars)-1; i < j; i, j = i+1, j-1 {
		bars[i], bars[j] = bars[j], bars[i]
	}
	return bars
}
