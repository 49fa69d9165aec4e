// Copyright 2025 Erst Users
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	oteltrace "go.opentelemetry.io/otel/trace"

	"github.com/Rubilmax/foundry-gas-diff/internal/compare"
	"github.com/Rubilmax/foundry-gas-diff/internal/config"
	"github.com/Rubilmax/foundry-gas-diff/internal/errors"
	"github.com/Rubilmax/foundry-gas-diff/internal/gasreport"
	"github.com/Rubilmax/foundry-gas-diff/internal/logger"
	"github.com/Rubilmax/foundry-gas-diff/internal/render"
	"github.com/Rubilmax/foundry-gas-diff/internal/telemetry"
	"github.com/Rubilmax/foundry-gas-diff/internal/terminal"
)

const (
	outputShell    = "shell"
	outputMarkdown = "markdown"
)

// ─── flags specific to the diff command ───────────────────────────────────────

var (
	diffOutputFlag       string
	diffIgnoreFlag       []string
	diffMatchFlag        []string
	diffSortCriteriaFlag []string
	diffSortOrdersFlag   []string
	diffQuantileFlag     float64
	diffHeaderFlag       string
	diffRepoFlag         string
	diffCommitFlag       string
	diffRefCommitFlag    string
	diffOutFlag          string
	diffChartFlag        string
	diffNoColorFlag      bool
	diffVerboseFlag      bool
)

// diffCmd implements `gasdiff diff`.
var diffCmd = &cobra.Command{
	Use:     "diff <baseline-report> <candidate-report>",
	GroupID: "core",
	Short:   "Compare a candidate gas report against a baseline",
	Long: `Parse two gas reports and print how deployment and method costs changed.

Only contracts and methods present in both reports are compared. Methods whose
min, avg, median and max are all unchanged are left out.

Settings are read from .gasdiff.toml (current directory, then home directory),
then GASDIFF_* environment variables, then flags.

Examples:
  # Colored table in the terminal
  gasdiff diff base.txt head.txt

  # Markdown comment linking the compared commits
  gasdiff diff base.txt head.txt -o markdown --repo owner/repo --commit $SHA --out diff.md

  # Only compare src contracts, sorted by name then avg
  gasdiff diff base.txt head.txt --match 'src/**/*' --sort-criteria name,avg`,
	Args: cobra.ExactArgs(2),
	PreRunE: func(cmd *cobra.Command, args []string) error {
		switch diffOutputFlag {
		case outputShell, outputMarkdown:
		default:
			return errors.WrapValidationError(fmt.Sprintf("unknown output format %q (expected shell or markdown)", diffOutputFlag))
		}
		if args[0] == args[1] {
			return errors.WrapValidationError("at least two different gas reports must be specified")
		}
		if diffChartFlag != "" {
			if _, err := render.ChartFormat(diffChartFlag); err != nil {
				return err
			}
		}
		return nil
	},
	RunE: runDiff,
}

func init() {
	diffCmd.Flags().StringVarP(&diffOutputFlag, "output", "o", outputShell,
		"Output format (shell, markdown)")
	diffCmd.Flags().StringSliceVar(&diffIgnoreFlag, "ignore", nil,
		"Glob patterns of contract paths to leave out (node_modules is always ignored)")
	diffCmd.Flags().StringSliceVar(&diffMatchFlag, "match", nil,
		"Glob patterns of contract paths to keep; overrides --ignore")
	diffCmd.Flags().StringSliceVar(&diffSortCriteriaFlag, "sort-criteria", nil,
		"Method sort keys (name, min, avg, median, max, calls)")
	diffCmd.Flags().StringSliceVar(&diffSortOrdersFlag, "sort-orders", nil,
		"Order for each sort key (asc, desc)")
	diffCmd.Flags().Float64Var(&diffQuantileFlag, "summary-quantile", compare.DefaultSummaryQuantile,
		"Quantile of |avg %| a method must reach to be summarized (0 to 1)")
	diffCmd.Flags().StringVar(&diffHeaderFlag, "header", render.DefaultHeader,
		"Header line of the Markdown report")
	diffCmd.Flags().StringVar(&diffRepoFlag, "repo", "",
		"Repository slug owner/name used to link commits (or GITHUB_REPOSITORY)")
	diffCmd.Flags().StringVar(&diffCommitFlag, "commit", "",
		"Commit the candidate report was generated at (or GITHUB_SHA)")
	diffCmd.Flags().StringVar(&diffRefCommitFlag, "ref-commit", "",
		"Commit the baseline report was generated at")
	diffCmd.Flags().StringVar(&diffOutFlag, "out", "",
		"Write the report to this file instead of stdout")
	diffCmd.Flags().StringVar(&diffChartFlag, "chart", "",
		"Also draw a bar chart of the largest changes (.png, .jpg or .svg)")
	diffCmd.Flags().BoolVar(&diffNoColorFlag, "no-color", false,
		"Disable colors in shell output")
	diffCmd.Flags().BoolVarP(&diffVerboseFlag, "verbose", "v", false,
		"Log debug information to stderr")

	rootCmd.AddCommand(diffCmd)
}

// ─── main handler ─────────────────────────────────────────────────────────────

func runDiff(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	cfg, err := loadDiffConfig(cmd)
	if err != nil {
		return err
	}

	if diffVerboseFlag {
		logger.SetLevel(slog.LevelDebug)
	} else {
		logger.SetLevel(logger.ParseLevel(cfg.LogLevel))
	}
	logger.Logger.Debug("Configuration loaded", "config", cfg.String())

	if cfg.OTelEndpoint != "" {
		cleanup, err := telemetry.Init(ctx, telemetry.Config{
			Enabled:        true,
			ExporterURL:    cfg.OTelEndpoint,
			ServiceName:    "gasdiff",
			ServiceVersion: Version,
		})
		if err != nil {
			return fmt.Errorf("failed to initialize telemetry: %w", err)
		}
		defer cleanup()
	}

	ctx, span := telemetry.GetTracer().Start(ctx, "gasdiff_diff")
	defer span.End()

	source, err := loadReport(ctx, args[0], cfg)
	if err != nil {
		recordSpanError(span, err)
		return err
	}
	candidate, err := loadReport(ctx, args[1], cfg)
	if err != nil {
		recordSpanError(span, err)
		return err
	}

	start := time.Now()
	diffs, err := compare.ComputeDiffs(source, candidate, cfg.SortOptions())
	if err != nil {
		recordSpanError(span, err)
		return err
	}
	span.SetAttributes(attribute.Int("diff.contracts", len(diffs)))
	logger.Logger.Debug("Computed gas diff", "contracts", len(diffs), "duration", time.Since(start))

	if err := writeOutput(cmd, cfg, diffs); err != nil {
		recordSpanError(span, err)
		return err
	}

	if diffChartFlag != "" {
		if !render.HasChartData(diffs) {
			logger.Logger.Warn("No average gas change to chart, skipping", "path", diffChartFlag)
			return nil
		}
		if err := render.WriteChart(diffChartFlag, diffs); err != nil {
			recordSpanError(span, err)
			return err
		}
		logger.Logger.Info("Chart written", "path", diffChartFlag)
	}
	return nil
}

// loadDiffConfig layers the flags the user set on top of the file and env
// config, then validates the result once.
func loadDiffConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Read()
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("ignore") {
		cfg.IgnorePatterns = diffIgnoreFlag
	}
	if flags.Changed("match") {
		cfg.MatchPatterns = diffMatchFlag
	}
	if flags.Changed("sort-criteria") {
		cfg.SortCriteria = diffSortCriteriaFlag
	}
	if flags.Changed("sort-orders") {
		cfg.SortOrders = diffSortOrdersFlag
	}
	if flags.Changed("summary-quantile") {
		cfg.SummaryQuantile = diffQuantileFlag
	}
	if flags.Changed("header") {
		cfg.Header = diffHeaderFlag
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func loadReport(ctx context.Context, path string, cfg *config.Config) (*gasreport.GasReport, error) {
	_, span := telemetry.GetTracer().Start(ctx, "gasdiff_load_report")
	span.SetAttributes(attribute.String("report.path", path))
	defer span.End()

	report, err := gasreport.ParseFile(path, cfg.LoadOptions())
	if err != nil {
		recordSpanError(span, err)
		return nil, err
	}
	span.SetAttributes(attribute.Int("report.contracts", report.Len()))

	if report.Len() == 0 {
		logger.Logger.Warn("No gas report table found", "path", path)
	}
	for _, name := range report.Duplicates() {
		logger.Logger.Warn("Duplicate contract name, keeping the last table", "path", path, "contract", name)
	}
	logger.Logger.Debug("Loaded gas report", "path", path, "contracts", report.Len())
	return report, nil
}

func writeOutput(cmd *cobra.Command, cfg *config.Config, diffs []compare.DiffReport) error {
	var out io.Writer = cmd.OutOrStdout()
	if diffOutFlag != "" {
		f, err := os.Create(diffOutFlag)
		if err != nil {
			return errors.WrapRenderError("failed to create output file", err)
		}
		defer f.Close()
		out = f
	}

	var text string
	switch diffOutputFlag {
	case outputMarkdown:
		text = render.Markdown(render.MarkdownOptions{
			Header:          cfg.Header,
			Repository:      firstNonEmpty(diffRepoFlag, os.Getenv("GITHUB_REPOSITORY")),
			CommitHash:      firstNonEmpty(diffCommitFlag, os.Getenv("GITHUB_SHA")),
			RefCommitHash:   diffRefCommitFlag,
			SummaryQuantile: cfg.SummaryQuantile,
		}, diffs)
	default:
		text = render.Shell(diffs, shellStyle(out))
	}

	if _, err := io.WriteString(out, text); err != nil {
		return errors.WrapRenderError("failed to write report", err)
	}
	if diffOutFlag != "" {
		logger.Logger.Info("Report written", "path", diffOutFlag)
	}
	return nil
}

func shellStyle(out io.Writer) terminal.CellStyle {
	if diffNoColorFlag {
		return terminal.PlainStyle{}
	}
	f, ok := out.(*os.File)
	if !ok {
		return terminal.NewANSIStyleWith(terminal.ColorEnabled(nil))
	}
	return terminal.NewANSIStyleWith(terminal.ColorEnabled(f))
}

func recordSpanError(span oteltrace.Span, err error) {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
