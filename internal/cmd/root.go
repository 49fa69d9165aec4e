// Copyright 2025 Erst Users
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "gasdiff",
	Short: "Compare two Foundry gas reports",
	Long: `gasdiff compares the gas reports printed by "forge test --gas-report" for a
baseline and a candidate revision, and reports how deployment and method costs
changed.

Key features:
  - Parses both box-drawing and Markdown gas report tables
  - Filters contracts with glob patterns on their source path
  - Ranks changes by percentage and summarizes the most significant ones
  - Renders a colored terminal table, a Markdown comment or a bar chart

Examples:
  gasdiff diff main.txt feature.txt                     Print the diff
  gasdiff diff main.txt feature.txt -o markdown         Markdown for a PR comment
  gasdiff diff main.txt feature.txt --ignore 'test/**/*'
  gasdiff diff main.txt feature.txt --chart diff.png

Get started with 'gasdiff diff --help'.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.AddGroup(
		&cobra.Group{ID: "core", Title: "Core Commands:"},
		&cobra.Group{ID: "utility", Title: "Utility Commands:"},
	)
}
