// Copyright 2025 Erst Users
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"fmt"
	"os"

	"github.com/Rubilmax/foundry-gas-diff/internal/cmd"
)

var Version = "dev"

func main() {
	// Set version in cmd package (printed by `gasdiff version` and telemetry)
	cmd.Version = Version

	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
