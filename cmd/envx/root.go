// file: envx/cmd/envx/root.go
package main

import (
	"os"

	"github.com/spf13/cobra"
)

// rootCmd is the entry point for the environment inspection CLI
var rootCmd = &cobra.Command{
	Use:          "envx",
	Short:        "Inspect and validate typed environment variables",
	SilenceUsage: true,
}

// Execute runs the CLI, exiting nonzero on failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
