// file: envx/cmd/envx/expand.go
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rskv-p/envx"
)

// expandCmd substitutes variable references in a string
var expandCmd = &cobra.Command{
	Use:   "expand <string>",
	Short: "Substitute ${VAR} references with environment values",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Fprintln(cmd.OutOrStdout(), envx.Expand(args[0]))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(expandCmd)
}
