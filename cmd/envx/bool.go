// file: envx/cmd/envx/bool.go
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rskv-p/envx"
)

// boolCmd reports whether a variable holds a truthy token
var boolCmd = &cobra.Command{
	Use:   "bool <key>",
	Short: "Print true when a variable is set to true, 1, yes or on",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Fprintln(cmd.OutOrStdout(), envx.Bool(args[0]))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(boolCmd)
}
