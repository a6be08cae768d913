// file: envx/cmd/envx/list.go
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rskv-p/envx"
)

var listSep string

// listCmd prints each element of a separated list variable on its own line
var listCmd = &cobra.Command{
	Use:   "list <key>",
	Short: "Print the elements of a list variable",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, item := range envx.List(args[0], listSep) {
			fmt.Fprintln(cmd.OutOrStdout(), item)
		}
		return nil
	},
}

func init() {
	listCmd.Flags().StringVar(&listSep, "sep", envx.DefaultListSeparator, "List separator")
	rootCmd.AddCommand(listCmd)
}
