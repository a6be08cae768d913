// file: envx/cmd/envx/get.go
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rskv-p/envx"
)

var (
	getDefault  string
	getRequired bool
)

// getCmd prints the value of a variable
var getCmd = &cobra.Command{
	Use:   "get <key>",
	Short: "Print the value of an environment variable",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		key := args[0]
		if getRequired {
			v, err := envx.Required(key)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), v)
			return nil
		}
		fmt.Fprintln(cmd.OutOrStdout(), envx.GetOr(key, getDefault))
		return nil
	},
}

func init() {
	getCmd.Flags().StringVar(&getDefault, "default", "", "Value to print when the variable is unset")
	getCmd.Flags().BoolVar(&getRequired, "required", false, "Fail when the variable is unset")
	rootCmd.AddCommand(getCmd)
}
