// file: envx/cmd/envx/parse.go
package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/rskv-p/envx"
)

var parseType string

// parseCmd validates a variable against a type and prints the normalized value
var parseCmd = &cobra.Command{
	Use:   "parse <key>",
	Short: "Parse a variable as a typed value",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		v, err := parseAs(args[0], parseType)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), v)
		return nil
	},
}

// parseAs resolves a type name to the matching accessor.
func parseAs(key, as string) (any, error) {
	switch as {
	case "string":
		return envx.Required(key)
	case "int":
		return envx.Parsed[int64](key)
	case "uint":
		return envx.Parsed[uint64](key)
	case "float":
		return envx.Parsed[float64](key)
	case "bool":
		return envx.Parsed[bool](key)
	case "duration":
		return envx.Parsed[time.Duration](key)
	case "size":
		return envx.MemorySize(key)
	}
	return nil, fmt.Errorf("unknown type %q", as)
}

func init() {
	parseCmd.Flags().StringVar(&parseType, "as", "string", "Target type: string, int, uint, float, bool, duration or size")
	rootCmd.AddCommand(parseCmd)
}
