// file: envx/cmd/envx/check.go
package main

import (
	"fmt"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/rskv-p/envx"
	"github.com/rskv-p/envx/envlog"
)

var checkVerbose bool

// checkCmd verifies that every named variable is set
var checkCmd = &cobra.Command{
	Use:   "check <key>...",
	Short: "Verify that environment variables are set",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		log := zerolog.Nop()
		if checkVerbose {
			cfg := envlog.FromEnv("")
			cfg.Level = "debug"
			l, err := envlog.NewWithOutput(cfg, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			log = l
		}

		missing := 0
		for _, key := range args {
			v, err := envx.Required(key)
			if err != nil {
				missing++
				fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", markMiss, key)
				log.Debug().Str("key", key).Msg("missing")
				continue
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", markOK, key)
			log.Debug().Str("key", key).Int("bytes", len(v)).Msg("present")
		}
		if missing > 0 {
			return fmt.Errorf("%d of %d variables missing", missing, len(args))
		}
		return nil
	},
}

func init() {
	checkCmd.Flags().BoolVar(&checkVerbose, "verbose", false, "Log each probe")
	rootCmd.AddCommand(checkCmd)
}
