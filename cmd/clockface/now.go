package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"clockface/internal/clock"
)

// nowCmd prints a single formatted wall-clock reading.
var nowCmd = &cobra.Command{
	Use:   "now",
	Short: "Print the current time once and exit",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		mode, err := cfg.Mode()
		if err != nil {
			return err
		}

		moment := clock.System().Now()
		f := clock.FormatTime(moment, mode)
		fmt.Fprintln(cmd.OutOrStdout(), formatLine(f, clock.FormatDate(moment)))
		return nil
	},
}
