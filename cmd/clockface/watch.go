package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"clockface/internal/clock"
)

// watchCmd streams one formatted reading per tick interval to stdout until
// interrupted. Useful for piping and for terminals without alt-screen
// support.
var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Stream the time to stdout until interrupted",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		mode, err := cfg.Mode()
		if err != nil {
			return err
		}
		interval, err := cfg.Interval()
		if err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		out := cmd.OutOrStdout()
		unit := clock.NewUnit(clock.System(), interval, func(moment time.Time) {
			f := clock.FormatTime(moment, mode)
			fmt.Fprintln(out, formatLine(f, clock.FormatDate(moment)))
		})

		logger.Info("watch started",
			zap.String("format", mode.String()),
			zap.Duration("interval", interval),
		)

		unit.Start(ctx)
		<-ctx.Done()
		unit.Stop()

		logger.Info("watch stopped")
		return nil
	},
}
