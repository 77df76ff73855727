// Package main provides the clockface CLI entry point.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"clockface/internal/clock"
	"clockface/internal/config"
)

var (
	// Global flags
	cfgPath    string
	formatFlag string
	themeFlag  string
	verbose    bool

	logger *zap.Logger
)

// rootCmd represents the base command. Run without arguments it starts the
// interactive clock.
var rootCmd = &cobra.Command{
	Use:   "clockface",
	Short: "clockface - a wall clock for your terminal",
	Long: `clockface keeps a continuously refreshing wall-clock reading and renders
it in 12-hour or 24-hour form, with a long-form date line.

Run without arguments to start the interactive clock. The account page
shows the hosted-platform gate: usage and subscription snapshots, a demo
model invocation and a synced display preference.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// The interactive clock owns the terminal; route logs to a file
		// there instead of stderr.
		interactive := cmd.Use == "clockface" && cmd.CalledAs() == "clockface"

		var err error
		logger, err = buildLogger(interactive)
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runInteractive()
	},
}

func buildLogger(interactive bool) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	if verbose {
		cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	if interactive {
		if !verbose {
			return zap.NewNop(), nil
		}
		cacheDir, err := os.UserCacheDir()
		if err != nil {
			return nil, err
		}
		logDir := filepath.Join(cacheDir, "clockface")
		if err := os.MkdirAll(logDir, 0o755); err != nil {
			return nil, err
		}
		cfg.OutputPaths = []string{filepath.Join(logDir, "clockface.log")}
		cfg.ErrorOutputPaths = cfg.OutputPaths
	}
	return cfg.Build()
}

// defaultConfigPath is the per-user config file location.
func defaultConfigPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "clockface.yaml"
	}
	return filepath.Join(dir, "clockface", "clockface.yaml")
}

// loadConfig loads the config file and folds command-line flags over it.
// Flags beat both the file and the environment.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return cfg, err
	}
	if formatFlag != "" {
		cfg.Format = formatFlag
	}
	if themeFlag != "" {
		cfg.Theme = themeFlag
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// formatLine renders one stdout line for the non-interactive commands,
// e.g. "07:05:09 PM  Monday, January 15, 2024".
func formatLine(f clock.Formatted, date string) string {
	line := f.Hours + ":" + f.Minutes + ":" + f.Seconds
	if f.Period != "" {
		line += " " + f.Period
	}
	return line + "  " + date
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", defaultConfigPath(), "Path to the config file")
	rootCmd.PersistentFlags().StringVar(&formatFlag, "format", "", "Time format: 12h or 24h (overrides config)")
	rootCmd.PersistentFlags().StringVar(&themeFlag, "theme", "", "Theme: light, dark or auto (overrides config)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	rootCmd.AddCommand(nowCmd)
	rootCmd.AddCommand(watchCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
