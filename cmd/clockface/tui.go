package main

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"clockface/cmd/clockface/ui"
	"clockface/internal/clock"
	"clockface/internal/config"
	"clockface/internal/platform"
)

// runInteractive starts the bubbletea clock. Program exit is the unit's
// teardown: bubbletea stops delivering tick commands once the loop ends, so
// no refresh outlives the UI.
func runInteractive() error {
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

	source := clock.System()
	client := platform.NewMemory(cfg.Account.User, source, logger.Named("platform"))
	styles := ui.NewStyles(ui.ThemeByName(cfg.Theme))

	app := ui.NewApp(source, interval, mode, client, cfg.Account.User, styles)
	program := tea.NewProgram(app, tea.WithAltScreen())

	// Live-reload the config file into the running UI.
	watcher, err := config.NewWatcher(cfgPath, logger.Named("config"), func(next config.Config) {
		program.Send(ui.ConfigReloadMsg{Cfg: next})
	})
	if err != nil {
		return fmt.Errorf("config watcher: %w", err)
	}
	if err := watcher.Start(context.Background()); err != nil {
		// The config directory may not exist yet; run without live reload.
		logger.Warn("config watch unavailable", zap.Error(err))
	} else {
		defer watcher.Stop()
	}

	logger.Info("clockface started",
		zap.String("format", mode.String()),
		zap.String("theme", cfg.Theme),
	)

	if _, err := program.Run(); err != nil {
		return fmt.Errorf("ui error: %w", err)
	}
	return nil
}
