// Package cli provides the timer launch path.
package cli

import (
	"fmt"

	"github.com/opencode-ai/stagetimer/internal/config"
	"github.com/opencode-ai/stagetimer/internal/countdown"
	"github.com/opencode-ai/stagetimer/internal/events"
	"github.com/opencode-ai/stagetimer/internal/logging"
	"github.com/opencode-ai/stagetimer/internal/tui"
)

// launchTUI is swapped in tests.
var launchTUI = tui.Run

func runTimer(cfg *config.Config) error {
	if IsNonInteractive() {
		return &PreflightError{
			Message:  "stagetimer requires an interactive terminal",
			Hint:     "Run without --non-interactive and with a TTY attached",
			NextStep: "stagetimer config show",
		}
	}

	logger := logging.Component("events")
	recorder := events.NewRecorder(events.NewLogSink(logger), logger)
	cliLogger := logging.Component("cli")
	cliLogger.Info().
		Str("session", recorder.SessionID()).
		Dur("duration", cfg.Timer.Duration).
		Str("color", cfg.Appearance.Color).
		Msg("starting timer")

	if err := launchTUI(tuiConfig(cfg, recorder)); err != nil {
		return fmt.Errorf("run timer: %w", err)
	}
	return nil
}

func tuiConfig(cfg *config.Config, recorder *events.Recorder) tui.Config {
	return tui.Config{
		Timer: countdown.Config{
			Initial: cfg.Timer.Duration,
			Warning: cfg.Timer.Warning,
			Danger:  cfg.Timer.Danger,
		},
		Theme:      cfg.Appearance.Theme,
		Color:      cfg.Appearance.Color,
		Fullscreen: cfg.TUI.Fullscreen,
		Mouse:      cfg.TUI.Mouse,
		Bell:       cfg.Timer.Bell,
		Recorder:   recorder,
	}
}
