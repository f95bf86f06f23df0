// Package cli implements the stagetimer command line.
package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/opencode-ai/stagetimer/internal/config"
	"github.com/opencode-ai/stagetimer/internal/logging"
)

// annotationSkipConfig marks commands that run without loading config.yaml.
const annotationSkipConfig = "stagetimer/skip-config"

var (
	nonInteractive bool
	noProgress     bool

	appConfig    *config.Config
	closeLogging func() error
)

// flagKeys maps command-line flags onto config keys.
var flagKeys = map[string]string{
	"duration":   "timer.duration",
	"warning":    "timer.warning",
	"danger":     "timer.danger",
	"bell":       "timer.bell",
	"color":      "appearance.color",
	"theme":      "appearance.theme",
	"fullscreen": "tui.fullscreen",
	"mouse":      "tui.mouse",
	"log-level":  "logging.level",
	"log-file":   "logging.file",
}

var rootCmd = &cobra.Command{
	Use:   "stagetimer",
	Short: "Full-screen presentation countdown",
	Long: `stagetimer counts down from 18:00 (by default) in large digits.

The display turns orange at 5:00 and red at 1:00. Press space or click the
clock to pause; while paused, resume, reset or pick a background color.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Annotations[annotationSkipConfig] == "true" {
			// The command must work even when the current config is broken.
			var err error
			closeLogging, err = logging.Init(logging.Config{Level: "info", Console: true})
			return err
		}

		cfg, err := loadConfig(cmd.Flags())
		if err != nil {
			return err
		}
		appConfig = cfg

		// The timer owns the terminal, so only subcommands log to stderr.
		closeLogging, err = logging.Init(logging.Config{
			Level:   cfg.Logging.Level,
			File:    cfg.Logging.File,
			Console: cmd != cmd.Root(),
		})
		return err
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if closeLogging == nil {
			return nil
		}
		return closeLogging()
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTimer(GetConfig())
	},
}

func init() {
	addConfigFlags(rootCmd.PersistentFlags())
	rootCmd.PersistentFlags().BoolVar(&nonInteractive, "non-interactive", false, "fail instead of opening the timer when no terminal is attached")
	rootCmd.PersistentFlags().BoolVar(&noProgress, "no-progress", false, "suppress progress output")
}

// addConfigFlags registers every flag that overrides a config key.
// Values are read back through viper, so the flags carry no Go variables.
func addConfigFlags(flags *pflag.FlagSet) {
	d := config.DefaultConfig()
	flags.String("config", "", "config file (default $XDG_CONFIG_HOME/stagetimer/config.yaml)")
	flags.Duration("duration", d.Timer.Duration, "countdown start, e.g. 18m or 90s")
	flags.Duration("warning", d.Timer.Warning, "remaining time at which the display turns orange")
	flags.Duration("danger", d.Timer.Danger, "remaining time at which the display turns red")
	flags.Bool("bell", d.Timer.Bell, "ring the terminal bell at 00:00")
	flags.String("color", d.Appearance.Color, "initial background swatch (see 'stagetimer palette')")
	flags.String("theme", d.Appearance.Theme, "accent theme: default or high-contrast")
	flags.Bool("fullscreen", d.TUI.Fullscreen, "start on the alternate screen")
	flags.Bool("mouse", d.TUI.Mouse, "enable mouse clicks")
	flags.String("log-level", d.Logging.Level, "log level: debug, info, warn, error")
	flags.String("log-file", d.Logging.File, "write JSON logs to this file")
}

// loadConfig resolves the effective config: flags, then STAGETIMER_* env
// (after loading an optional .env), then config.yaml, then defaults.
func loadConfig(flags *pflag.FlagSet) (*config.Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	configFile, _ := flags.GetString("config")
	v := config.NewViper(configFile)
	for name, key := range flagKeys {
		flag := flags.Lookup(name)
		if flag == nil {
			continue
		}
		if err := v.BindPFlag(key, flag); err != nil {
			return nil, fmt.Errorf("bind flag --%s: %w", name, err)
		}
	}

	cfg, err := config.Load(v)
	if err != nil {
		return nil, err
	}
	return cfg, nil
}

// GetConfig returns the loaded configuration, or the defaults before load.
func GetConfig() *config.Config {
	if appConfig == nil {
		return config.DefaultConfig()
	}
	return appConfig
}

// Execute runs the root command and exits non-zero on error.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		printError(os.Stderr, err)
		os.Exit(1)
	}
}
