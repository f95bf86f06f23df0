// Package config loads stagetimer settings from flags, environment and config.yaml.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// EnvPrefix is prepended to every environment override, e.g. STAGETIMER_TIMER_DURATION.
const EnvPrefix = "STAGETIMER"

// Config validation errors.
var (
	ErrInvalidDuration  = errors.New("invalid countdown duration")
	ErrInvalidThreshold = errors.New("invalid threshold")
)

// Config is the effective configuration.
type Config struct {
	Timer      TimerConfig      `mapstructure:"timer"`
	Appearance AppearanceConfig `mapstructure:"appearance"`
	TUI        TUIConfig        `mapstructure:"tui"`
	Logging    LoggingConfig    `mapstructure:"logging"`
}

// TimerConfig holds the countdown constants.
type TimerConfig struct {
	// Duration is where the countdown starts and what reset restores.
	Duration time.Duration `mapstructure:"duration"`

	// Warning is the remaining time at or below which the display turns orange.
	Warning time.Duration `mapstructure:"warning"`

	// Danger is the remaining time at or below which the display turns red.
	Danger time.Duration `mapstructure:"danger"`

	// Bell rings the terminal bell once when the countdown reaches zero.
	Bell bool `mapstructure:"bell"`
}

// AppearanceConfig selects the initial look. Nothing chosen at runtime is written back.
type AppearanceConfig struct {
	Color string `mapstructure:"color"`
	Theme string `mapstructure:"theme"`
}

// TUIConfig controls terminal behavior.
type TUIConfig struct {
	Fullscreen bool `mapstructure:"fullscreen"`
	Mouse      bool `mapstructure:"mouse"`
}

// LoggingConfig mirrors logging.Config.
type LoggingConfig struct {
	Level string `mapstructure:"level"`
	File  string `mapstructure:"file"`
}

// DefaultConfig returns the presentation defaults: 18 minutes, orange at 5, red at 1.
func DefaultConfig() *Config {
	return &Config{
		Timer: TimerConfig{
			Duration: 18 * time.Minute,
			Warning:  5 * time.Minute,
			Danger:   1 * time.Minute,
		},
		Appearance: AppearanceConfig{
			Color: "midnight",
			Theme: "default",
		},
		TUI: TUIConfig{
			Fullscreen: true,
			Mouse:      true,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// SetDefaults registers DefaultConfig values on v.
func SetDefaults(v *viper.Viper) {
	d := DefaultConfig()
	v.SetDefault("timer.duration", d.Timer.Duration)
	v.SetDefault("timer.warning", d.Timer.Warning)
	v.SetDefault("timer.danger", d.Timer.Danger)
	v.SetDefault("timer.bell", d.Timer.Bell)
	v.SetDefault("appearance.color", d.Appearance.Color)
	v.SetDefault("appearance.theme", d.Appearance.Theme)
	v.SetDefault("tui.fullscreen", d.TUI.Fullscreen)
	v.SetDefault("tui.mouse", d.TUI.Mouse)
	v.SetDefault("logging.level", d.Logging.Level)
	v.SetDefault("logging.file", d.Logging.File)
}

// NewViper returns a viper instance with defaults, env binding and search paths.
// An explicit configFile overrides the search paths.
func NewViper(configFile string) *viper.Viper {
	v := viper.New()
	SetDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(DefaultDir())
		v.AddConfigPath(".")
	}
	return v
}

// Load reads the config file (if any) and decodes the effective configuration.
// A missing config.yaml in the search paths is not an error; a missing explicit file is.
func Load(v *viper.Viper) (*Config, error) {
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the timer constants.
func (c *Config) Validate() error {
	t := c.Timer
	if t.Duration < time.Second {
		return fmt.Errorf("%w: %s (must be at least 1s)", ErrInvalidDuration, t.Duration)
	}
	if t.Duration%time.Second != 0 {
		return fmt.Errorf("%w: %s (must be whole seconds)", ErrInvalidDuration, t.Duration)
	}
	if t.Warning < 0 || t.Warning%time.Second != 0 {
		return fmt.Errorf("%w: warning %s (must be whole, non-negative seconds)", ErrInvalidThreshold, t.Warning)
	}
	if t.Danger < 0 || t.Danger%time.Second != 0 {
		return fmt.Errorf("%w: danger %s (must be whole, non-negative seconds)", ErrInvalidThreshold, t.Danger)
	}
	return nil
}

// DefaultDir returns $XDG_CONFIG_HOME/stagetimer, falling back to ~/.config/stagetimer.
func DefaultDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "stagetimer")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".config", "stagetimer")
	}
	return filepath.Join(home, ".config", "stagetimer")
}

// fileView is the on-disk shape of Config with human-readable durations.
type fileView struct {
	Timer struct {
		Duration string `yaml:"duration"`
		Warning  string `yaml:"warning"`
		Danger   string `yaml:"danger"`
		Bell     bool   `yaml:"bell"`
	} `yaml:"timer"`
	Appearance struct {
		Color string `yaml:"color"`
		Theme string `yaml:"theme"`
	} `yaml:"appearance"`
	TUI struct {
		Fullscreen bool `yaml:"fullscreen"`
		Mouse      bool `yaml:"mouse"`
	} `yaml:"tui"`
	Logging struct {
		Level string `yaml:"level"`
		File  string `yaml:"file,omitempty"`
	} `yaml:"logging"`
}

// YAML renders the configuration in config.yaml form.
func (c *Config) YAML() ([]byte, error) {
	var view fileView
	view.Timer.Duration = c.Timer.Duration.String()
	view.Timer.Warning = c.Timer.Warning.String()
	view.Timer.Danger = c.Timer.Danger.String()
	view.Timer.Bell = c.Timer.Bell
	view.Appearance.Color = c.Appearance.Color
	view.Appearance.Theme = c.Appearance.Theme
	view.TUI.Fullscreen = c.TUI.Fullscreen
	view.TUI.Mouse = c.TUI.Mouse
	view.Logging.Level = c.Logging.Level
	view.Logging.File = c.Logging.File

	data, err := yaml.Marshal(&view)
	if err != nil {
		return nil, fmt.Errorf("encode config: %w", err)
	}
	return data, nil
}
