package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestDefaultConfigIsValid(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())
	require.Equal(t, 18*time.Minute, cfg.Timer.Duration)
	require.Equal(t, 5*time.Minute, cfg.Timer.Warning)
	require.Equal(t, time.Minute, cfg.Timer.Danger)
}

func TestLoadWithoutConfigFileUsesDefaults(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	chdir(t, t.TempDir())

	cfg, err := Load(NewViper(""))
	require.NoError(t, err)
	require.Equal(t, DefaultConfig(), cfg)
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := "timer:\n  duration: 10m\n  warning: 2m\n  danger: 30s\n  bell: true\nappearance:\n  color: paper\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(NewViper(path))
	require.NoError(t, err)
	require.Equal(t, 10*time.Minute, cfg.Timer.Duration)
	require.Equal(t, 2*time.Minute, cfg.Timer.Warning)
	require.Equal(t, 30*time.Second, cfg.Timer.Danger)
	require.True(t, cfg.Timer.Bell)
	require.Equal(t, "paper", cfg.Appearance.Color)
	require.Equal(t, "default", cfg.Appearance.Theme)
}

func TestLoadExplicitMissingFileFails(t *testing.T) {
	_, err := Load(NewViper(filepath.Join(t.TempDir(), "nope.yaml")))
	require.Error(t, err)
}

func TestEnvironmentOverridesDefaults(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	chdir(t, t.TempDir())
	t.Setenv("STAGETIMER_TIMER_DURATION", "45m")
	t.Setenv("STAGETIMER_TUI_MOUSE", "false")

	cfg, err := Load(NewViper(""))
	require.NoError(t, err)
	require.Equal(t, 45*time.Minute, cfg.Timer.Duration)
	require.False(t, cfg.TUI.Mouse)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr error
	}{
		{"zero duration", func(c *Config) { c.Timer.Duration = 0 }, ErrInvalidDuration},
		{"fractional duration", func(c *Config) { c.Timer.Duration = 1500 * time.Millisecond }, ErrInvalidDuration},
		{"negative warning", func(c *Config) { c.Timer.Warning = -time.Second }, ErrInvalidThreshold},
		{"fractional danger", func(c *Config) { c.Timer.Danger = 10 * time.Millisecond }, ErrInvalidThreshold},
		{"zero thresholds", func(c *Config) { c.Timer.Warning = 0; c.Timer.Danger = 0 }, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestYAML(t *testing.T) {
	data, err := DefaultConfig().YAML()
	require.NoError(t, err)

	out := string(data)
	for _, want := range []string{"timer:", "duration: 18m0s", "warning: 5m0s", "danger: 1m0s", "color: midnight", "fullscreen: true"} {
		require.True(t, strings.Contains(out, want), "missing %q in:\n%s", want, out)
	}
	require.False(t, strings.Contains(out, "file:"), "empty log file should be omitted")
}

func TestTemplateLoads(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(Template), 0o644))

	cfg, err := Load(NewViper(path))
	require.NoError(t, err)
	require.Equal(t, DefaultConfig(), cfg)
}

func TestDefaultDir(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/custom/config")
	require.Equal(t, "/custom/config/stagetimer", DefaultDir())

	t.Setenv("XDG_CONFIG_HOME", "")
	home, _ := os.UserHomeDir()
	require.Equal(t, filepath.Join(home, ".config", "stagetimer"), DefaultDir())
}
