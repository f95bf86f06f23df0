package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/opencode-ai/stagetimer/internal/appearance"
)

func withConfigDir(t *testing.T, dir string, force bool) {
	t.Helper()
	originalFunc := configDirFunc
	configDirFunc = func() string {
		return dir
	}
	originalForce := initForce
	initForce = force
	t.Cleanup(func() {
		configDirFunc = originalFunc
		initForce = originalForce
	})
}

func TestCreateConfigFile(t *testing.T) {
	tempDir := filepath.Join(t.TempDir(), "stagetimer")
	withConfigDir(t, tempDir, false)

	var progress bytes.Buffer
	result := createConfigFile(&progress, initConfigPath(""))
	if result.status != "done" {
		t.Fatalf("expected status 'done', got %q: %s", result.status, result.message)
	}

	content, err := os.ReadFile(filepath.Join(tempDir, "config.yaml"))
	if err != nil {
		t.Fatalf("failed to read config file: %v", err)
	}
	if !strings.HasPrefix(string(content), "# stagetimer configuration file") {
		t.Error("config file doesn't contain expected header")
	}
	if !strings.Contains(string(content), "duration: 18m") {
		t.Error("config file doesn't contain the default duration")
	}
}

func TestCreateConfigFile_ExistingNoForce(t *testing.T) {
	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, "config.yaml")
	if err := os.WriteFile(configPath, []byte("existing"), 0o644); err != nil {
		t.Fatalf("failed to create existing config: %v", err)
	}
	withConfigDir(t, tempDir, false)

	result := createConfigFile(&bytes.Buffer{}, initConfigPath(""))
	if result.status != "skipped" {
		t.Errorf("expected status 'skipped', got %q: %s", result.status, result.message)
	}

	content, _ := os.ReadFile(configPath)
	if string(content) != "existing" {
		t.Error("existing config was modified")
	}
}

func TestCreateConfigFile_ExistingForce(t *testing.T) {
	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, "config.yaml")
	if err := os.WriteFile(configPath, []byte("existing"), 0o644); err != nil {
		t.Fatalf("failed to create existing config: %v", err)
	}
	withConfigDir(t, tempDir, true)

	result := createConfigFile(&bytes.Buffer{}, initConfigPath(""))
	if result.status != "done" {
		t.Fatalf("expected status 'done', got %q: %s", result.status, result.message)
	}

	content, _ := os.ReadFile(configPath)
	if string(content) == "existing" {
		t.Error("existing config was not overwritten")
	}
}

func TestProgressCanBeDisabled(t *testing.T) {
	t.Setenv("STAGETIMER_NO_PROGRESS", "1")
	withConfigDir(t, t.TempDir(), false)

	var progress bytes.Buffer
	createConfigFile(&progress, initConfigPath(""))
	if progress.Len() != 0 {
		t.Errorf("expected no progress output, got %q", progress.String())
	}
}

func TestWritePalette(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	var out bytes.Buffer
	if err := writePalette(&out, appearance.Palette, "night"); err != nil {
		t.Fatalf("writePalette: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	if len(lines) != len(appearance.Palette)+1 {
		t.Fatalf("expected header plus %d rows, got %d:\n%s", len(appearance.Palette), len(lines), out.String())
	}
	if !strings.HasPrefix(lines[0], "KEY") {
		t.Errorf("unexpected header: %q", lines[0])
	}

	for _, tc := range []struct {
		row  int
		want []string
	}{
		{1, []string{"midnight", "#000000", "dark", "logo-dark.png", "-"}},
		{2, []string{"night", "yes"}},
		{7, []string{"paper", "#FFFFFF", "light", "logo.png"}},
	} {
		for _, want := range tc.want {
			if !strings.Contains(lines[tc.row], want) {
				t.Errorf("row %d missing %q: %q", tc.row, want, lines[tc.row])
			}
		}
	}
}

func TestInitConfigPath(t *testing.T) {
	withConfigDir(t, "/etc/stagetimer-test", false)

	if got := initConfigPath(""); got != filepath.Join("/etc/stagetimer-test", "config.yaml") {
		t.Errorf("unexpected default path: %s", got)
	}
	if got := initConfigPath("/tmp/custom.yaml"); got != "/tmp/custom.yaml" {
		t.Errorf("--config should win, got %s", got)
	}
}

func TestConfigInitRepairsInvalidConfig(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	chdir(t, t.TempDir())
	t.Setenv("STAGETIMER_NO_PROGRESS", "1")

	path := filepath.Join(t.TempDir(), "broken.yaml")
	if err := os.WriteFile(path, []byte("timer:\n  duration: 0s\n"), 0o644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	originalForce := initForce
	t.Cleanup(func() {
		initForce = originalForce
		rootCmd.SetArgs(nil)
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		_ = rootCmd.PersistentFlags().Set("config", "")
	})

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs([]string{"config", "init", "--force", "--config", path})
	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("config init failed on an invalid config: %v", err)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read config: %v", err)
	}
	if !strings.HasPrefix(string(content), "# stagetimer configuration file") {
		t.Errorf("config at --config path was not replaced:\n%s", content)
	}
	if !strings.Contains(out.String(), path) {
		t.Errorf("expected written path in output, got %q", out.String())
	}
}
