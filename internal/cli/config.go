// Package cli provides config inspection and scaffolding commands.
package cli

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/opencode-ai/stagetimer/internal/config"
)

var (
	initForce bool

	// configDirFunc resolves where config init writes; tests override it.
	configDirFunc = config.DefaultDir
)

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configInitCmd)

	configInitCmd.Flags().BoolVar(&initForce, "force", false, "overwrite an existing config file")
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect or create the stagetimer config",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration",
	Long:  "Print the configuration after applying defaults, config.yaml, STAGETIMER_* environment and flags.",
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := GetConfig().YAML()
		if err != nil {
			return err
		}
		_, err = cmd.OutOrStdout().Write(data)
		return err
	},
}

var configInitCmd = &cobra.Command{
	Use:         "init",
	Short:       "Write a commented config.yaml",
	Long:        "Write a commented config.yaml with the default settings to $XDG_CONFIG_HOME/stagetimer, or to --config when set.",
	Annotations: map[string]string{annotationSkipConfig: "true"},
	RunE: func(cmd *cobra.Command, args []string) error {
		configFile, _ := cmd.Flags().GetString("config")
		result := createConfigFile(cmd.ErrOrStderr(), initConfigPath(configFile))
		if result.status == "failed" {
			return errors.New(result.message)
		}
		fmt.Fprintln(cmd.OutOrStdout(), result.message)
		return nil
	},
}

type initResult struct {
	name    string
	status  string // done, skipped, failed
	message string
}

// initConfigPath returns where config init writes: the --config value when
// set, else config.yaml in the default config dir.
func initConfigPath(configFile string) string {
	if configFile != "" {
		return configFile
	}
	return filepath.Join(configDirFunc(), "config.yaml")
}

func createConfigFile(progressOut io.Writer, path string) initResult {
	result := initResult{name: "Create config file"}
	dir := filepath.Dir(path)

	step := startProgress(progressOut, result.name)

	if _, err := os.Stat(path); err == nil && !initForce {
		step.Skip("exists")
		result.status = "skipped"
		result.message = fmt.Sprintf("%s already exists (use --force to overwrite)", path)
		return result
	} else if err != nil && !errors.Is(err, fs.ErrNotExist) {
		step.Fail(err)
		result.status = "failed"
		result.message = fmt.Sprintf("stat %s: %v", path, err)
		return result
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		step.Fail(err)
		result.status = "failed"
		result.message = fmt.Sprintf("create config dir: %v", err)
		return result
	}
	if err := os.WriteFile(path, []byte(config.Template), 0o644); err != nil {
		step.Fail(err)
		result.status = "failed"
		result.message = fmt.Sprintf("write config: %v", err)
		return result
	}

	step.Done()
	result.status = "done"
	result.message = fmt.Sprintf("Wrote %s", path)
	return result
}
