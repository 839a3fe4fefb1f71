package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/aidanlsb/funtime/internal/config"
	"github.com/aidanlsb/funtime/internal/ui"
)

type configView struct {
	ConfigPath string `json:"config_path" yaml:"config_path"`
	Exists     bool   `json:"exists" yaml:"exists"`
	Pattern    string `json:"pattern" yaml:"pattern"`
	Timezone   string `json:"timezone" yaml:"timezone"`
	LogLevel   string `json:"log_level,omitempty" yaml:"log_level,omitempty"`
	LogFormat  string `json:"log_format,omitempty" yaml:"log_format,omitempty"`
	UIAccent   string `json:"ui_accent,omitempty" yaml:"ui_accent,omitempty"`
}

func configExists() bool {
	_, err := os.Stat(resolvedConfigPath)
	return err == nil
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage the funtime config file",
	Args:  cobra.NoArgs,
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the config file path",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if isStructuredOutput() {
			outputSuccess(map[string]interface{}{"config_path": resolvedConfigPath, "exists": configExists()})
			return nil
		}
		fmt.Fprintln(stdout, resolvedConfigPath)
		return nil
	},
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a commented default config file",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		created, err := config.CreateDefault(resolvedConfigPath)
		if err != nil {
			return handleError(ErrFileWriteError, err, "")
		}
		if isStructuredOutput() {
			outputSuccess(map[string]interface{}{"config_path": resolvedConfigPath, "created": created})
			return nil
		}
		if created {
			fmt.Fprintln(stdout, ui.Successf("Created %s", resolvedConfigPath))
			fmt.Fprintln(stdout, ui.Hint("Uncomment a setting or run 'ftm config set <key> <value>'"))
		} else {
			fmt.Fprintln(stdout, ui.Infof("Config already exists at %s", resolvedConfigPath))
		}
		return nil
	},
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the effective configuration",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		c := getConfig()
		view := configView{
			ConfigPath: resolvedConfigPath,
			Exists:     configExists(),
			Pattern:    c.GetPattern(),
			Timezone:   location().String(),
			LogLevel:   c.Log.Level,
			LogFormat:  c.Log.Format,
			UIAccent:   c.UI.Accent,
		}

		if isStructuredOutput() {
			outputSuccess(view)
			return nil
		}

		fmt.Fprint(stdout, ui.KeyValues([][2]string{
			{"config_path", view.ConfigPath},
			{"exists", fmt.Sprintf("%t", view.Exists)},
			{"pattern", view.Pattern},
			{"timezone", view.Timezone},
			{"log.level", view.LogLevel},
			{"log.format", view.LogFormat},
			{"ui.accent", view.UIAccent},
		}))
		return nil
	},
}

var configGetCmd = &cobra.Command{
	Use:   "get <key>",
	Short: "Print one config value",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		value, err := getConfig().Get(args[0])
		if err != nil {
			return handleError(ErrConfigKey, err, "")
		}
		if isStructuredOutput() {
			outputSuccess(map[string]string{"key": args[0], "value": value})
			return nil
		}
		fmt.Fprintln(stdout, value)
		return nil
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set one config value and save the file",
	Long: `Sets one config value, validates it and writes the file atomically.
Pass an empty value to clear a key.

Keys: log.format, log.level, pattern, timezone, ui.accent

Examples:
  ftm config set pattern "%d/%m/%Y"
  ftm config set timezone Europe/Berlin`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		c := getConfig()
		if err := c.Set(args[0], args[1]); err != nil {
			return handleError(ErrConfigInvalid, err, "")
		}
		if err := config.SaveTo(resolvedConfigPath, c); err != nil {
			return handleError(ErrFileWriteError, err, "")
		}
		if isStructuredOutput() {
			outputSuccess(map[string]string{"key": args[0], "value": args[1], "config_path": resolvedConfigPath})
			return nil
		}
		fmt.Fprintln(stdout, ui.Successf("Set %s in %s", args[0], resolvedConfigPath))
		return nil
	},
}

func init() {
	configCmd.AddCommand(configPathCmd)
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configGetCmd)
	configCmd.AddCommand(configSetCmd)
	rootCmd.AddCommand(configCmd)
}
