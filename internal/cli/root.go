// Package cli implements the command-line interface.
package cli

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/aidanlsb/funtime/internal/config"
	"github.com/aidanlsb/funtime/internal/logging"
	"github.com/aidanlsb/funtime/internal/ui"
)

var (
	// Global flags
	configPath   string
	tzFlag       string
	outputFormat string
	debugLog     bool

	// Resolved values
	resolvedConfigPath string
	cfg                *config.Config
	loc                *time.Location
	logger             = logging.Discard()
)

// Seams swapped in tests.
var (
	nowFunc           = time.Now
	stdout  io.Writer = os.Stdout
	stderr  io.Writer = os.Stderr
)

// errReported marks an error already written as a structured envelope.
var errReported = errors.New("error already reported")

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "ftm",
	Short: "funtime - expressive date and time arithmetic",
	Long: `funtime computes relative dates, day boundaries and calendar-aware
day differences, and formats or parses instants with strftime patterns.

Examples:
  ftm shift "20000 days earlier"
  ftm diff 2020-12-31 2023-01-01
  ftm bounds tomorrow
  ftm format now "%A %d %B %Y"`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := validateOutputFormat(); err != nil {
			return reportPreRunError(ErrInvalidInput, err, "")
		}

		resolvedConfigPath = config.ResolveConfigPath(configPath)

		// Config commands that must work with a broken or missing file.
		switch cmd.Name() {
		case "version", "help", "completion", "path", "init":
			cfg = &config.Config{}
			loc = time.Local
			logger = newLogger(cfg, cmd)
			return nil
		}

		loaded, err := loadGlobalConfig()
		if err != nil {
			return reportPreRunError(ErrConfigInvalid, err, "Fix the file or run 'ftm config path' to locate it")
		}
		cfg = loaded
		ui.ConfigureTheme(cfg.UI.Accent)
		logger = newLogger(cfg, cmd)

		zone := cfg.Timezone
		if strings.TrimSpace(tzFlag) != "" {
			zone = tzFlag
		}
		loc, err = config.LoadLocation(strings.TrimSpace(zone))
		if err != nil {
			return reportPreRunError(ErrInvalidTimezone, err, "Use an IANA zone name such as Europe/Berlin, or Local")
		}

		logging.Debug(logger, "resolved configuration",
			logging.FieldConfig, resolvedConfigPath,
			logging.FieldLocation, loc.String(),
			logging.FieldPattern, cfg.GetPattern())
		return nil
	},
}

// Execute runs the CLI.
func Execute() error {
	err := rootCmd.Execute()
	if err == nil {
		return nil
	}
	if !errors.Is(err, errReported) {
		logging.Error(logger, "command failed", err)
		fmt.Fprintln(stderr, ui.Error(err.Error()))
	}
	return err
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to config file")
	rootCmd.PersistentFlags().StringVar(&tzFlag, "tz", "", "Time zone for calendar fields (overrides timezone in config)")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output in JSON format (for agent/script use)")
	rootCmd.PersistentFlags().StringVarP(&outputFormat, "output", "o", "text", "Output format: text, json or yaml")
	rootCmd.PersistentFlags().BoolVar(&debugLog, "debug", false, "Log diagnostics to stderr")
}

func loadGlobalConfig() (*config.Config, error) {
	var (
		loaded *config.Config
		err    error
	)
	if strings.TrimSpace(configPath) != "" {
		if _, statErr := os.Stat(resolvedConfigPath); os.IsNotExist(statErr) {
			return &config.Config{}, nil
		}
		loaded, err = config.LoadFrom(resolvedConfigPath)
	} else {
		loaded, err = config.Load()
	}
	if err != nil {
		return nil, err
	}
	if loaded == nil {
		loaded = &config.Config{}
	}
	return loaded, nil
}

func newLogger(c *config.Config, cmd *cobra.Command) *slog.Logger {
	level := c.Log.Level
	if debugLog {
		level = "debug"
	}
	l := logging.NewLogger(logging.Config{Format: c.Log.Format, Level: level, Output: stderr})
	return slog.New(l.Handler().WithAttrs(logging.WithCommon(nil, cmd.Name(), currentVersionInfo().Version)))
}

func reportPreRunError(code string, err error, suggestion string) error {
	if isStructuredOutput() {
		outputError(code, err.Error(), nil, suggestion)
		return errReported
	}
	return err
}

// now returns the current instant in the resolved location.
func now() time.Time {
	return nowFunc().In(location())
}

func location() *time.Location {
	if loc == nil {
		return time.Local
	}
	return loc
}

func getConfig() *config.Config {
	if cfg == nil {
		return &config.Config{}
	}
	return cfg
}
