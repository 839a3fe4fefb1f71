package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aidanlsb/funtime/internal/dates"
	"github.com/aidanlsb/funtime/internal/logging"
)

type formatResult struct {
	Instant instantView `json:"instant" yaml:"instant"`
	Pattern string      `json:"pattern" yaml:"pattern"`
	Text    string      `json:"text" yaml:"text"`
}

var formatCmd = &cobra.Command{
	Use:   "format <date> [pattern]",
	Short: "Render a date with a strftime pattern",
	Long: `Renders a date with a strftime pattern. Without a pattern the configured
default is used (pattern in config.toml, else "%Y-%m-%d %H:%M:%S").

Examples:
  ftm format now
  ftm format 2024-07-09 "%A %d %B %Y"
  ftm format yesterday "%Y-%m-%dT%H:%M:%S%z"`,
	Args: cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		t, err := parseDateArg(args[0])
		if err != nil {
			return invalidDate(err)
		}
		pattern := patternArg(args, 1)
		text := dates.Format(t, pattern)

		if isStructuredOutput() {
			var warnings []Warning
			if back, err := dates.Parse(text, pattern, location()); err != nil || !back.Equal(t) {
				logging.Warn(logger, "pattern loses precision", logging.FieldPattern, pattern, logging.FieldInstant, t.Format(isoMillis))
				warnings = append(warnings, Warning{
					Code:    WarnPrecisionLoss,
					Message: fmt.Sprintf("pattern %q does not parse back to the same instant", pattern),
				})
			}
			outputSuccessWithWarnings(formatResult{Instant: viewOf(t), Pattern: pattern, Text: text}, warnings)
			return nil
		}
		fmt.Fprintln(stdout, text)
		return nil
	},
}

var parseCmd = &cobra.Command{
	Use:   "parse <text> [pattern]",
	Short: "Read text with a strftime pattern",
	Long: `Reads text with a strftime pattern. Fields the pattern does not contain
are zero, so parsing loses whatever precision the pattern drops. Text without
a zone offset is read in the configured time zone.

Examples:
  ftm parse "2024-07-09 13:45:27"
  ftm parse 09/07/2024 "%d/%m/%Y" --json`,
	Args: cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		pattern := patternArg(args, 1)
		t, err := dates.Parse(args[0], pattern, location())
		if err != nil {
			logging.Debug(logger, "parse failed", logging.FieldInput, args[0], logging.FieldPattern, pattern, logging.FieldError, err)
			var perr *dates.ParseError
			if errors.As(err, &perr) {
				return handleErrorWithDetails(ErrParseFailed, err, "Check that the text matches the pattern exactly",
					map[string]string{"text": perr.Text, "pattern": perr.Pattern})
			}
			return handleError(ErrParseFailed, err, "")
		}

		if isStructuredOutput() {
			outputSuccess(viewOf(t))
			return nil
		}
		fmt.Fprintln(stdout, dates.Pretty(t))
		return nil
	},
}

func patternArg(args []string, i int) string {
	if len(args) > i && args[i] != "" {
		return args[i]
	}
	return getConfig().GetPattern()
}

func init() {
	rootCmd.AddCommand(formatCmd)
	rootCmd.AddCommand(parseCmd)
}
