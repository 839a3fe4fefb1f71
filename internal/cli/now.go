package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aidanlsb/funtime/internal/dates"
	"github.com/aidanlsb/funtime/internal/ui"
)

var nowPattern string

var nowCmd = &cobra.Command{
	Use:   "now",
	Short: "Show the current instant",
	Long: `Shows the current instant in the configured time zone.

Examples:
  ftm now
  ftm now --pattern "%H:%M"
  ftm now --tz UTC --json`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		t := now()

		if isStructuredOutput() {
			outputSuccess(viewOf(t))
			return nil
		}

		if nowPattern != "" {
			fmt.Fprintln(stdout, dates.Format(t, nowPattern))
			return nil
		}
		fmt.Fprintf(stdout, "%s %s\n", ui.Label("now"), ui.Instant(dates.Pretty(t)))
		return nil
	},
}

func init() {
	nowCmd.Flags().StringVarP(&nowPattern, "pattern", "p", "", "strftime pattern (default: pretty)")
	rootCmd.AddCommand(nowCmd)
}
