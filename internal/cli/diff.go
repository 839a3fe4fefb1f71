package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aidanlsb/funtime/internal/dates"
	"github.com/aidanlsb/funtime/internal/logging"
	"github.com/aidanlsb/funtime/internal/ui"
)

type diffResult struct {
	From     instantView `json:"from" yaml:"from"`
	To       instantView `json:"to" yaml:"to"`
	Days     int         `json:"days" yaml:"days"`
	Elapsed  string      `json:"elapsed" yaml:"elapsed"`
	Relative string      `json:"relative" yaml:"relative"`
}

var diffCmd = &cobra.Command{
	Use:   "diff <date1> [date2]",
	Short: "Count the calendar days between two dates",
	Long: `Counts calendar-date boundaries between two instants. The result does
not depend on argument order, and 23:59 on one day is one day away from
00:01 on the next. The second date defaults to now.

Examples:
  ftm diff 2024-02-28 2024-03-01      # 2 (leap year)
  ftm diff 2020-12-31 2023-01-01      # 731
  ftm diff "1 day earlier"`,
	Args: cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := parseDateArg(args[0])
		if err != nil {
			return invalidDate(err)
		}
		var second string
		if len(args) > 1 {
			second = args[1]
		}
		b, err := parseDateArg(second)
		if err != nil {
			return invalidDate(err)
		}

		days := dates.DayDifference(a, b)
		logging.Debug(logger, "computed day difference", logging.FieldDays, days)

		result := diffResult{
			From:     viewOf(a),
			To:       viewOf(b),
			Days:     days,
			Elapsed:  dates.FormatDuration(dates.Between(b, a)),
			Relative: dates.Humanize(a, b),
		}

		if isStructuredOutput() {
			outputSuccess(result)
			return nil
		}

		fmt.Fprintln(stdout, ui.Header(dates.HumanizeDays(days)))
		fmt.Fprint(stdout, ui.KeyValues([][2]string{
			{"from", dates.Pretty(a)},
			{"to", dates.Pretty(b)},
			{"elapsed", result.Elapsed},
			{"relative", result.Relative},
		}))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(diffCmd)
}
