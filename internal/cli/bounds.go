package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/aidanlsb/funtime/internal/dates"
	"github.com/aidanlsb/funtime/internal/ui"
)

type boundsResult struct {
	Start instantView `json:"start" yaml:"start"`
	End   instantView `json:"end" yaml:"end"`
}

var boundsCmd = &cobra.Command{
	Use:   "bounds [date]",
	Short: "Show where a calendar day starts and ends",
	Long: `Shows 00:00:00.000 and 23:59:59.999 of the date's calendar day in the
configured time zone.

Examples:
  ftm bounds
  ftm bounds tomorrow
  ftm bounds 2024-02-29 --tz Asia/Tokyo`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		t, err := optionalDateArg(args)
		if err != nil {
			return invalidDate(err)
		}

		start, end := dates.StartOfDay(t), dates.EndOfDay(t)
		if isStructuredOutput() {
			outputSuccess(boundsResult{Start: viewOf(start), End: viewOf(end)})
			return nil
		}

		fmt.Fprint(stdout, ui.KeyValues([][2]string{
			{"starts", dates.Pretty(start)},
			{"ends", dates.Pretty(end)},
		}))
		return nil
	},
}

var fieldsCmd = &cobra.Command{
	Use:   "fields [date]",
	Short: "Split a date into its calendar fields",
	Long: `Shows year, month, day, hour, minute, second and millisecond of a date.
month_of_year is 0-based: January is 0 and December is 11.

Examples:
  ftm fields
  ftm fields 2024-03-05T07:08:09.010`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		t, err := optionalDateArg(args)
		if err != nil {
			return invalidDate(err)
		}

		f := dates.Decompose(t)
		if isStructuredOutput() {
			outputSuccess(f)
			return nil
		}

		fmt.Fprint(stdout, ui.KeyValues([][2]string{
			{"year", strconv.Itoa(f.Year)},
			{"month_of_year", strconv.Itoa(f.MonthOfYear)},
			{"day_of_month", strconv.Itoa(f.DayOfMonth)},
			{"day_of_year", strconv.Itoa(f.DayOfYear)},
			{"hour", strconv.Itoa(f.Hour)},
			{"minute", strconv.Itoa(f.Minute)},
			{"second", strconv.Itoa(f.Second)},
			{"millisecond", strconv.Itoa(f.Millisecond)},
		}))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(boundsCmd)
	rootCmd.AddCommand(fieldsCmd)
}
