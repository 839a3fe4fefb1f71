package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/aidanlsb/funtime/internal/dates"
	"github.com/aidanlsb/funtime/internal/ui"
)

type dateSummary struct {
	Date          string       `json:"date" yaml:"date"`
	Weekday       string       `json:"weekday" yaml:"weekday"`
	Fields        dates.Fields `json:"fields" yaml:"fields"`
	DaysInYear    int          `json:"days_in_year" yaml:"days_in_year"`
	DaysFromToday int          `json:"days_from_today" yaml:"days_from_today"`
	Relative      string       `json:"relative" yaml:"relative"`
	Start         instantView  `json:"start" yaml:"start"`
	End           instantView  `json:"end" yaml:"end"`
}

var dateCmd = &cobra.Command{
	Use:   "date [date]",
	Short: "Show everything about a date",
	Long: `Shows a summary of a calendar date: weekday, position in the year,
distance from today and the bounds of the day.

Examples:
  ftm date              # Today
  ftm date yesterday
  ftm date 2024-02-29`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		t, err := optionalDateArg(args)
		if err != nil {
			return invalidDate(err)
		}

		summary := summarizeDate(t, now())
		if isStructuredOutput() {
			outputSuccess(summary)
			return nil
		}

		md := dateMarkdown(summary)
		display := ui.DisplayContextFor(stdout)
		if !display.IsTTY {
			fmt.Fprint(stdout, md)
			return nil
		}
		rendered, err := ui.RenderMarkdown(md, display.AvailableWidth(ui.MarkdownRenderMargin))
		if err != nil {
			fmt.Fprint(stdout, md)
			return nil
		}
		fmt.Fprint(stdout, rendered)
		return nil
	},
}

func summarizeDate(t, today time.Time) dateSummary {
	start := dates.StartOfDay(t)
	return dateSummary{
		Date:          t.Format(dates.DateLayout),
		Weekday:       t.Weekday().String(),
		Fields:        dates.Decompose(t),
		DaysInYear:    dates.DaysInYear(t.Year()),
		DaysFromToday: dates.DayDifference(t, today),
		Relative:      relativeDay(start, dates.StartOfDay(today)),
		Start:         viewOf(start),
		End:           viewOf(dates.EndOfDay(t)),
	}
}

// relativeDay names day relative to today by calendar date, so a 23 or 25
// hour DST day still counts as one day.
func relativeDay(day, today time.Time) string {
	switch n := dates.DayDifference(day, today); {
	case n == 0:
		return "today"
	case n == 1 && day.Before(today):
		return "yesterday"
	case n == 1:
		return "tomorrow"
	default:
		return dates.Humanize(day, today)
	}
}

func dateMarkdown(s dateSummary) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s (%s)\n\n", s.Date, s.Weekday)
	fmt.Fprintf(&b, "- **Relative:** %s\n", s.Relative)
	fmt.Fprintf(&b, "- **Days from today:** %s\n", dates.HumanizeDays(s.DaysFromToday))
	fmt.Fprintf(&b, "- **Day of year:** %d of %d\n", s.Fields.DayOfYear, s.DaysInYear)
	fmt.Fprintf(&b, "- **Starts:** `%s`\n", s.Start.Pretty)
	fmt.Fprintf(&b, "- **Ends:** `%s`\n", s.End.Pretty)
	return b.String()
}

func init() {
	rootCmd.AddCommand(dateCmd)
}
