package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/aidanlsb/funtime/internal/dates"
	"github.com/aidanlsb/funtime/internal/logging"
	"github.com/aidanlsb/funtime/internal/ui"
)

// isoMillis is RFC 3339 with millisecond precision.
const isoMillis = "2006-01-02T15:04:05.000Z07:00"

// instantView is the structured rendering of an instant.
type instantView struct {
	ISO    string `json:"iso" yaml:"iso"`
	Millis int64  `json:"millis" yaml:"millis"`
	Pretty string `json:"pretty" yaml:"pretty"`
}

func viewOf(t time.Time) instantView {
	return instantView{
		ISO:    t.Format(isoMillis),
		Millis: dates.Millis(t),
		Pretty: dates.Pretty(t),
	}
}

// parseDateArg resolves a date argument against now in the resolved location.
func parseDateArg(arg string) (time.Time, error) {
	t, err := dates.ParseLoose(arg, now(), location())
	if err != nil {
		return time.Time{}, err
	}
	logging.Debug(logger, "parsed date argument", logging.FieldInput, arg, logging.FieldInstant, t.Format(isoMillis))
	return t, nil
}

func optionalDateArg(args []string) (time.Time, error) {
	var arg string
	if len(args) > 0 {
		arg = args[0]
	}
	return parseDateArg(arg)
}

// printInstant prints a single labelled instant, or its structured view.
func printInstant(label string, t time.Time) {
	if isStructuredOutput() {
		outputSuccess(viewOf(t))
		return
	}
	fmt.Fprintf(stdout, "%s %s\n", ui.Label(label), ui.Instant(dates.Pretty(t)))
}

func invalidDate(err error) error {
	return handleError(ErrInvalidDate, err, `Use YYYY-MM-DD, a datetime, today/yesterday/tomorrow or "<n> <unit> earlier|later"`)
}

var yesterdayCmd = &cobra.Command{
	Use:   "yesterday",
	Short: "Show the instant one day earlier than now",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		printInstant("yesterday", dates.Yesterday(now()))
		return nil
	},
}

var tomorrowCmd = &cobra.Command{
	Use:   "tomorrow",
	Short: "Show the instant one day later than now",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		printInstant("tomorrow", dates.Tomorrow(now()))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(yesterdayCmd)
	rootCmd.AddCommand(tomorrowCmd)
}
