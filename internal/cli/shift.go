package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/aidanlsb/funtime/internal/dates"
	"github.com/aidanlsb/funtime/internal/logging"
	"github.com/aidanlsb/funtime/internal/ui"
)

var (
	_ pflag.Value = (*dates.Unit)(nil)
	_ pflag.Value = (*dates.Direction)(nil)
)

var (
	shiftUnit      = dates.Day
	shiftDirection = dates.Later
	shiftFrom      string
)

type shiftResult struct {
	From   instantView `json:"from" yaml:"from"`
	Offset string      `json:"offset" yaml:"offset"`
	Result instantView `json:"result" yaml:"result"`
}

var shiftCmd = &cobra.Command{
	Use:   "shift <n> [unit] [earlier|later]",
	Short: "Move an instant by a number of days, hours, minutes or seconds",
	Long: `Moves an instant by a fixed number of milliseconds. A day is always
86,400,000ms, so shifting across a DST change keeps the elapsed time exact.

The offset can be written as a phrase or as a number with flags. A negative
magnitude flips the direction; put it after "--" so it is not read as a flag.

Examples:
  ftm shift "20000 days earlier"
  ftm shift 3 hours later --from 2024-07-09
  ftm shift 90 --unit minutes --direction earlier
  ftm shift --unit day -- -3        # 3 days earlier`,
	Args: cobra.RangeArgs(1, 3),
	RunE: func(cmd *cobra.Command, args []string) error {
		offset, err := offsetFromArgs(args)
		if err != nil {
			return handleError(ErrInvalidOffset, err, `Write offsets as "<n> <day|hour|minute|second> <earlier|later>"`)
		}

		from, err := parseDateArg(shiftFrom)
		if err != nil {
			return invalidDate(err)
		}

		result := offset.From(from)
		logging.Debug(logger, "applied offset", "offset", offset.String(), logging.FieldInstant, result.Format(isoMillis))

		if isStructuredOutput() {
			outputSuccess(shiftResult{
				From:   viewOf(from),
				Offset: offset.String(),
				Result: viewOf(result),
			})
			return nil
		}

		fmt.Fprintf(stdout, "%s %s\n", ui.Label(offset.String()), ui.Instant(dates.Pretty(result)))
		return nil
	},
}

// offsetFromArgs accepts a quoted phrase, three words, or a bare number that
// takes its unit and direction from flags.
func offsetFromArgs(args []string) (dates.Offset, error) {
	if len(args) == 1 {
		if n, err := strconv.ParseInt(strings.TrimSpace(args[0]), 10, 64); err == nil {
			return dates.Offset{Magnitude: n, Unit: shiftUnit, Direction: shiftDirection}, nil
		}
	}
	if len(args) == 2 {
		return dates.Offset{}, fmt.Errorf("%w: %q (missing direction)", dates.ErrInvalidOffset, strings.Join(args, " "))
	}
	return dates.ParseOffset(strings.Join(args, " "))
}

func init() {
	shiftCmd.Flags().VarP(&shiftUnit, "unit", "u", "Unit for a bare number: day, hour, minute or second")
	shiftCmd.Flags().VarP(&shiftDirection, "direction", "d", "Direction for a bare number: earlier or later")
	shiftCmd.Flags().StringVar(&shiftFrom, "from", "", "Base instant (default: now)")
	rootCmd.AddCommand(shiftCmd)
}
