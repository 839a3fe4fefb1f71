package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aidanlsb/funtime/internal/dates"
	"github.com/aidanlsb/funtime/internal/ui"
)

type demoLine struct {
	Expression string      `json:"expression" yaml:"expression"`
	Value      instantView `json:"value" yaml:"value"`
}

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Print a few example computations",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		current := now()
		lines := []demoLine{
			{Expression: "20000 days earlier from now", Value: viewOf(dates.ApplyOffset(current, 20000, dates.Day, dates.Earlier))},
			{Expression: "now", Value: viewOf(current)},
			{Expression: "today starts at", Value: viewOf(dates.StartOfDay(current))},
			{Expression: "today ends at", Value: viewOf(dates.EndOfDay(current))},
			{Expression: "first day of the year", Value: viewOf(dates.YearFirstDay(current))},
		}

		if isStructuredOutput() {
			outputSuccess(lines)
			return nil
		}

		rows := make([][2]string, 0, len(lines))
		for _, l := range lines {
			rows = append(rows, [2]string{l.Expression, ui.Instant(l.Value.Pretty)})
		}
		fmt.Fprint(stdout, ui.KeyValues(rows))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(demoCmd)
}
