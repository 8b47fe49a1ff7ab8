package root

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"shadowquest/internal/engine"
	"shadowquest/internal/ui"
)

func newHistoryCmd() *cobra.Command {
	var days int

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show recent daily EXP gained and lost",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			st, err := svc.State(ctx)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.Heading(ui.IconChart, "EXP Analytics"))

			ledger := engine.RecentLedger(st, days)
			if len(ledger) == 0 {
				fmt.Fprintln(out, ui.Muted.Render("Insufficient data. Complete quests to generate analytics."))
				return nil
			}

			maxAbs := 1
			for _, d := range ledger {
				maxAbs = max(maxAbs, d.Net, -d.Net)
			}
			for _, d := range ledger {
				width := d.Net * 20 / maxAbs
				bar := ui.Good.Render(strings.Repeat("█", max(0, width)))
				if d.Net < 0 {
					bar = ui.Bad.Render(strings.Repeat("█", -width))
				}
				fmt.Fprintf(out, "%s %s %s %s\n",
					ui.Muted.Render(shortDate(d.Date)),
					fmt.Sprintf("%+5d", d.Net),
					bar,
					ui.Muted.Render(fmt.Sprintf("(+%d / -%d)", d.Gained, d.Lost)))
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&days, "days", "n", 7, fmt.Sprintf("Number of ledger days to show (at most %d are kept)", engine.HistoryWindow))

	return cmd
}

// shortDate drops the year from a YYYY-MM-DD key.
func shortDate(day string) string {
	if len(day) == len(engine.DayKeyLayout) {
		return day[5:]
	}
	return day
}
