package root

import (
	"fmt"

	"github.com/spf13/cobra"

	"shadowquest/internal/engine"
	"shadowquest/internal/ui"
)

func newEvalCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "eval",
		Aliases: []string{"evaluate"},
		Short:   "Show today's evaluation",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			r, err := svc.Evaluate(ctx)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.Heading(ui.IconEye, "Daily Evaluation "+r.Date))
			fmt.Fprintln(out, ui.LabelValue("EXP gained", ui.SignedExp(r.ExpGained)))
			fmt.Fprintln(out, ui.LabelValue("EXP lost", ui.SignedExp(-r.ExpLost)))
			fmt.Fprintln(out, ui.LabelValue("Today's quests", fmt.Sprintf("%d created, %d completed, %d failed, %d pending",
				r.CreatedToday, r.CompletedToday, r.FailedToday, r.PendingToday)))

			zone := ui.Warn.Render(r.WeakZone)
			if r.WeakZone == engine.WeakZoneNone {
				zone = ui.Good.Render(r.WeakZone)
			}
			fmt.Fprintln(out, ui.LabelValue("Weak zone", zone))
			fmt.Fprintln(out, ui.LabelValue("Suggestion", r.Suggestion))
			return nil
		},
	}

	return cmd
}
