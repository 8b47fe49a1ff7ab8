package root

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"shadowquest/internal/ui"
)

func newFailCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fail <id>",
		Short: "Mark a quest as failed",
		Long: `Mark a quest as failed.

This will:
- Deduct half the quest's base EXP
- Reset the current streak to zero
- Deduct a streak-break penalty (10 EXP per streak day, at most 150) if a streak was running`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("id is required")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			q, err := svc.FindQuest(ctx, args[0])
			if err != nil {
				return err
			}
			before := q.Status()
			res, st, err := svc.FailQuest(ctx, q.ID)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if res.QuestID == "" {
				fmt.Fprintf(out, "%s %s is already %s\n", ui.Warn.Render(ui.IconWarn), q.Title, ui.StatusText(before))
				return nil
			}

			fmt.Fprintf(out, "%s %s %s\n", ui.Bad.Render(ui.IconFailed+" Failed"), q.Title, ui.SignedExp(-res.ExpLost))
			if res.StreakPenalty > 0 {
				fmt.Fprintln(out, ui.Warn.Render(fmt.Sprintf("%s %d-day streak broken (-%d EXP)", ui.IconWarn, res.StreakLost, res.StreakPenalty)))
			}
			fmt.Fprintln(out, ui.LabelValue("Total EXP", st.TotalExp))
			fmt.Fprintln(out, ui.LabelValue("Rank", ui.TierLabel(st.TierIndex)))
			return nil
		},
	}

	return cmd
}
