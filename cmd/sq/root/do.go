package root

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"shadowquest/internal/ui"
)

func newDoCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "do <id>",
		Short: "Complete a quest",
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
			res, st, err := svc.CompleteQuest(ctx, q.ID)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if res.QuestID == "" {
				fmt.Fprintf(out, "%s %s is already %s\n", ui.Warn.Render(ui.IconWarn), q.Title, ui.StatusText(q.Status()))
				return nil
			}

			fmt.Fprintf(out, "%s %s %s\n", ui.Good.Render(ui.IconDone+" Cleared"), q.Title, ui.SignedExp(res.ExpGained))
			fmt.Fprintln(out, ui.LabelValue("Streak", fmt.Sprintf("%d → %d", res.StreakBefore, res.StreakAfter)))
			fmt.Fprintln(out, ui.LabelValue("Total EXP", st.TotalExp))
			if res.TierChanged {
				fmt.Fprintf(out, "%s %s\n", ui.BadgeRankUp, ui.TierLabel(res.TierAfter))
			}
			return nil
		},
	}

	return cmd
}
