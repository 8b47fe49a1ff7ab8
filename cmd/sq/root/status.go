package root

import (
	"fmt"

	"github.com/spf13/cobra"

	"shadowquest/internal/engine"
	"shadowquest/internal/ui"
)

func newStatusCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show rank, streak and milestones",
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

			progress := engine.TierProgress(st.TotalExp, st.TierIndex)
			next := "max rank"
			if missing, ok := engine.ExpToNextTier(st.TotalExp); ok {
				next = fmt.Sprintf("%d to %s", missing, engine.Tiers[st.TierIndex+1].Name)
			}

			fmt.Fprintln(out, ui.Heading(ui.IconSparkle, "Player Status"))
			fmt.Fprintln(out, ui.LabelValue("Rank", ui.TierLabel(st.TierIndex)))
			fmt.Fprintln(out, ui.LabelValue("Total EXP", fmt.Sprintf("%d %s %.0f%% (%s)", st.TotalExp, ui.ProgressBar(progress, 20), progress*100, next)))
			fmt.Fprintln(out, ui.LabelValue("Streak", fmt.Sprintf("%s %d days (best %d), multiplier ×%.2f",
				ui.IconFire, st.CurrentStreak, st.LongestStreak, engine.StreakMultiplier(st.CurrentStreak))))

			stats := engine.ComputeStats(st)
			fmt.Fprintln(out, ui.LabelValue("Quests", fmt.Sprintf("%d active, %d completed, %d failed (%.0f%% success)",
				stats.Active, stats.Completed, stats.Failed, stats.SuccessRate()*100)))
			fmt.Fprintln(out, "")

			checker := engine.NewAchievementChecker(st)
			fmt.Fprintln(out, ui.H2.Render(fmt.Sprintf("%s Milestones (%d/%d)", ui.IconTrophy, checker.CountEarned(), checker.CountTotal())))
			for _, a := range checker.GetAchievements() {
				if a.Earned {
					fmt.Fprintf(out, "- %s %s %s\n", a.Icon, ui.Good.Render(a.Name), ui.Muted.Render(a.Description))
				} else {
					fmt.Fprintf(out, "- %s %s\n", ui.Muted.Render("·"), ui.Muted.Render(a.Name+": "+a.Description))
				}
			}
			return nil
		},
	}

	return cmd
}
