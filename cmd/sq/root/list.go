package root

import (
	"fmt"

	"github.com/spf13/cobra"

	"shadowquest/internal/engine"
	"shadowquest/internal/ui"
)

func newListCmd() *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List quests (active only unless --all)",
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
			quests := engine.ActiveQuests(st)
			if all {
				quests = st.Quests
			}

			out := cmd.OutOrStdout()
			if len(quests) == 0 {
				fmt.Fprintln(out, ui.Muted.Render("(no quests)"))
				return nil
			}
			streak := st.CurrentStreak
			for _, q := range quests {
				line := fmt.Sprintf("%s %s %s %s", ui.StatusIcon(q.Status()), ui.Muted.Render(engine.ShortID(q.ID)), q.Title, ui.DifficultyText(q.Difficulty))
				if !q.IsTerminal() {
					line += ui.Muted.Render(fmt.Sprintf(" → +%d", engine.CompletionExp(q.Difficulty, streak)))
				} else {
					line += " " + ui.StatusText(q.Status())
				}
				fmt.Fprintln(out, line)
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&all, "all", "a", false, "Include completed and failed quests")

	return cmd
}
