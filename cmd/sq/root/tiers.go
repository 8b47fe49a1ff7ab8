package root

import (
	"fmt"

	"github.com/spf13/cobra"

	"shadowquest/internal/engine"
	"shadowquest/internal/ui"
)

func newTiersCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tiers",
		Short: "Show the rank roadmap",
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
			fmt.Fprintln(out, ui.Heading(ui.IconScroll, "Rank Roadmap"))
			for i, t := range engine.Tiers {
				marker := "  "
				label := ui.Muted.Render(t.Badge + " " + t.Name)
				switch {
				case i == st.TierIndex:
					marker = "▶ "
					label = ui.TierLabel(i)
				case i < st.TierIndex:
					label = ui.TierStyle(i).Faint(true).Render(t.Badge + " " + t.Name)
				}
				fmt.Fprintf(out, "%s%s %s\n", marker, label, ui.Muted.Render(fmt.Sprintf("%d EXP", t.Threshold)))
			}
			return nil
		},
	}

	return cmd
}
