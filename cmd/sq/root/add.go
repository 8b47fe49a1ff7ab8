package root

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"shadowquest/internal/engine"
	"shadowquest/internal/ui"
)

func newAddCmd() *cobra.Command {
	var diff string

	cmd := &cobra.Command{
		Use:   "add <title>",
		Short: "Add a quest",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return errors.New("title is required")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			d, err := engine.ParseDifficulty(diff)
			if err != nil {
				return err
			}

			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			q, err := svc.AddQuest(ctx, strings.Join(args, " "), d)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s %s\n",
				ui.Good.Render(ui.IconPlus+" Added"),
				ui.Muted.Render(engine.ShortID(q.ID)),
				q.Title,
				ui.DifficultyText(q.Difficulty))
			return nil
		},
	}

	cmd.Flags().StringVarP(&diff, "diff", "d", string(engine.DefaultDifficulty), "Difficulty (trivial|easy|medium|hard|legendary or 1-5)")

	return cmd
}
