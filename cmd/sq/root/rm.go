package root

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"shadowquest/internal/ui"
)

func newRmCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "rm <id>",
		Aliases: []string{"delete"},
		Short:   "Delete a quest (EXP already earned or lost is kept)",
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
			if _, err := svc.DeleteQuest(ctx, q.ID); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", ui.Muted.Render(ui.IconTrash+" Deleted"), q.Title)
			return nil
		},
	}

	return cmd
}
