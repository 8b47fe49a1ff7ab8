package root

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"shadowquest/internal/config"
	"shadowquest/internal/logging"
	"shadowquest/internal/storage"
	"shadowquest/internal/ui"
)

func newResetCmd() *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Erase all progress for the current player",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !yes {
				return errors.New("reset erases all quests, EXP and streaks; rerun with --yes")
			}
			ctx := cmd.Context()
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			logger := logging.Setup(cfg.LogLevel, nil)

			db, cleanup, err := openDB(ctx, cfg)
			if err != nil {
				return err
			}
			defer cleanup()

			repo := storage.NewStateRepo(db, cfg.Player, logger)
			if err := repo.Reset(ctx); err != nil {
				return err
			}
			logger.Info("state reset", "player", repo.Key())
			fmt.Fprintf(cmd.OutOrStdout(), "%s progress for %s erased\n", ui.Warn.Render(ui.IconTrash), repo.Key())
			return nil
		},
	}

	cmd.Flags().BoolVar(&yes, "yes", false, "Confirm the reset")

	return cmd
}
