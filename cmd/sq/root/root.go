package root

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"shadowquest/internal/ui"
)

const Version = "0.2.0"

// NewRootCmd builds the sq command tree.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "sq",
		Short:         "shadowquest — local-first quest tracker with ranks and streaks",
		Long:          "shadowquest turns quest completions into EXP, ranks you through eight tiers, and rewards daily streaks.",
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.SetVersionTemplate("{{.Name}} v{{.Version}}\n")

	rootCmd.AddCommand(
		newAddCmd(),
		newDoCmd(),
		newFailCmd(),
		newRmCmd(),
		newListCmd(),
		newStatusCmd(),
		newEvalCmd(),
		newHistoryCmd(),
		newTiersCmd(),
		newBoardCmd(),
		newResetCmd(),
	)
	return rootCmd
}

func Execute() {
	if err := NewRootCmd().ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, ui.Bad.Render(ui.IconError+" "+err.Error()))
		os.Exit(1)
	}
}
