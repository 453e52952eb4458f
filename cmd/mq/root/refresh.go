package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"mindquest/internal/ui"
)

func newRefreshCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "refresh",
		Short: "Replace pending quests with a fresh AI-generated batch",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render("Summoning new quests…"))
			quests, err := svc.RefreshQuests(ctx)
			if err != nil {
				return err
			}
			if quests == nil {
				fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render("No new quests this time; your log is unchanged."))
				return nil
			}

			fmt.Fprintln(cmd.OutOrStdout(), ui.Heading(ui.IconSparkle, "New Quests"))
			for _, q := range quests {
				printQuestRow(cmd.OutOrStdout(), q)
			}
			return nil
		},
	}

	return cmd
}
