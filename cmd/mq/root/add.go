package root

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"mindquest/internal/engine"
	"mindquest/internal/ui"
)

func newAddCmd() *cobra.Command {
	var desc string
	var xp int
	var needsReport bool

	cmd := &cobra.Command{
		Use:   "add <title>",
		Short: "Add a custom quest",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("title is required")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			q, err := svc.AddQuest(ctx, engine.AddQuestInput{
				Title:         args[0],
				Description:   desc,
				XP:            xp,
				RequiresInput: needsReport,
			})
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s %s\n",
				ui.Good.Render(ui.IconPlus+" Added"),
				ui.Key.Render(q.ID),
				q.Title,
				ui.Muted.Render(fmt.Sprintf("(%d XP)", q.XP)),
			)
			return nil
		},
	}

	cmd.Flags().StringVarP(&desc, "desc", "d", "", "Quest description")
	cmd.Flags().IntVarP(&xp, "xp", "x", 0, "XP reward (default 25)")
	cmd.Flags().BoolVar(&needsReport, "report", false, "Require a written report judged by the AI")

	return cmd
}
