package root

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"mindquest/internal/engine"
	"mindquest/internal/ui"
)

func newDoneCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "done <quest-id>",
		Short: "Complete a quest directly",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("quest-id is required")
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

			res, err := svc.CompleteQuest(ctx, args[0])
			if err != nil {
				return err
			}

			printAward(cmd.OutOrStdout(), res)
			return nil
		},
	}

	return cmd
}

func printAward(out io.Writer, res *engine.CompleteResult) {
	fmt.Fprintf(out, "%s %s %s\n",
		ui.Good.Render(ui.IconDone+" Completed"),
		ui.Key.Render(res.QuestID),
		ui.Gold.Render(fmt.Sprintf("+%d XP", res.XPAwarded)),
	)
	if res.LevelUp {
		fmt.Fprintf(out, "%s %s You reached level %d!\n", ui.IconBolt, ui.BadgeLevelUp, res.LevelAfter)
	}
	for _, b := range res.NewBadges {
		fmt.Fprintf(out, "%s New badge: %s %s %s\n",
			ui.IconTrophy, b.Icon, ui.Gold.Render(b.Name), ui.Muted.Render("("+b.Description+")"))
	}
}
