package root

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"mindquest/internal/storage"
	"mindquest/internal/ui"
)

func newQuestsCmd() *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:   "quests",
		Short: "List today's quests",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			var quests []storage.Quest
			if all {
				quests, err = svc.QuestRepo().ListAll(ctx)
			} else {
				quests, err = svc.QuestRepo().ListPending(ctx)
			}
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.Heading(ui.IconQuest, "Quest Log"))
			if len(quests) == 0 {
				fmt.Fprintln(out, ui.Muted.Render("(nothing here; try `mq refresh` for new quests)"))
				return nil
			}
			for _, q := range quests {
				printQuestRow(out, q)
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&all, "all", "a", false, "Include completed quests")

	return cmd
}

func printQuestRow(out io.Writer, q storage.Quest) {
	tag := ""
	if q.RequiresInput && !q.IsCompleted {
		tag = ui.Muted.Render(" [needs report]")
	}
	if q.IsEvaluating {
		tag = ui.Warn.Render(" [evaluating]")
	}
	fmt.Fprintf(out, "%s %s %s %s%s\n",
		ui.QuestIcon(q.IsCompleted, q.IsEvaluating),
		ui.Key.Render(q.ID),
		q.Title,
		ui.Dim.Render(fmt.Sprintf("(%d XP)", q.XP)),
		tag,
	)
	if q.Description != "" {
		fmt.Fprintf(out, "    %s\n", ui.Muted.Render(q.Description))
	}
	if q.Feedback != nil && *q.Feedback != "" {
		fmt.Fprintf(out, "    %s %s\n", ui.IconChat, ui.Dim.Render(*q.Feedback))
	}
}
