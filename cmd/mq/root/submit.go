package root

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"mindquest/internal/ui"
)

func newSubmitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "submit <quest-id> <report...>",
		Short: "Submit a quest report for evaluation",
		Long: `Submit a written report for a quest that requires one.

The report is judged by the AI: if it shows the quest was genuinely done, the
quest completes and XP is awarded based on effort. Otherwise the quest stays
open with feedback on what to improve.`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) < 2 {
				return errors.New("quest-id and a report are required")
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

			report := strings.TrimSpace(strings.Join(args[1:], " "))
			if report == "" {
				return errors.New("report must not be empty")
			}

			res, err := svc.SubmitReport(ctx, args[0], report)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if res.Stale {
				fmt.Fprintln(out, ui.Warn.Render(ui.IconWarn+" That quest was already finished elsewhere."))
				return nil
			}

			fmt.Fprintf(out, "%s %s\n", ui.IconChat, res.Feedback)
			if !res.Completed {
				fmt.Fprintln(out, ui.Warn.Render("Not done yet. Give it another go and resubmit!"))
				return nil
			}
			if res.Award != nil {
				printAward(out, res.Award)
			} else {
				fmt.Fprintf(out, "%s %s\n", ui.Good.Render(ui.IconDone+" Completed"), ui.Key.Render(res.QuestID))
			}
			return nil
		},
	}

	return cmd
}
