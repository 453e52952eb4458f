package root

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"mindquest/internal/engine"
	"mindquest/internal/ui"
)

func newProgressCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "progress",
		Short: "Weekly completion chart (parent view)",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			p, err := svc.Profile(ctx)
			if err != nil {
				return err
			}
			week, err := svc.WeeklyProgress(ctx)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.Heading("📈", "Weekly Progress"))
			for _, d := range week {
				bar := strings.Repeat("█", d.Completed)
				fmt.Fprintf(out, "%s %s %s\n", ui.Key.Render(d.Date), ui.Gold.Render(bar), ui.Muted.Render(fmt.Sprintf("%d", d.Completed)))
			}
			fmt.Fprintln(out, "")
			fmt.Fprintln(out, ui.LabelValue("Level", p.Level))
			fmt.Fprintln(out, ui.LabelValue("Estimated total XP", engine.TotalXPEstimate(*p)))
			fmt.Fprintln(out, ui.LabelValue("Quests completed", len(p.CompletedQuests)))
			fmt.Fprintln(out, ui.LabelValue("Badges", len(p.Badges)))
			return nil
		},
	}

	return cmd
}
