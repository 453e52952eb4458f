package root

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"mindquest/internal/engine"
	"mindquest/internal/ui"
)

func newStatusCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show profile, level, and daily focus",
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
			focus, err := svc.QuestRepo().FocusProgress(ctx)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.Heading(ui.IconSparkle, p.Name+"'s Adventure"))
			fmt.Fprintln(out, ui.LabelValue("Level", p.Level))
			fmt.Fprintln(out, ui.LabelValue("XP", ui.XPBar(p.XP, p.XPToNextLevel, 24)))
			fmt.Fprintln(out, ui.LabelValue("Total XP", fmt.Sprintf("~%d", engine.TotalXPEstimate(*p))))
			fmt.Fprintln(out, ui.LabelValue("Quests completed", len(p.CompletedQuests)))
			fmt.Fprintln(out, "")

			fmt.Fprintln(out, ui.H2.Render("🎯 Daily Focus"))
			if focus.Total == 0 {
				fmt.Fprintln(out, ui.Muted.Render("(no daily focus quests)"))
			} else {
				fmt.Fprintf(out, "%d/%d done %s\n", focus.Done, focus.Total, ui.XPBar(focus.Done, focus.Total, 12))
			}
			fmt.Fprintln(out, "")

			fmt.Fprintln(out, ui.H2.Render(ui.IconTrophy+" Badges"))
			if len(p.Badges) == 0 {
				fmt.Fprintln(out, ui.Muted.Render("(none yet; complete a quest to earn your first)"))
				return nil
			}
			var icons []string
			for _, id := range p.Badges {
				if b := engine.BadgeByID(id); b != nil {
					icons = append(icons, b.Icon+" "+b.Name)
				}
			}
			fmt.Fprintln(out, strings.Join(icons, "  "))
			return nil
		},
	}

	return cmd
}
