package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"mindquest/internal/engine"
	"mindquest/internal/ui"
)

func newBadgesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "badges",
		Short: "Show the badge collection",
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

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.Heading(ui.IconTrophy, "Badge Collection"))
			for _, b := range engine.Catalog() {
				if p.HasBadge(b.ID) {
					fmt.Fprintf(out, "%s %s %s\n", b.Icon, ui.Gold.Render(b.Name), ui.Muted.Render(b.Description))
				} else {
					fmt.Fprintf(out, "🔒 %s %s\n", ui.Muted.Render(b.Name), ui.Dim.Render(b.Description))
				}
			}
			return nil
		},
	}

	return cmd
}
