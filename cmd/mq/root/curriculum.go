package root

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"mindquest/internal/curriculum"
	"mindquest/internal/ui"
)

func newCurriculumCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "curriculum",
		Short: "Manage the study curriculum used to ground chats",
	}

	cmd.AddCommand(
		newCurriculumUploadCmd(),
		newCurriculumShowCmd(),
		newCurriculumClearCmd(),
	)

	return cmd
}

func newCurriculumUploadCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "upload <file>",
		Short: "Upload a curriculum document (.txt, .md, or .pdf)",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("file path is required")
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

			data, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}
			name := filepath.Base(args[0])

			text, err := curriculum.Extract(name, data)
			if err != nil {
				return err
			}
			if err := svc.SetCurriculum(ctx, text, name); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s\n",
				ui.Good.Render(ui.IconBook+" Uploaded"),
				ui.Key.Render(name),
				ui.Muted.Render(fmt.Sprintf("(%d characters)", len(text))),
			)
			return nil
		},
	}

	return cmd
}

func newCurriculumShowCmd() *cobra.Command {
	var full bool

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show the stored curriculum",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			content, fileName, ok, err := svc.Curriculum(ctx)
			if err != nil {
				return err
			}
			if !ok {
				fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render("(no curriculum uploaded)"))
				return nil
			}

			fmt.Fprintln(cmd.OutOrStdout(), ui.Heading(ui.IconBook, fileName))
			runes := []rune(content)
			if full || len(runes) <= 500 {
				fmt.Fprintln(cmd.OutOrStdout(), content)
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(runes[:500]))
			fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render(fmt.Sprintf("… (%d more characters; use --full)", len(runes)-500)))
			return nil
		},
	}

	cmd.Flags().BoolVar(&full, "full", false, "Print the whole document")

	return cmd
}

func newCurriculumClearCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Remove the stored curriculum",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			if err := svc.ClearCurriculum(ctx); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.Good.Render(ui.IconDone+" Curriculum cleared."))
			return nil
		},
	}

	return cmd
}
