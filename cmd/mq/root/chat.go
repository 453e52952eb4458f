package root

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"mindquest/internal/ai"
	"mindquest/internal/ui"
)

func newChatCmd() *cobra.Command {
	var modeFlag string

	cmd := &cobra.Command{
		Use:   "chat",
		Short: "Talk to Sparky, your study buddy",
		Long: `Start an interactive chat with Sparky.

Modes:
  general  friendly everyday encouragement (default)
  tutor    homework help grounded in the uploaded curriculum
  exam     rapid-fire quiz prep from the curriculum

Type "exit" or press ctrl+d to leave.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			mode, err := ai.ParseMode(modeFlag)
			if err != nil {
				return err
			}

			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			client, err := openAIClient()
			if err != nil {
				return err
			}

			grounding := ""
			if content, fileName, ok, err := svc.Curriculum(ctx); err != nil {
				return err
			} else if ok {
				grounding = content
				fmt.Fprintf(cmd.OutOrStdout(), "%s Using curriculum: %s\n", ui.IconBook, ui.Muted.Render(fileName))
			} else if mode != ai.ModeGeneral {
				fmt.Fprintln(cmd.OutOrStdout(), ui.Warn.Render(ui.IconWarn+" No curriculum uploaded; Sparky will wing it. Try `mq curriculum upload`."))
			}

			session := ai.NewChatSession(client, mode, grounding)

			fmt.Fprintf(cmd.OutOrStdout(), "%s (%s mode) Say hi! Type exit to leave.\n",
				ui.Heading(ui.IconChat, "Sparky"), session.Mode())

			scanner := bufio.NewScanner(os.Stdin)
			scanner.Buffer(make([]byte, 0, 64*1024), 64*1024)
			for {
				fmt.Fprint(cmd.OutOrStdout(), ui.Key.Render("you> "))
				if !scanner.Scan() {
					break
				}
				line := strings.TrimSpace(scanner.Text())
				if line == "" {
					continue
				}
				if line == "exit" || line == "quit" {
					break
				}

				reply, err := session.Send(ctx, line)
				if err != nil {
					// Show the apology, keep the session going.
					fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", ui.Bad.Render("sparky>"), reply)
					continue
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", ui.Good.Render("sparky>"), reply)
			}

			fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render("Bye! Keep questing."))
			return scanner.Err()
		},
	}

	cmd.Flags().StringVarP(&modeFlag, "mode", "m", "general", "Chat mode (general|tutor|exam)")

	return cmd
}
