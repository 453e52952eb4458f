package root

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"mindquest/internal/ui"
)

const Version = "0.1.0"

var rootCmd = &cobra.Command{
	Use:           "mq",
	Short:         "MindQuest — gamified daily quests for building better habits",
	Long:          "MindQuest is a local-first CLI/TUI habit trainer with RPG progression, AI-evaluated quests, and a curriculum-aware study buddy.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	rootCmd.Version = Version
	rootCmd.SetVersionTemplate("{{.Name}} v{{.Version}}\n")

	rootCmd.AddCommand(
		newStatusCmd(),
		newQuestsCmd(),
		newAddCmd(),
		newDoneCmd(),
		newSubmitCmd(),
		newRefreshCmd(),
		newBadgesCmd(),
		newProgressCmd(),
		newChatCmd(),
		newCurriculumCmd(),
		newBoardCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, ui.Bad.Render(ui.IconError+" "+err.Error()))
		os.Exit(1)
	}
}
