package cli

import (
	"github.com/spf13/cobra"
)

var askCmd = &cobra.Command{
	Use:   "ask [title] [description]",
	Short: "Generate an assistant answer for a question",
	Long: `Asks the assistant to draft a forum answer for a question given its
title and an optional description. Without a configured model the
assistant replies with its standard fallback message.`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runAsk,
}

func init() {
	rootCmd.AddCommand(askCmd)
}

func runAsk(cmd *cobra.Command, args []string) error {
	title := args[0]
	description := ""
	if len(args) > 1 {
		description = args[1]
	}

	cmd.Println(assistantService.Answer(cmd.Context(), title, description))
	return nil
}
