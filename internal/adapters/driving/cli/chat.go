package cli

import (
	"github.com/spf13/cobra"
)

var chatCmd = &cobra.Command{
	Use:   "chat [message]",
	Short: "Chat with the assistant, grounded in forum discussions",
	Long: `Sends a message to the assistant. Relevant forum discussions are
retrieved and injected into the prompt; the reply lists the questions
it drew on.`,
	Args: cobra.ExactArgs(1),
	RunE: runChat,
}

func init() {
	rootCmd.AddCommand(chatCmd)
}

func runChat(cmd *cobra.Command, args []string) error {
	reply, items := assistantService.Chat(cmd.Context(), args[0])

	cmd.Println(reply)
	if len(items) > 0 {
		cmd.Println()
		cmd.Println("References:")
		for _, item := range items {
			cmd.Printf("  - %s (%s)\n", item.Title, item.Link)
		}
	}
	return nil
}
