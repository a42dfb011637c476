package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

var contextMax int

var contextCmd = &cobra.Command{
	Use:   "context [query]",
	Short: "Show the forum context retrieved for a chat message",
	Long: `Prints the shaped context items that would be injected into the
assistant's prompt for the given message, as JSON.`,
	Args: cobra.ExactArgs(1),
	RunE: runContext,
}

func init() {
	contextCmd.Flags().IntVarP(&contextMax, "max", "m", 3, "maximum number of context items")
	rootCmd.AddCommand(contextCmd)
}

func runContext(cmd *cobra.Command, args []string) error {
	items := retrievalService.ContextForChat(cmd.Context(), args[0], contextMax)

	data, err := json.MarshalIndent(items, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal context: %w", err)
	}
	cmd.Println(string(data))
	return nil
}
