package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var rebuildCmd = &cobra.Command{
	Use:   "rebuild",
	Short: "Rebuild the similarity index from the forum database",
	Long: `Reads every question and answer from the forum database, fits a
fresh TF-IDF model and atomically replaces the persisted index.`,
	Args: cobra.NoArgs,
	RunE: runRebuild,
}

func init() {
	rootCmd.AddCommand(rebuildCmd)
}

func runRebuild(cmd *cobra.Command, _ []string) error {
	if err := retrievalService.BuildIndex(cmd.Context()); err != nil {
		return fmt.Errorf("rebuild failed: %w", err)
	}

	cmd.Printf("Indexed %d questions.\n", retrievalService.IndexedQuestions())
	return nil
}
