package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/stackit-labs/stackit-search/internal/core/domain"
)

var (
	searchTopK int
	searchJSON bool
)

var searchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Find questions similar to a query",
	Long: `Searches the forum corpus for questions similar to the query,
ranked by cosine similarity over TF-IDF vectors.`,
	Args: cobra.ExactArgs(1),
	RunE: runSearch,
}

func init() {
	searchCmd.Flags().IntVarP(&searchTopK, "limit", "n", 5, "maximum number of results")
	searchCmd.Flags().BoolVar(&searchJSON, "json", false, "output results as JSON")
	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	results := retrievalService.SearchSimilar(cmd.Context(), args[0], searchTopK)

	if searchJSON {
		return outputSearchJSON(cmd, results)
	}
	return outputSearchTable(cmd, results)
}

func outputSearchJSON(cmd *cobra.Command, results []domain.SimilarQuestion) error {
	data, err := json.MarshalIndent(results, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal results: %w", err)
	}
	cmd.Println(string(data))
	return nil
}

func outputSearchTable(cmd *cobra.Command, results []domain.SimilarQuestion) error {
	if len(results) == 0 {
		cmd.Println("No similar questions found.")
		return nil
	}

	cmd.Println("Similar questions:")
	cmd.Println()
	for i := range results {
		cmd.Printf("  [%d] %s (%.2f)\n", i+1, results[i].Title, results[i].Similarity)
		cmd.Printf("      By %s", results[i].Author)
		if len(results[i].Tags) > 0 {
			cmd.Printf("  [%s]", strings.Join(results[i].Tags, ", "))
		}
		cmd.Printf("  %d answer(s)\n", results[i].AnswerCount)
		cmd.Printf("      /question/%d\n", results[i].ID)
		cmd.Println()
	}
	return nil
}
