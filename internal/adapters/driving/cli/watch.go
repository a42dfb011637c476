package cli

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/stackit-labs/stackit-search/internal/core/services"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Watch the forum database and rebuild the index on changes",
	Long: `Watches the forum database file and rebuilds the similarity index
after writes settle. Runs until interrupted.`,
	Args: cobra.NoArgs,
	RunE: runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, _ []string) error {
	debounce := time.Duration(settings.Watch.DebounceSeconds) * time.Second
	watcher := services.NewWatcher(retrievalService, questionStore.Path(), debounce)

	cmd.Printf("Watching %s (Ctrl+C to stop)\n", questionStore.Path())
	return watcher.Run(cmd.Context())
}
