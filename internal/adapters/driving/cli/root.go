// Package cli provides the cobra-based command line interface for
// stackit-search.
package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	configfile "github.com/stackit-labs/stackit-search/internal/adapters/driven/config/file"
	"github.com/stackit-labs/stackit-search/internal/adapters/driven/llm/gemini"
	snapshotfile "github.com/stackit-labs/stackit-search/internal/adapters/driven/snapshot/file"
	"github.com/stackit-labs/stackit-search/internal/adapters/driven/storage/sqlite"
	"github.com/stackit-labs/stackit-search/internal/core/ports/driven"
	"github.com/stackit-labs/stackit-search/internal/core/services"
	"github.com/stackit-labs/stackit-search/internal/logger"
)

// version is set at build time via ldflags.
var version = "dev"

var (
	flagVerbose bool
	flagConfig  string
	flagDB      string
)

// Wired services, populated by initServices.
var (
	settings         configfile.Settings
	questionStore    *sqlite.Store
	retrievalService *services.RetrievalService
	assistantService *services.Assistant
)

var rootCmd = &cobra.Command{
	Use:   "stackit-search",
	Short: "Similarity search and AI assistant for the StackIt forum",
	Long: `stackit-search indexes the StackIt forum's questions with TF-IDF
vectors and serves cosine-similarity search, chat context retrieval
and a Gemini-backed assistant over the corpus.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		logger.SetVerbose(flagVerbose)

		// version and help need no wiring
		if cmd.Name() == "version" || cmd.Name() == "help" {
			return nil
		}
		// Already wired, e.g. by tests.
		if retrievalService != nil {
			return nil
		}
		if err := initServices(); err != nil {
			return err
		}
		retrievalService.Warm(cmd.Context())
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, _ []string) {
		if questionStore != nil {
			questionStore.Close() //nolint:errcheck
		}
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "path to config file (default ~/.stackit-search/config.toml)")
	rootCmd.PersistentFlags().StringVar(&flagDB, "db", "", "path to the forum SQLite database (overrides config)")
}

// initServices loads configuration and wires the service graph.
func initServices() error {
	// .env is optional; real environments set variables directly.
	_ = godotenv.Load()

	configPath := flagConfig
	if configPath == "" {
		p, err := configfile.DefaultPath()
		if err != nil {
			return err
		}
		configPath = p
	}

	var err error
	settings, err = configfile.Load(configPath)
	if err != nil {
		return err
	}

	dbPath := flagDB
	if dbPath == "" {
		dbPath = settings.Forum.Database
	}
	if dbPath == "" {
		return fmt.Errorf("forum database not configured: set forum.database in %s or pass --db", configPath)
	}

	questionStore, err = sqlite.NewStore(dbPath)
	if err != nil {
		return err
	}

	snapshotStore, err := snapshotfile.NewStore(settings.Forum.Snapshot)
	if err != nil {
		return err
	}

	retrievalService = services.NewRetrievalService(questionStore, snapshotStore, services.RetrievalOptions{
		MaxFeatures:   settings.Search.MaxFeatures,
		MinSimilarity: settings.Search.MinSimilarity,
	})

	assistantService = services.NewAssistant(newLLMService(), retrievalService)
	return nil
}

// newLLMService builds the Gemini adapter when an API key is present.
// Without a key the assistant runs with no model and falls back to its
// canned replies.
func newLLMService() driven.LLMService {
	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		logger.Debug("GEMINI_API_KEY not set, assistant replies fall back")
		return nil
	}

	svc, err := gemini.NewLLMService(gemini.LLMConfig{
		APIKey:            apiKey,
		BaseURL:           settings.AI.BaseURL,
		Model:             settings.AI.Model,
		RequestsPerMinute: settings.AI.RequestsPerMinute,
	})
	if err != nil {
		logger.Error("Gemini unavailable: %v", err)
		return nil
	}
	logger.Debug("Assistant model: %s", svc.ModelName())
	return svc
}

// ExecuteContext runs the root command with the given context.
func ExecuteContext(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}
