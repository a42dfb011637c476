// Package file loads and persists application settings from a TOML
// file in the stackit-search config directory.
package file

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

// Settings holds the tool's configuration as stored on disk.
// Zero values mean "use the built-in default".
type Settings struct {
	// Forum holds the location of the forum database.
	Forum ForumSettings `toml:"forum"`

	// Search tunes the similarity index.
	Search SearchSettings `toml:"search"`

	// AI configures the assistant's language model.
	AI AISettings `toml:"ai"`

	// Watch configures the database watcher.
	Watch WatchSettings `toml:"watch"`
}

// ForumSettings locates the forum data.
type ForumSettings struct {
	// Database is the path to the forum's SQLite database.
	Database string `toml:"database"`

	// Snapshot is the path of the persisted index snapshot.
	// Defaults to <config dir>/data/index.snapshot.
	Snapshot string `toml:"snapshot"`
}

// SearchSettings tunes vectorisation and ranking.
type SearchSettings struct {
	// MaxFeatures caps the vocabulary size (default 5000).
	MaxFeatures int `toml:"max_features"`

	// MinSimilarity is the score cutoff for results (default 0.1).
	MinSimilarity float64 `toml:"min_similarity"`

	// TopK is the default number of results (default 5).
	TopK int `toml:"top_k"`
}

// AISettings configures the Gemini-backed assistant.
// The API key is never stored here; it comes from the
// GEMINI_API_KEY environment variable.
type AISettings struct {
	// Model is the Gemini model name (default gemini-2.5-flash).
	Model string `toml:"model"`

	// BaseURL overrides the API endpoint. Empty uses the public one.
	BaseURL string `toml:"base_url"`

	// RequestsPerMinute caps outgoing requests (default 10).
	RequestsPerMinute int `toml:"requests_per_minute"`
}

// WatchSettings configures the database watcher.
type WatchSettings struct {
	// DebounceSeconds is the quiet period after a change before the
	// index is rebuilt (default 2).
	DebounceSeconds int `toml:"debounce_seconds"`
}

// ConfigDir returns the stackit-search config directory, creating it
// if needed. Defaults to ~/.stackit-search.
func ConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolving home directory: %w", err)
	}
	dir := filepath.Join(home, ".stackit-search")
	if err := os.MkdirAll(dir, 0700); err != nil {
		return "", fmt.Errorf("creating config directory: %w", err)
	}
	return dir, nil
}

// DefaultPath returns the default settings file path.
func DefaultPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// Load reads settings from path. A missing file yields zero-valued
// settings so first runs work without any setup.
func Load(path string) (Settings, error) {
	var s Settings

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return s, nil
		}
		return s, fmt.Errorf("reading settings: %w", err)
	}

	if err := toml.Unmarshal(data, &s); err != nil {
		return s, fmt.Errorf("parsing settings: %w", err)
	}
	return s, nil
}

// Save writes settings to path with restricted permissions.
func Save(path string, s Settings) error {
	data, err := toml.Marshal(s)
	if err != nil {
		return fmt.Errorf("encoding settings: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("creating settings directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("writing settings: %w", err)
	}
	return nil
}
