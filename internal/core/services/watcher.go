package services

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/stackit-labs/stackit-search/internal/core/ports/driving"
	"github.com/stackit-labs/stackit-search/internal/logger"
)

// DefaultDebounce is how long the watcher waits after the last write
// before rebuilding. Forums write in bursts (question plus tags plus
// notification rows); one rebuild per burst is enough.
const DefaultDebounce = 2 * time.Second

// Watcher observes the forum database file and triggers a full index
// rebuild after changes settle. It keeps the index fresh without any
// hooks on the forum side.
type Watcher struct {
	retrieval driving.RetrievalService
	dbPath    string
	debounce  time.Duration
}

// NewWatcher creates a watcher for the database at dbPath.
func NewWatcher(retrieval driving.RetrievalService, dbPath string, debounce time.Duration) *Watcher {
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	return &Watcher{
		retrieval: retrieval,
		dbPath:    dbPath,
		debounce:  debounce,
	}
}

// Run blocks until the context is cancelled, rebuilding the index
// whenever the database file changes. Rebuild failures are logged and
// watching continues; the previous index stays live.
func (w *Watcher) Run(ctx context.Context) error {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer fw.Close()

	// Watch the directory: SQLite swaps journal and WAL files around
	// the database, and directory watches survive those renames.
	dir := filepath.Dir(w.dbPath)
	if err := fw.Add(dir); err != nil {
		return fmt.Errorf("watch %s: %w", dir, err)
	}
	logger.Info("Watching %s for changes", w.dbPath)

	// The timer is armed on the first relevant event and re-armed on
	// every further one until it fires.
	timer := time.NewTimer(w.debounce)
	if !timer.Stop() {
		<-timer.C
	}

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-fw.Events:
			if !ok {
				return nil
			}
			if !w.relevant(event) {
				continue
			}
			logger.Debug("Change detected: %s", event)
			timer.Reset(w.debounce)

		case err, ok := <-fw.Errors:
			if !ok {
				return nil
			}
			logger.Warn("Watcher error: %v", err)

		case <-timer.C:
			logger.Info("Database changed, rebuilding index")
			if err := w.retrieval.BuildIndex(ctx); err != nil {
				logger.Error("Rebuild after change failed: %v", err)
			}
		}
	}
}

// relevant reports whether the event concerns the watched database,
// including its WAL and journal sidecars.
func (w *Watcher) relevant(event fsnotify.Event) bool {
	if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
		return false
	}
	base := filepath.Base(w.dbPath)
	name := filepath.Base(event.Name)
	return name == base || strings.HasPrefix(name, base+"-")
}
