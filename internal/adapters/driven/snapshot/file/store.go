// Package file persists index snapshots as a single gob-encoded file.
// The snapshot is written atomically (temp file plus rename) so a
// crash mid-write leaves the last completed snapshot intact, and a
// schema version guards against loading incompatible layouts.
package file

import (
	"context"
	"encoding/gob"
	"fmt"
	"os"
	"path/filepath"

	"github.com/stackit-labs/stackit-search/internal/core/domain"
	"github.com/stackit-labs/stackit-search/internal/core/ports/driven"
)

// Ensure Store implements the interface.
var _ driven.SnapshotStore = (*Store)(nil)

// DefaultFileName is the snapshot file name within the data directory.
const DefaultFileName = "index.snapshot"

// Store is a file-based implementation of driven.SnapshotStore.
type Store struct {
	path string
}

// NewStore creates a snapshot store at the given path. If path is
// empty, defaults to ~/.stackit-search/data/index.snapshot.
func NewStore(path string) (*Store, error) {
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		path = filepath.Join(home, ".stackit-search", "data", DefaultFileName)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	return &Store{path: path}, nil
}

// Path returns the snapshot file path.
func (s *Store) Path() string {
	return s.path
}

// Save writes the snapshot atomically, replacing any previous one.
func (s *Store) Save(_ context.Context, snap *driven.Snapshot) error {
	if snap == nil {
		return domain.ErrInvalidInput
	}

	tmp, err := os.CreateTemp(filepath.Dir(s.path), DefaultFileName+".tmp-*")
	if err != nil {
		return fmt.Errorf("creating temp snapshot: %w", err)
	}
	defer os.Remove(tmp.Name())

	if err := gob.NewEncoder(tmp).Encode(snap); err != nil {
		tmp.Close()
		return fmt.Errorf("encoding snapshot: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("closing temp snapshot: %w", err)
	}

	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return fmt.Errorf("replacing snapshot: %w", err)
	}
	return nil
}

// Load reads the last saved snapshot. Any problem with the file -
// missing, truncated, corrupt or written by a different schema version
// - is reported as domain.ErrSnapshotUnavailable so callers rebuild
// instead of crashing.
func (s *Store) Load(_ context.Context) (*driven.Snapshot, error) {
	f, err := os.Open(s.path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrSnapshotUnavailable, err)
	}
	defer f.Close()

	var snap driven.Snapshot
	if err := gob.NewDecoder(f).Decode(&snap); err != nil {
		return nil, fmt.Errorf("%w: decoding: %v", domain.ErrSnapshotUnavailable, err)
	}
	if snap.SchemaVersion != driven.SnapshotSchemaVersion {
		return nil, fmt.Errorf("%w: schema version %d, want %d",
			domain.ErrSnapshotUnavailable, snap.SchemaVersion, driven.SnapshotSchemaVersion)
	}
	return &snap, nil
}
