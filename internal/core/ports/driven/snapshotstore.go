package driven

import (
	"context"

	"github.com/stackit-labs/stackit-search/internal/core/domain"
	"github.com/stackit-labs/stackit-search/internal/vectorspace"
)

// SnapshotSchemaVersion identifies the on-disk snapshot layout.
// A snapshot written with a different version is discarded on load.
const SnapshotSchemaVersion = 1

// Snapshot is the serialised form of a built index: the learned vector
// space model, one weight vector per corpus row and the corpus itself.
// The three parts are written and read as a single unit; position i in
// Corpus corresponds to row i of Matrix.
type Snapshot struct {
	SchemaVersion int
	Model         *vectorspace.Model
	Matrix        []vectorspace.Vector
	Corpus        []domain.Document
}

// SnapshotStore persists index snapshots.
type SnapshotStore interface {
	// Save writes the snapshot atomically, replacing any previous one.
	Save(ctx context.Context, snap *Snapshot) error

	// Load reads the last saved snapshot. A missing, unreadable or
	// schema-incompatible snapshot yields domain.ErrSnapshotUnavailable.
	Load(ctx context.Context) (*Snapshot, error)
}
