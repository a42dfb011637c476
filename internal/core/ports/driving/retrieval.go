package driving

import (
	"context"

	"github.com/stackit-labs/stackit-search/internal/core/domain"
)

// RetrievalService provides similarity search over the question corpus.
type RetrievalService interface {
	// BuildIndex rebuilds the whole index from the question store.
	// A store yielding zero questions is a failure; the previous index,
	// if any, stays untouched on any error.
	BuildIndex(ctx context.Context) error

	// SearchSimilar returns the questions most similar to the query,
	// best first. It never fails: on a cold start it tries to load the
	// persisted snapshot, then to build, and finally returns an empty
	// slice.
	SearchSimilar(ctx context.Context, query string, topK int) []domain.SimilarQuestion

	// ContextForChat returns at most maxContext shaped context items
	// for feeding a downstream text-generation prompt.
	ContextForChat(ctx context.Context, query string, maxContext int) []domain.ChatContext

	// UpdateQuestion re-indexes after a question changed.
	UpdateQuestion(ctx context.Context, questionID int64) error

	// DeleteQuestion re-indexes after a question was removed.
	DeleteQuestion(ctx context.Context, questionID int64) error
}
