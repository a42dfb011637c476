package driven

import (
	"context"

	"github.com/stackit-labs/stackit-search/internal/core/domain"
)

// QuestionStore is the forum's data store as seen by the retrieval
// engine. It is read-only here; the forum owns all writes.
type QuestionStore interface {
	// ListQuestions returns every question with author, tags and views,
	// ordered by question ID.
	ListQuestions(ctx context.Context) ([]domain.Question, error)

	// ListAnswers returns all answers for a question in posting order.
	ListAnswers(ctx context.Context, questionID int64) ([]domain.Answer, error)
}
