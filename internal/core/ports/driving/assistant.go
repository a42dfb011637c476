package driving

import (
	"context"

	"github.com/stackit-labs/stackit-search/internal/core/domain"
)

// AssistantService is the forum's AI assistant. All generation paths
// fail closed: callers always receive usable text, never an error.
type AssistantService interface {
	// Mentioned reports whether the assistant is summoned in the text.
	Mentioned(text string) bool

	// Answer generates a forum answer for a question.
	Answer(ctx context.Context, title, description string) string

	// Chat responds to a free-form message, grounding the reply in
	// retrieved forum context. The context items used are returned so
	// callers can display the references.
	Chat(ctx context.Context, message string) (string, []domain.ChatContext)
}
