package cli

import (
	"github.com/stackit-labs/stackit-search/internal/adapters/driven/storage/memory"
	"github.com/stackit-labs/stackit-search/internal/core/domain"
	"github.com/stackit-labs/stackit-search/internal/core/services"
)

// setupTestServices wires the command globals to an in-memory corpus.
// The returned cleanup restores the previous wiring.
func setupTestServices() func() {
	store := memory.NewQuestionStore()
	store.PutQuestion(domain.Question{
		ID:          1,
		Title:       "How to sort a list of numbers",
		Description: "I have a list of numbers and want them in ascending order",
		Author:      "alice",
		Tags:        []string{"python", "sorting"},
	})
	store.PutAnswer(domain.Answer{
		ID:         10,
		QuestionID: 1,
		Content:    "<p>Use a built-in sort function</p>",
		Author:     "bob",
	})
	store.PutQuestion(domain.Question{
		ID:          2,
		Title:       "Best pizza dough recipe",
		Description: "Looking for a homemade pizza dough recipe",
		Author:      "carol",
	})

	oldRetrieval := retrievalService
	oldAssistant := assistantService

	retrievalService = services.NewRetrievalService(store, nil, services.RetrievalOptions{})
	assistantService = services.NewAssistant(nil, retrievalService)

	return func() {
		retrievalService = oldRetrieval
		assistantService = oldAssistant
	}
}
