package mcp

import (
	"context"

	"github.com/stackit-labs/stackit-search/internal/core/domain"
	"github.com/stackit-labs/stackit-search/internal/core/ports/driving"
)

var _ driving.RetrievalService = (*mockRetrievalService)(nil)

// mockRetrievalService is a test double for driving.RetrievalService.
type mockRetrievalService struct {
	similar    []domain.SimilarQuestion
	contexts   []domain.ChatContext
	lastQuery  string
	lastTopK   int
	buildCalls int
}

func (m *mockRetrievalService) BuildIndex(context.Context) error {
	m.buildCalls++
	return nil
}

func (m *mockRetrievalService) SearchSimilar(_ context.Context, query string, topK int) []domain.SimilarQuestion {
	m.lastQuery = query
	m.lastTopK = topK
	return m.similar
}

func (m *mockRetrievalService) ContextForChat(_ context.Context, query string, maxContext int) []domain.ChatContext {
	m.lastQuery = query
	m.lastTopK = maxContext
	return m.contexts
}

func (m *mockRetrievalService) UpdateQuestion(context.Context, int64) error { return nil }
func (m *mockRetrievalService) DeleteQuestion(context.Context, int64) error { return nil }
