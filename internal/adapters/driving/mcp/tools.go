package mcp

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// SearchSimilarInput is the input schema for the search_similar tool.
type SearchSimilarInput struct {
	Query string `json:"query" jsonschema:"the question text to find similar forum questions for"`
	TopK  int    `json:"top_k,omitempty" jsonschema:"maximum number of results to return (default 5)"`
}

// SearchSimilarOutput is the output schema for the search_similar tool.
type SearchSimilarOutput struct {
	Results []SimilarQuestionOutput `json:"results"`
	Count   int                     `json:"count"`
}

// SimilarQuestionOutput represents one similar question.
type SimilarQuestionOutput struct {
	QuestionID  int64    `json:"question_id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Author      string   `json:"author"`
	Tags        []string `json:"tags,omitempty"`
	AnswerCount int      `json:"answer_count"`
	Similarity  float64  `json:"similarity"`
}

// QuestionContextInput is the input schema for the get_context_for_chat tool.
type QuestionContextInput struct {
	Query      string `json:"query" jsonschema:"the user message to gather forum context for"`
	MaxContext int    `json:"max_context,omitempty" jsonschema:"maximum number of context items (default 3)"`
}

// QuestionContextOutput is the output schema for the get_context_for_chat tool.
type QuestionContextOutput struct {
	Items []QuestionContextItem `json:"items"`
	Count int                   `json:"count"`
}

// QuestionContextItem is one shaped context entry.
type QuestionContextItem struct {
	QuestionID  int64    `json:"question_id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Answers     []string `json:"answers,omitempty"`
	Link        string   `json:"link"`
	Similarity  float64  `json:"similarity"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "search_similar",
		Description: "Find forum questions similar to a given question text",
	}, s.handleSearchSimilar)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "get_context_for_chat",
		Description: "Fetch shaped forum context for answering a user message",
	}, s.handleQuestionContext)
}

// handleSearchSimilar handles the search_similar tool invocation.
func (s *Server) handleSearchSimilar(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input SearchSimilarInput,
) (*mcp.CallToolResult, SearchSimilarOutput, error) {
	results := s.ports.Retrieval.SearchSimilar(ctx, input.Query, input.TopK)

	output := SearchSimilarOutput{
		Results: make([]SimilarQuestionOutput, len(results)),
		Count:   len(results),
	}

	for i := range results {
		output.Results[i] = SimilarQuestionOutput{
			QuestionID:  results[i].ID,
			Title:       results[i].Title,
			Description: results[i].Description,
			Author:      results[i].Author,
			Tags:        results[i].Tags,
			AnswerCount: results[i].AnswerCount,
			Similarity:  results[i].Similarity,
		}
	}

	return nil, output, nil
}

// handleQuestionContext handles the get_question_context tool invocation.
func (s *Server) handleQuestionContext(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input QuestionContextInput,
) (*mcp.CallToolResult, QuestionContextOutput, error) {
	items := s.ports.Retrieval.ContextForChat(ctx, input.Query, input.MaxContext)

	output := QuestionContextOutput{
		Items: make([]QuestionContextItem, len(items)),
		Count: len(items),
	}

	for i := range items {
		output.Items[i] = QuestionContextItem{
			QuestionID:  items[i].QuestionID,
			Title:       items[i].Title,
			Description: items[i].Description,
			Answers:     items[i].Answers,
			Link:        items[i].Link,
			Similarity:  items[i].Similarity,
		}
	}

	return nil, output, nil
}
