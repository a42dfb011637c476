package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/stackit-labs/stackit-search/internal/core/domain"
	"github.com/stackit-labs/stackit-search/internal/core/ports/driven"
	"github.com/stackit-labs/stackit-search/internal/core/ports/driving"
	"github.com/stackit-labs/stackit-search/internal/logger"
	"github.com/stackit-labs/stackit-search/internal/normalisers/markup"
)

// Ensure Assistant implements the interface.
var _ driving.AssistantService = (*Assistant)(nil)

// AssistantName is the forum handle of the AI assistant. Users summon
// it by writing @Stellar in a question or answer.
const AssistantName = "Stellar"

// fallbackMessage is returned whenever generation fails. The assistant
// fails closed: callers always get usable text.
const fallbackMessage = `I apologize, but I'm currently unable to generate a response due to a technical issue.
Please try mentioning me again later, or feel free to ask the community for help!

Error: AI service temporarily unavailable.`

// chatFallbackMessage is the fail-closed reply for the chat surface.
const chatFallbackMessage = "Sorry, I encountered an error while processing your request. Please try again."

const answerPromptFormat = `You are %s, an AI assistant helping users on a Q&A forum called StackIt.
Please provide a helpful, accurate, and detailed answer to the following question.

Question Title: %s
Question Description: %s

Please provide a comprehensive answer that:
1. Directly addresses the question
2. Provides clear explanations
3. Includes practical examples when appropriate
4. Uses proper formatting with markdown
5. Is professional and helpful in tone

Keep your response focused and relevant to the question asked.`

const chatPromptFormat = `You are %s, an AI assistant for the StackIt Q&A forum.
User question: %s

%s

Please provide a helpful response. If you reference any of the forum discussions above,
mention that you're referring to existing forum content. Be conversational and helpful.`

// answerSnippetLimit caps the answer excerpt quoted in the chat
// context block.
const answerSnippetLimit = 100

// Assistant generates AI answers and chat replies, grounding chat in
// context retrieved from the similarity index. The LLM is optional;
// without one every generation path yields the fallback message.
type Assistant struct {
	llm       driven.LLMService
	retrieval driving.RetrievalService
}

// NewAssistant creates the assistant. llm may be nil.
func NewAssistant(llm driven.LLMService, retrieval driving.RetrievalService) *Assistant {
	return &Assistant{llm: llm, retrieval: retrieval}
}

// Mentioned reports whether the assistant's handle appears in the
// text. Markup is stripped first so mentions inside tags don't count
// and mentions split by formatting still do.
func (a *Assistant) Mentioned(text string) bool {
	clean := strings.ToLower(markup.StripTags(text))
	return strings.Contains(clean, "@"+strings.ToLower(AssistantName))
}

// Answer generates a forum answer for a question. Generation failures
// are logged and replaced by the fallback message.
func (a *Assistant) Answer(ctx context.Context, title, description string) string {
	prompt := fmt.Sprintf(answerPromptFormat, AssistantName, title, description)
	return a.generate(ctx, prompt, fallbackMessage)
}

// Chat responds to a free-form message. Relevant forum discussions are
// retrieved and injected into the prompt; the context items used are
// returned alongside the reply.
func (a *Assistant) Chat(ctx context.Context, message string) (string, []domain.ChatContext) {
	items := a.retrieval.ContextForChat(ctx, message, DefaultMaxContext)
	prompt := fmt.Sprintf(chatPromptFormat, AssistantName, message, formatContext(items))
	return a.generate(ctx, prompt, chatFallbackMessage), items
}

// generate calls the LLM and fails closed with the given fallback.
func (a *Assistant) generate(ctx context.Context, prompt, fallback string) string {
	if a.llm == nil {
		logger.Error("Assistant: %v", domain.ErrLLMUnavailable)
		return fallback
	}

	reply, err := a.llm.Generate(ctx, prompt)
	if err != nil {
		logger.Error("Assistant: generation failed: %v", err)
		return fallback
	}
	if strings.TrimSpace(reply) == "" {
		return fallback
	}
	return reply
}

// formatContext renders retrieved discussions as a prompt block.
// Empty context yields an empty string so the prompt stays clean.
func formatContext(items []domain.ChatContext) string {
	if len(items) == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n\nRelevant forum discussions:\n")
	for _, item := range items {
		fmt.Fprintf(&b, "- Question: %s\n  Description: %s\n", item.Title, item.Description)
		if len(item.Answers) > 0 {
			snippet := item.Answers[0]
			if r := []rune(snippet); len(r) > answerSnippetLimit {
				snippet = string(r[:answerSnippetLimit])
			}
			fmt.Fprintf(&b, "  Answers: %s...\n", snippet)
		}
		fmt.Fprintf(&b, "  Link: %s\n\n", item.Link)
	}
	return b.String()
}
