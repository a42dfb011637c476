package driven

import "context"

// LLMService is the opaque text-generation collaborator: prompt in,
// text out. Failures are surfaced as errors; callers decide how to
// fail closed.
type LLMService interface {
	// Generate produces a completion for the prompt.
	Generate(ctx context.Context, prompt string) (string, error)

	// ModelName returns the name of the model being used.
	ModelName() string
}
