package llm

import "context"

// Generator is the capability interface for external text generation. Given a
// prompt and a target output length it returns generated text. Implementations
// must be safe for concurrent use and retryable: a call has no side effects
// beyond the returned text.
type Generator interface {
	Generate(ctx context.Context, prompt string, maxChars int) (string, error)
}
