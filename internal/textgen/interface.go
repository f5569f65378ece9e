package textgen

import "context"

// Service is the text-generation boundary. The reply is always an untyped
// string; callers own any parsing of structured output.
type Service interface {
	Complete(ctx context.Context, systemPrompt, userPrompt string, temperature float32, maxTokens int) (string, error)
}
