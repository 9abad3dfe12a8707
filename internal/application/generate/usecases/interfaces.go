package usecases

import "context"

// CompletionClient is the outbound dependency of every generation usecase.
// Satisfied by the openai infrastructure client.
type CompletionClient interface {
	Complete(ctx context.Context, system, user string, temperature float64, maxTokens int) (string, error)
}
