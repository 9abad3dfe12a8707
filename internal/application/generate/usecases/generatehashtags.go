package usecases

import (
	"context"

	"timedpost/internal/application/generate/dto"
	"timedpost/internal/shared/logger"
)

const (
	hashtagsTemperature = 0.8
	hashtagsMaxTokens   = 500
)

type GenerateHashtagsUseCase struct {
	client CompletionClient
	logger logger.Interface
}

func NewGenerateHashtagsUseCase(client CompletionClient, logger logger.Interface) *GenerateHashtagsUseCase {
	return &GenerateHashtagsUseCase{client: client, logger: logger}
}

// Execute returns at most *req.Count hashtags, each lowercased, stripped of
// inner whitespace and prefixed with #.
func (uc *GenerateHashtagsUseCase) Execute(ctx context.Context, req dto.HashtagsRequest) ([]string, error) {
	system, user := buildHashtagPrompts(req.Topic, *req.Platform, *req.Style, *req.Count)

	content, err := uc.client.Complete(ctx, system, user, hashtagsTemperature, hashtagsMaxTokens)
	if err != nil {
		return nil, err
	}

	hashtags := formatHashtags(extractHashtagWords(content), *req.Count)
	uc.logger.Infow("generated hashtags", "count", len(hashtags), "style", *req.Style)
	return hashtags, nil
}
