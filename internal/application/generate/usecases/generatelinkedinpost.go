package usecases

import (
	"context"

	"timedpost/internal/application/generate/dto"
	"timedpost/internal/shared/logger"
)

const (
	linkedinTemperature = 0.9
	linkedinMaxTokens   = 2000
	maxLinkedInPosts    = 3
)

type GenerateLinkedInPostUseCase struct {
	client CompletionClient
	logger logger.Interface
}

func NewGenerateLinkedInPostUseCase(client CompletionClient, logger logger.Interface) *GenerateLinkedInPostUseCase {
	return &GenerateLinkedInPostUseCase{client: client, logger: logger}
}

func (uc *GenerateLinkedInPostUseCase) Execute(ctx context.Context, req dto.LinkedInPostRequest) ([]string, error) {
	system, user := buildLinkedInPostPrompts(req.Topic, *req.PostType, *req.Tone, *req.IncludeEmoji)

	content, err := uc.client.Complete(ctx, system, user, linkedinTemperature, linkedinMaxTokens)
	if err != nil {
		return nil, err
	}

	posts := capList(extractStringList(content), maxLinkedInPosts)
	uc.logger.Infow("generated linkedin posts", "count", len(posts), "post_type", *req.PostType)
	return posts, nil
}
