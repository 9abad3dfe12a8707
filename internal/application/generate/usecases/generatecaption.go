package usecases

import (
	"context"

	"timedpost/internal/application/generate/dto"
	"timedpost/internal/shared/logger"
)

const (
	captionTemperature = 0.9
	captionMaxTokens   = 1200
	maxCaptions        = 5
)

type GenerateCaptionUseCase struct {
	client CompletionClient
	logger logger.Interface
}

func NewGenerateCaptionUseCase(client CompletionClient, logger logger.Interface) *GenerateCaptionUseCase {
	return &GenerateCaptionUseCase{client: client, logger: logger}
}

func (uc *GenerateCaptionUseCase) Execute(ctx context.Context, req dto.CaptionRequest) ([]string, error) {
	system, user := buildCaptionPrompts(
		req.Topic, *req.Platform, *req.Tone,
		*req.IncludeHashtags, *req.IncludeEmoji, *req.IncludeCallToAction,
	)

	content, err := uc.client.Complete(ctx, system, user, captionTemperature, captionMaxTokens)
	if err != nil {
		return nil, err
	}

	captions := capList(extractStringList(content), maxCaptions)
	uc.logger.Infow("generated captions", "count", len(captions), "platform", *req.Platform)
	return captions, nil
}
