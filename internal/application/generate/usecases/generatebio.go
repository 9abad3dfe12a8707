package usecases

import (
	"context"

	"timedpost/internal/application/generate/dto"
	"timedpost/internal/shared/logger"
)

const (
	bioTemperature = 0.9
	bioMaxTokens   = 600
	maxBios        = 5
)

type GenerateBioUseCase struct {
	client CompletionClient
	logger logger.Interface
}

func NewGenerateBioUseCase(client CompletionClient, logger logger.Interface) *GenerateBioUseCase {
	return &GenerateBioUseCase{client: client, logger: logger}
}

// Execute returns up to 5 bios for a validated, defaulted request.
func (uc *GenerateBioUseCase) Execute(ctx context.Context, req dto.BioRequest) ([]string, error) {
	system, user := buildBioPrompts(req.Name, req.Niche, *req.Tone)

	content, err := uc.client.Complete(ctx, system, user, bioTemperature, bioMaxTokens)
	if err != nil {
		return nil, err
	}

	bios := capList(extractStringList(content), maxBios)
	uc.logger.Infow("generated bios", "count", len(bios), "tone", *req.Tone)
	return bios, nil
}
