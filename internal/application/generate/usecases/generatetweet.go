package usecases

import (
	"context"

	"timedpost/internal/application/generate/dto"
	"timedpost/internal/shared/logger"
)

const (
	tweetTemperature = 0.9
	tweetMaxTokens   = 800
	maxTweets        = 5
)

type GenerateTweetUseCase struct {
	client CompletionClient
	logger logger.Interface
}

func NewGenerateTweetUseCase(client CompletionClient, logger logger.Interface) *GenerateTweetUseCase {
	return &GenerateTweetUseCase{client: client, logger: logger}
}

func (uc *GenerateTweetUseCase) Execute(ctx context.Context, req dto.TweetRequest) ([]string, error) {
	system, user := buildTweetPrompts(req.Topic, *req.Tone, *req.IncludeHashtags, *req.IncludeEmoji)

	content, err := uc.client.Complete(ctx, system, user, tweetTemperature, tweetMaxTokens)
	if err != nil {
		return nil, err
	}

	tweets := capList(extractStringList(content), maxTweets)
	uc.logger.Infow("generated tweets", "count", len(tweets), "tone", *req.Tone)
	return tweets, nil
}
