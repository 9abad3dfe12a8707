package usecases

import (
	"context"
	"io"
	"log/slog"

	"timedpost/internal/shared/logger"
)

type mockCompletionClient struct {
	CompleteFunc func(ctx context.Context, system, user string, temperature float64, maxTokens int) (string, error)
}

func (m *mockCompletionClient) Complete(ctx context.Context, system, user string, temperature float64, maxTokens int) (string, error) {
	return m.CompleteFunc(ctx, system, user, temperature, maxTokens)
}

func testLogger() logger.Interface {
	return logger.NewLoggerWithSlog(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func ptr[T any](v T) *T { return &v }
