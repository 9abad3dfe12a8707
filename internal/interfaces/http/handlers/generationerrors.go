package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"timedpost/internal/infrastructure/openai"
	apperrors "timedpost/internal/shared/errors"
	"timedpost/internal/shared/logger"
	"timedpost/internal/shared/security"
	"timedpost/internal/shared/utils"
)

// respondGenerationError maps a generation failure to the wire. Upstream
// detail stays in the log; the client gets a curated message and, for
// upstream failures, the tool-specific retry line.
func respondGenerationError(c *gin.Context, log logger.Interface, err error, upstreamMessage string) {
	var upstreamErr *openai.UpstreamError

	switch {
	case errors.Is(err, openai.ErrNotConfigured):
		security.LogEvent(log, c.Request, security.EventAPIError, map[string]any{
			"reason": "not_configured",
		})
		utils.ErrorResponseWithError(c, apperrors.NewInternalError("API key not configured"))

	case errors.As(err, &upstreamErr):
		security.LogEvent(log, c.Request, security.EventAPIError, map[string]any{
			"status": upstreamErr.StatusCode,
		})
		utils.ErrorResponseWithError(c, apperrors.NewBadGatewayError(upstreamMessage, err.Error()))

	case errors.Is(err, openai.ErrNoContent):
		security.LogEvent(log, c.Request, security.EventAPIError, map[string]any{
			"reason": "no_content",
		})
		utils.ErrorResponseWithError(c, apperrors.NewInternalError("No response from AI"))

	default:
		log.Errorw("generation failed", "error", err, "path", c.Request.URL.Path)
		utils.ErrorResponseWithError(c, err)
	}
}
