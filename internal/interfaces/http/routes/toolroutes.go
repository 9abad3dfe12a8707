package routes

import (
	"github.com/gin-gonic/gin"

	"timedpost/internal/infrastructure/ratelimit"
	"timedpost/internal/interfaces/http/handlers"
	"timedpost/internal/interfaces/http/middleware"
	"timedpost/internal/shared/logger"
)

type ToolRouteConfig struct {
	ToolsHandler *handlers.ToolsHandler
	Limiter      ratelimit.Limiter
	Logger       logger.Interface
}

// SetupToolRoutes registers the five generation endpoints under the shared
// tools rate-limit policy.
func SetupToolRoutes(api *gin.RouterGroup, config *ToolRouteConfig) {
	tools := api.Group("")
	tools.Use(middleware.RateLimit(config.Limiter, ratelimit.ToolsPolicy, config.Logger))
	{
		tools.POST("/generate-bio", config.ToolsHandler.GenerateBio)
		tools.POST("/generate-caption", config.ToolsHandler.GenerateCaption)
		tools.POST("/generate-hashtags", config.ToolsHandler.GenerateHashtags)
		tools.POST("/generate-tweet", config.ToolsHandler.GenerateTweet)
		tools.POST("/generate-linkedin-post", config.ToolsHandler.GenerateLinkedInPost)
	}
}
