package routes

import (
	"github.com/gin-gonic/gin"

	"timedpost/internal/infrastructure/ratelimit"
	"timedpost/internal/interfaces/http/handlers"
	"timedpost/internal/interfaces/http/middleware"
	"timedpost/internal/shared/logger"
)

type ContactRouteConfig struct {
	ContactHandler *handlers.ContactHandler
	Limiter        ratelimit.Limiter
	Logger         logger.Interface
}

// SetupContactRoutes registers the contact form under its own, stricter
// rate-limit policy.
func SetupContactRoutes(api *gin.RouterGroup, config *ContactRouteConfig) {
	contact := api.Group("")
	contact.Use(middleware.RateLimit(config.Limiter, ratelimit.ContactPolicy, config.Logger))
	{
		contact.POST("/contact", config.ContactHandler.Submit)
	}
}
