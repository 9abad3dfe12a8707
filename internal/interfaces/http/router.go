// Package http assembles the gin engine: middleware chain, handler wiring,
// route registration.
package http

import (
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	contactusecases "timedpost/internal/application/contact/usecases"
	generateusecases "timedpost/internal/application/generate/usecases"
	"timedpost/internal/infrastructure/config"
	"timedpost/internal/infrastructure/email"
	"timedpost/internal/infrastructure/openai"
	"timedpost/internal/infrastructure/ratelimit"
	"timedpost/internal/interfaces/http/handlers"
	"timedpost/internal/interfaces/http/middleware"
	"timedpost/internal/interfaces/http/routes"
	"timedpost/internal/shared/logger"
	"timedpost/internal/shared/services/markdown"
)

type Router struct {
	engine *gin.Engine
	logger logger.Interface
}

// NewRouter wires the full service from configuration. The redis client is
// optional; without it the rate limiter is process-local.
func NewRouter(cfg *config.Config, redisClient *redis.Client, log logger.Interface) *Router {
	engine := gin.New()
	engine.Use(middleware.Recovery())
	engine.Use(middleware.RequestLogger(log))
	engine.Use(middleware.SecurityHeaders())

	var limiter ratelimit.Limiter
	if redisClient != nil {
		limiter = ratelimit.NewRedisLimiter(redisClient)
	} else {
		limiter = ratelimit.NewMemoryLimiter()
	}

	completionClient := openai.NewClient(&cfg.OpenAI)

	var mailer email.Service
	if cfg.Email.Enabled() {
		mailer = email.NewSMTPEmailService(email.SMTPConfig{
			Host:        cfg.Email.SMTPHost,
			Port:        cfg.Email.SMTPPort,
			Username:    cfg.Email.SMTPUser,
			Password:    cfg.Email.SMTPPassword,
			FromAddress: cfg.Email.FromAddress,
			FromName:    cfg.Email.FromName,
			ToAddress:   cfg.Email.ToAddress,
		}, markdown.NewService())
	}

	toolsHandler := handlers.NewToolsHandler(
		generateusecases.NewGenerateBioUseCase(completionClient, log),
		generateusecases.NewGenerateCaptionUseCase(completionClient, log),
		generateusecases.NewGenerateHashtagsUseCase(completionClient, log),
		generateusecases.NewGenerateTweetUseCase(completionClient, log),
		generateusecases.NewGenerateLinkedInPostUseCase(completionClient, log),
		log,
	)
	contactHandler := handlers.NewContactHandler(
		contactusecases.NewSubmitContactUseCase(mailer, log),
		log,
	)
	healthHandler := handlers.NewHealthHandler()

	engine.GET("/health", healthHandler.Check)

	allowedOrigins := middleware.BuildAllowedOrigins(cfg.Server.BaseURL, cfg.Server.AdditionalOrigins())
	devMode := !cfg.Server.IsRelease()

	api := engine.Group("/api")
	api.Use(middleware.OriginCheck(allowedOrigins, devMode, log))

	routes.SetupToolRoutes(api, &routes.ToolRouteConfig{
		ToolsHandler: toolsHandler,
		Limiter:      limiter,
		Logger:       log,
	})
	routes.SetupContactRoutes(api, &routes.ContactRouteConfig{
		ContactHandler: contactHandler,
		Limiter:        limiter,
		Logger:         log,
	})

	return &Router{engine: engine, logger: log}
}

func (r *Router) Engine() *gin.Engine {
	return r.engine
}
