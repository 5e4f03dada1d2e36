package router

import (
	"github.com/gin-gonic/gin"

	"github.com/topogame/TalentFlow-sub001/internal/config"
	"github.com/topogame/TalentFlow-sub001/internal/http/handlers"
	"github.com/topogame/TalentFlow-sub001/internal/http/middleware"
	"github.com/topogame/TalentFlow-sub001/internal/service"
)

func SetupRouter(
	cfg *config.Config,
	authHandler *handlers.AuthHandler,
	matchHandler *handlers.MatchHandler,
	processHandler *handlers.ProcessHandler,
	wsHandler *handlers.WSHandler,
	healthHandler *handlers.HealthHandler,
	tokenManager *service.TokenManager,
) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.Default()
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.CORSMiddleware(cfg.AllowedOrigins))

	r.GET("/health", healthHandler.Health)

	api := r.Group("/api")

	authGroup := api.Group("/auth")
	authGroup.Use(middleware.RateLimitMiddleware(5, cfg.RateLimitPeriod))
	{
		authGroup.POST("/login", authHandler.Login)
		authGroup.POST("/refresh", authHandler.Refresh)
	}

	api.GET("/ws", wsHandler.Handle)

	protected := api.Group("/")
	protected.Use(middleware.AuthMiddleware(tokenManager))
	{
		// Matching invokes the AI evaluator, so it carries its own limit.
		matchRateLimit := middleware.RateLimitMiddleware(cfg.RateLimitLimit, cfg.RateLimitPeriod)
		protected.GET("/positions/:id/matches", middleware.UUIDValidator("id"), matchRateLimit, matchHandler.GetMatches)

		protected.POST("/processes", processHandler.CreateProcess)
		protected.GET("/processes/:id", middleware.UUIDValidator("id"), processHandler.GetProcess)
		protected.PATCH("/processes/:id/stage", middleware.UUIDValidator("id"), processHandler.ChangeStage)
		protected.GET("/processes/:id/history", middleware.UUIDValidator("id"), processHandler.ListHistory)
	}

	return r
}
