package app

import (
	"github.com/gin-gonic/gin"

	"github.com/mooncoven/mooncoven-backend/internal/http/middleware"
	"github.com/mooncoven/mooncoven-backend/internal/pkg/logger"
)

func wireRouter(log *logger.Logger, cfg Config, h Handlers) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLog(log))
	router.Use(middleware.CORS(cfg.AllowedOrigins))

	router.GET("/healthz", h.Health.Check)

	auth := middleware.NewAuthMiddleware(log, cfg.JWTSecretKey)
	api := router.Group("/api", auth.RequireAuth())
	{
		api.POST("/draw/today", h.Draw.Today)
		api.GET("/draw/today", h.Draw.GetToday)
		api.GET("/draw/history", h.Draw.History)

		api.POST("/altar/candles", h.Altar.Light)
		api.GET("/altar/candles/active", h.Altar.ListActive)

		api.POST("/social/toggle", h.Social.Toggle)
		api.GET("/social/:kind/:target", h.Social.IsSet)

		api.POST("/activity/seen", h.Activity.MarkSeen)
		api.GET("/activity/cursor", h.Activity.GetCursor)
	}

	return router
}
