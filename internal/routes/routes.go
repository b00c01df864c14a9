package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"agenthub_backend/internal/config"
	"agenthub_backend/internal/handlers"
	"agenthub_backend/internal/middleware"
	"agenthub_backend/ws"
)

// RegisterRoutes mounts the full API surface under /api/v1.
func RegisterRoutes(engine *gin.Engine, appHandlers *handlers.AppHandlers, wsHandler *ws.Handler, cfg *config.Config) {
	engine.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := engine.Group("/api/v1")

	appHandlers.Auth.RegisterRoutes(api)
	appHandlers.Profile.RegisterRoutes(api)
	appHandlers.Agent.RegisterRoutes(api)
	appHandlers.Job.RegisterRoutes(api)
	appHandlers.Application.RegisterRoutes(api)
	appHandlers.Notification.RegisterRoutes(api)
	appHandlers.Payment.RegisterRoutes(api)

	// Uploaded files are public once stored.
	api.Static("/files", cfg.Storage.BasePath)

	// Live notification channel; the room is derived from the token.
	api.GET("/ws", middleware.AuthMiddleware(), wsHandler.ServeWS)
}
