package routes

import (
	"github.com/gin-gonic/gin"

	attachmenthandlers "parley/internal/interfaces/http/handlers/attachment"
	streamhandlers "parley/internal/interfaces/http/handlers/stream"
	"parley/internal/interfaces/http/middleware"
)

type StreamRouteConfig struct {
	StreamHandler     *streamhandlers.StreamHandler
	AttachmentHandler *attachmenthandlers.AttachmentHandler
	AuthMiddleware    *middleware.AuthMiddleware
}

func SetupStreamRoutes(engine *gin.Engine, config *StreamRouteConfig) {
	// EventSource clients authenticate via the ?token= fallback in
	// RequireAuth since they cannot set headers.
	stream := engine.Group("/stream")
	stream.Use(config.AuthMiddleware.RequireAuth())
	{
		stream.GET("/tickets",
			config.StreamHandler.StreamTickets)
		stream.GET("/tickets/:id",
			config.StreamHandler.StreamTicket)
	}

	attachments := engine.Group("/attachments")
	attachments.Use(config.AuthMiddleware.RequireAuth())
	{
		attachments.GET("/:key",
			config.AttachmentHandler.Download)
	}
}
