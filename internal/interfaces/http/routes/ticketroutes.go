package routes

import (
	"github.com/gin-gonic/gin"

	tickethandlers "parley/internal/interfaces/http/handlers/ticket"
	"parley/internal/interfaces/http/middleware"
	"parley/internal/shared/authorization"
)

type TicketRouteConfig struct {
	TicketHandler  *tickethandlers.TicketHandler
	MessageHandler *tickethandlers.MessageHandler
	NoteHandler    *tickethandlers.NoteHandler
	AuthMiddleware *middleware.AuthMiddleware
}

func SetupTicketRoutes(engine *gin.Engine, config *TicketRouteConfig) {
	tickets := engine.Group("/tickets")
	tickets.Use(config.AuthMiddleware.RequireAuth())
	{
		// IMPORTANT: Register specific paths BEFORE parameterized paths to avoid route conflicts

		// Collection operations (no ID parameter)
		tickets.POST("",
			config.TicketHandler.CreateTicket)
		tickets.GET("",
			config.TicketHandler.ListTickets)

		// Specific action endpoints (must come BEFORE /:id to avoid conflicts)
		tickets.POST("/:id/assign",
			authorization.RequireStaff(),
			config.TicketHandler.AssignTicket)
		tickets.PATCH("/:id/status",
			authorization.RequireStaff(),
			config.TicketHandler.ChangeStatus)
		tickets.PATCH("/:id/priority",
			authorization.RequireStaff(),
			config.TicketHandler.ChangePriority)
		tickets.PUT("/:id/tags",
			authorization.RequireStaff(),
			config.TicketHandler.ReplaceTags)
		tickets.POST("/:id/rate",
			config.TicketHandler.RateTicket)

		tickets.POST("/:id/messages",
			config.MessageHandler.AddMessage)
		tickets.GET("/:id/messages",
			config.MessageHandler.ListMessages)
		tickets.POST("/:id/notes",
			authorization.RequireStaff(),
			config.NoteHandler.AddNote)
		tickets.GET("/:id/notes",
			config.NoteHandler.ListNotes)

		// Generic parameterized routes (must come LAST)
		tickets.GET("/:id",
			config.TicketHandler.GetTicket)
		tickets.DELETE("/:id",
			authorization.RequireAdmin(),
			config.TicketHandler.DeleteTicket)
	}

	messages := engine.Group("/messages")
	messages.Use(config.AuthMiddleware.RequireAuth())
	{
		messages.DELETE("/:id",
			config.MessageHandler.DeleteMessage)
	}

	notes := engine.Group("/notes")
	notes.Use(config.AuthMiddleware.RequireAuth(), authorization.RequireStaff())
	{
		notes.PUT("/:id",
			config.NoteHandler.UpdateNote)
		notes.DELETE("/:id",
			config.NoteHandler.DeleteNote)
	}
}
