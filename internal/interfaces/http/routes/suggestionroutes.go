package routes

import (
	"github.com/gin-gonic/gin"

	suggestionhandlers "parley/internal/interfaces/http/handlers/suggestion"
	"parley/internal/interfaces/http/middleware"
	"parley/internal/shared/authorization"
)

type SuggestionRouteConfig struct {
	SuggestionHandler *suggestionhandlers.SuggestionHandler
	AuthMiddleware    *middleware.AuthMiddleware
}

func SetupSuggestionRoutes(engine *gin.Engine, config *SuggestionRouteConfig) {
	suggestions := engine.Group("/suggestions")
	suggestions.Use(config.AuthMiddleware.RequireAuth(), authorization.RequireStaff())
	{
		suggestions.POST("/generate",
			config.SuggestionHandler.GenerateSuggestion)
		suggestions.POST("/:id/accept",
			config.SuggestionHandler.AcceptSuggestion)
		suggestions.POST("/:id/reject",
			config.SuggestionHandler.RejectSuggestion)
	}

	tickets := engine.Group("/tickets")
	tickets.Use(config.AuthMiddleware.RequireAuth(), authorization.RequireStaff())
	{
		tickets.GET("/:id/suggestions",
			config.SuggestionHandler.ListActiveSuggestions)
	}
}
