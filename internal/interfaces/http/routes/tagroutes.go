package routes

import (
	"github.com/gin-gonic/gin"

	taghandlers "parley/internal/interfaces/http/handlers/tag"
	"parley/internal/interfaces/http/middleware"
	"parley/internal/shared/authorization"
)

type TagRouteConfig struct {
	TagHandler     *taghandlers.TagHandler
	AuthMiddleware *middleware.AuthMiddleware
}

func SetupTagRoutes(engine *gin.Engine, config *TagRouteConfig) {
	tags := engine.Group("/tags")
	tags.Use(config.AuthMiddleware.RequireAuth())
	{
		tags.GET("",
			config.TagHandler.ListTags)
		tags.POST("",
			authorization.RequireStaff(),
			config.TagHandler.CreateTag)
		tags.PUT("/:id",
			authorization.RequireStaff(),
			config.TagHandler.UpdateTag)
		tags.DELETE("/:id",
			authorization.RequireAdmin(),
			config.TagHandler.DeleteTag)
	}
}
