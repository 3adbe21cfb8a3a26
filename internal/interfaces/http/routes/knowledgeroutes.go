package routes

import (
	"github.com/gin-gonic/gin"

	knowledgehandlers "parley/internal/interfaces/http/handlers/knowledge"
	"parley/internal/interfaces/http/middleware"
	"parley/internal/shared/authorization"
)

type KnowledgeRouteConfig struct {
	ArticleHandler *knowledgehandlers.ArticleHandler
	AuthMiddleware *middleware.AuthMiddleware
}

func SetupKnowledgeRoutes(engine *gin.Engine, config *KnowledgeRouteConfig) {
	kb := engine.Group("/kb")
	kb.Use(config.AuthMiddleware.RequireAuth())
	{
		// Search registers before /articles/:id so "search" is never
		// captured as an article ID.
		kb.GET("/search",
			config.ArticleHandler.SearchArticles)

		kb.POST("/articles",
			authorization.RequireAdmin(),
			config.ArticleHandler.CreateArticle)
		kb.GET("/articles",
			config.ArticleHandler.ListArticles)

		kb.GET("/articles/:id",
			config.ArticleHandler.GetArticle)
		kb.PUT("/articles/:id",
			authorization.RequireAdmin(),
			config.ArticleHandler.UpdateArticle)
		kb.DELETE("/articles/:id",
			authorization.RequireAdmin(),
			config.ArticleHandler.DeleteArticle)
	}
}
