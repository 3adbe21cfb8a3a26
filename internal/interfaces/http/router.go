package http

import (
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	knowledgeUsecases "parley/internal/application/knowledge/usecases"
	suggestionUsecases "parley/internal/application/suggestion/usecases"
	tagUsecases "parley/internal/application/tag/usecases"
	ticketUsecases "parley/internal/application/ticket/usecases"
	"parley/internal/domain/shared/events"
	"parley/internal/domain/ticket"
	"parley/internal/infrastructure/ai"
	"parley/internal/infrastructure/auth"
	"parley/internal/infrastructure/config"
	"parley/internal/infrastructure/pubsub"
	"parley/internal/infrastructure/repository"
	"parley/internal/infrastructure/storage"
	attachmenthandlers "parley/internal/interfaces/http/handlers/attachment"
	knowledgehandlers "parley/internal/interfaces/http/handlers/knowledge"
	streamhandlers "parley/internal/interfaces/http/handlers/stream"
	suggestionhandlers "parley/internal/interfaces/http/handlers/suggestion"
	taghandlers "parley/internal/interfaces/http/handlers/tag"
	tickethandlers "parley/internal/interfaces/http/handlers/ticket"
	"parley/internal/interfaces/http/middleware"
	"parley/internal/interfaces/http/routes"
	"parley/internal/shared/db"
	"parley/internal/shared/logger"
	"parley/internal/shared/services/markdown"
	"parley/internal/shared/utils"
)

// Router wires repositories, use cases and handlers into a gin engine.
type Router struct {
	engine            *gin.Engine
	cfg               *config.Config
	ticketHandler     *tickethandlers.TicketHandler
	messageHandler    *tickethandlers.MessageHandler
	noteHandler       *tickethandlers.NoteHandler
	articleHandler    *knowledgehandlers.ArticleHandler
	tagHandler        *taghandlers.TagHandler
	suggestionHandler *suggestionhandlers.SuggestionHandler
	streamHandler     *streamhandlers.StreamHandler
	attachmentHandler *attachmenthandlers.AttachmentHandler
	authMiddleware    *middleware.AuthMiddleware
	logger            logger.Interface
}

func NewRouter(
	gormDB *gorm.DB,
	redisClient *redis.Client,
	cfg *config.Config,
	dispatcher events.EventDispatcher,
	log logger.Interface,
) (*Router, error) {
	engine := gin.New()

	feed := pubsub.NewRedisChangeFeed(redisClient, log)

	ticketRepo := repository.NewTicketRepository(gormDB, feed)
	messageRepo := repository.NewMessageRepository(gormDB, feed)
	noteRepo := repository.NewNoteRepository(gormDB, feed)
	tagRepo := repository.NewTagRepository(gormDB)
	suggestionRepo := repository.NewSuggestionRepository(gormDB, feed)
	feedbackRepo := repository.NewFeedbackRepository(gormDB)
	articleRepo := repository.NewArticleRepository(gormDB)

	blobStore, err := storage.NewLocalStore(cfg.Storage)
	if err != nil {
		return nil, err
	}

	aiService := ai.NewOpenAIService(&cfg.OpenAI, log)
	markdownService := markdown.NewService()
	txManager := db.NewTransactionManager(gormDB)
	numberGen := ticket.NewDefaultNumberGenerator()

	createTicketUC := ticketUsecases.NewCreateTicketUseCase(ticketRepo, numberGen, log)
	getTicketUC := ticketUsecases.NewGetTicketUseCase(ticketRepo, log)
	listTicketsUC := ticketUsecases.NewListTicketsUseCase(ticketRepo, log)
	assignTicketUC := ticketUsecases.NewAssignTicketUseCase(ticketRepo, dispatcher, log)
	changeStatusUC := ticketUsecases.NewChangeStatusUseCase(ticketRepo, dispatcher, log)
	changePriorityUC := ticketUsecases.NewChangePriorityUseCase(ticketRepo, log)
	replaceTagsUC := ticketUsecases.NewReplaceTagsUseCase(ticketRepo, tagRepo, txManager, log)
	rateTicketUC := ticketUsecases.NewRateTicketUseCase(ticketRepo, log)
	deleteTicketUC := ticketUsecases.NewDeleteTicketUseCase(ticketRepo, log)
	addMessageUC := ticketUsecases.NewAddMessageUseCase(ticketRepo, messageRepo, log)
	listMessagesUC := ticketUsecases.NewListMessagesUseCase(ticketRepo, messageRepo, blobStore, log)
	deleteMessageUC := ticketUsecases.NewDeleteMessageUseCase(messageRepo, log)
	addNoteUC := ticketUsecases.NewAddNoteUseCase(ticketRepo, noteRepo, log)
	listNotesUC := ticketUsecases.NewListNotesUseCase(noteRepo, log)
	updateNoteUC := ticketUsecases.NewUpdateNoteUseCase(noteRepo, log)
	deleteNoteUC := ticketUsecases.NewDeleteNoteUseCase(noteRepo, log)

	createArticleUC := knowledgeUsecases.NewCreateArticleUseCase(articleRepo, aiService, log)
	updateArticleUC := knowledgeUsecases.NewUpdateArticleUseCase(articleRepo, aiService, log)
	deleteArticleUC := knowledgeUsecases.NewDeleteArticleUseCase(articleRepo, log)
	getArticleUC := knowledgeUsecases.NewGetArticleUseCase(articleRepo, markdownService, log)
	listArticlesUC := knowledgeUsecases.NewListArticlesUseCase(articleRepo, log)
	searchArticlesUC := knowledgeUsecases.NewSearchArticlesUseCase(articleRepo, aiService, log)

	createTagUC := tagUsecases.NewCreateTagUseCase(tagRepo, log)
	updateTagUC := tagUsecases.NewUpdateTagUseCase(tagRepo, log)
	deleteTagUC := tagUsecases.NewDeleteTagUseCase(tagRepo, log)
	listTagsUC := tagUsecases.NewListTagsUseCase(tagRepo, log)

	generateSuggestionUC := suggestionUsecases.NewGenerateSuggestionUseCase(
		ticketRepo, articleRepo, suggestionRepo,
		aiService, aiService,
		cfg.Suggestion.SimilarityThreshold, cfg.Suggestion.SearchLimit,
		log,
	)
	listActiveSuggestionsUC := suggestionUsecases.NewListActiveSuggestionsUseCase(suggestionRepo, log)
	acceptSuggestionUC := suggestionUsecases.NewAcceptSuggestionUseCase(suggestionRepo, messageRepo, articleRepo, log)
	rejectSuggestionUC := suggestionUsecases.NewRejectSuggestionUseCase(suggestionRepo, feedbackRepo, log)

	jwtService := auth.NewJWTService(cfg.Auth.JWT.Secret, cfg.Auth.JWT.AccessExpMinutes)
	authMiddleware := middleware.NewAuthMiddleware(jwtService, log)

	return &Router{
		engine: engine,
		cfg:    cfg,
		ticketHandler: tickethandlers.NewTicketHandler(
			createTicketUC, getTicketUC, listTicketsUC,
			assignTicketUC, changeStatusUC, changePriorityUC,
			replaceTagsUC, rateTicketUC, deleteTicketUC,
		),
		messageHandler: tickethandlers.NewMessageHandler(
			addMessageUC, listMessagesUC, deleteMessageUC, blobStore,
		),
		noteHandler: tickethandlers.NewNoteHandler(
			addNoteUC, listNotesUC, updateNoteUC, deleteNoteUC,
		),
		articleHandler: knowledgehandlers.NewArticleHandler(
			createArticleUC, updateArticleUC, deleteArticleUC,
			getArticleUC, listArticlesUC, searchArticlesUC,
		),
		tagHandler: taghandlers.NewTagHandler(
			createTagUC, updateTagUC, deleteTagUC, listTagsUC,
		),
		suggestionHandler: suggestionhandlers.NewSuggestionHandler(
			generateSuggestionUC, listActiveSuggestionsUC,
			acceptSuggestionUC, rejectSuggestionUC,
		),
		streamHandler:     streamhandlers.NewStreamHandler(feed, getTicketUC),
		attachmentHandler: attachmenthandlers.NewAttachmentHandler(blobStore),
		authMiddleware:    authMiddleware,
		logger:            log,
	}, nil
}

// SetupRoutes configures all HTTP routes
func (r *Router) SetupRoutes() {
	r.engine.Use(middleware.Logger(r.logger))
	r.engine.Use(middleware.Recovery())
	r.engine.Use(middleware.CORS(r.cfg.Server.AllowedOrigins))

	r.engine.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// Lightweight token introspection for clients establishing a session.
	r.engine.GET("/me", r.authMiddleware.RequireAuth(), func(c *gin.Context) {
		userID, _ := c.Get("user_id")
		utils.SuccessResponse(c, 200, "", gin.H{
			"user_id":   userID,
			"user_role": c.GetString("user_role"),
		})
	})

	routes.SetupTicketRoutes(r.engine, &routes.TicketRouteConfig{
		TicketHandler:  r.ticketHandler,
		MessageHandler: r.messageHandler,
		NoteHandler:    r.noteHandler,
		AuthMiddleware: r.authMiddleware,
	})

	routes.SetupKnowledgeRoutes(r.engine, &routes.KnowledgeRouteConfig{
		ArticleHandler: r.articleHandler,
		AuthMiddleware: r.authMiddleware,
	})

	routes.SetupTagRoutes(r.engine, &routes.TagRouteConfig{
		TagHandler:     r.tagHandler,
		AuthMiddleware: r.authMiddleware,
	})

	routes.SetupSuggestionRoutes(r.engine, &routes.SuggestionRouteConfig{
		SuggestionHandler: r.suggestionHandler,
		AuthMiddleware:    r.authMiddleware,
	})

	routes.SetupStreamRoutes(r.engine, &routes.StreamRouteConfig{
		StreamHandler:     r.streamHandler,
		AttachmentHandler: r.attachmentHandler,
		AuthMiddleware:    r.authMiddleware,
	})
}

// GetEngine returns the Gin engine
func (r *Router) GetEngine() *gin.Engine {
	return r.engine
}
