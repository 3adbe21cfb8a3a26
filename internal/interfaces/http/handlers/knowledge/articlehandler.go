package knowledge

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"parley/internal/application/knowledge/usecases"
	"parley/internal/shared/errors"
	"parley/internal/shared/logger"
	"parley/internal/shared/utils"
)

type ArticleHandler struct {
	createArticleUC  usecases.CreateArticleExecutor
	updateArticleUC  usecases.UpdateArticleExecutor
	deleteArticleUC  usecases.DeleteArticleExecutor
	getArticleUC     usecases.GetArticleExecutor
	listArticlesUC   usecases.ListArticlesExecutor
	searchArticlesUC usecases.SearchArticlesExecutor
	logger           logger.Interface
}

func NewArticleHandler(
	createArticleUC usecases.CreateArticleExecutor,
	updateArticleUC usecases.UpdateArticleExecutor,
	deleteArticleUC usecases.DeleteArticleExecutor,
	getArticleUC usecases.GetArticleExecutor,
	listArticlesUC usecases.ListArticlesExecutor,
	searchArticlesUC usecases.SearchArticlesExecutor,
) *ArticleHandler {
	return &ArticleHandler{
		createArticleUC:  createArticleUC,
		updateArticleUC:  updateArticleUC,
		deleteArticleUC:  deleteArticleUC,
		getArticleUC:     getArticleUC,
		listArticlesUC:   listArticlesUC,
		searchArticlesUC: searchArticlesUC,
		logger:           logger.NewLogger(),
	}
}

// CreateArticle handles POST /kb/articles
func (h *ArticleHandler) CreateArticle(c *gin.Context) {
	var req CreateArticleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create article", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	userID, _ := c.Get("user_id")
	cmd := req.ToCommand(userID.(uint))

	result, err := h.createArticleUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Article created successfully")
}

// UpdateArticle handles PUT /kb/articles/:id
func (h *ArticleHandler) UpdateArticle(c *gin.Context) {
	articleID, err := parseArticleID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req UpdateArticleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	cmd := usecases.UpdateArticleCommand{
		ArticleID: articleID,
		Title:     req.Title,
		Content:   req.Content,
		IsPublic:  req.IsPublic,
	}

	result, err := h.updateArticleUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Article updated successfully", result)
}

// DeleteArticle handles DELETE /kb/articles/:id
func (h *ArticleHandler) DeleteArticle(c *gin.Context) {
	articleID, err := parseArticleID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	cmd := usecases.DeleteArticleCommand{
		ArticleID:     articleID,
		RequesterRole: c.GetString("user_role"),
	}

	_, err = h.deleteArticleUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}

// GetArticle handles GET /kb/articles/:id
func (h *ArticleHandler) GetArticle(c *gin.Context) {
	articleID, err := parseArticleID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	query := usecases.GetArticleQuery{
		ArticleID:     articleID,
		RequesterRole: c.GetString("user_role"),
		RenderHTML:    c.DefaultQuery("render", "true") != "false",
	}

	result, err := h.getArticleUC.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// ListArticles handles GET /kb/articles
func (h *ArticleHandler) ListArticles(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))

	query := usecases.ListArticlesQuery{
		RequesterRole: c.GetString("user_role"),
		Page:          page,
		PageSize:      pageSize,
	}

	result, err := h.listArticlesUC.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Articles, result.Total, result.Page, result.PageSize)
}

// SearchArticles handles GET /kb/search
func (h *ArticleHandler) SearchArticles(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "5"))

	query := usecases.SearchArticlesQuery{
		Query:         c.Query("q"),
		Limit:         limit,
		RequesterRole: c.GetString("user_role"),
	}

	results, err := h.searchArticlesUC.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", results)
}

func parseArticleID(c *gin.Context) (uint, error) {
	idStr := c.Param("id")
	id, err := strconv.ParseUint(idStr, 10, 32)
	if err != nil || id == 0 {
		return 0, errors.NewValidationError("Invalid article ID")
	}
	return uint(id), nil
}
