package tag

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"parley/internal/application/tag/usecases"
	"parley/internal/shared/errors"
	"parley/internal/shared/logger"
	"parley/internal/shared/utils"
)

type TagHandler struct {
	createTagUC usecases.CreateTagExecutor
	updateTagUC usecases.UpdateTagExecutor
	deleteTagUC usecases.DeleteTagExecutor
	listTagsUC  usecases.ListTagsExecutor
	logger      logger.Interface
}

func NewTagHandler(
	createTagUC usecases.CreateTagExecutor,
	updateTagUC usecases.UpdateTagExecutor,
	deleteTagUC usecases.DeleteTagExecutor,
	listTagsUC usecases.ListTagsExecutor,
) *TagHandler {
	return &TagHandler{
		createTagUC: createTagUC,
		updateTagUC: updateTagUC,
		deleteTagUC: deleteTagUC,
		listTagsUC:  listTagsUC,
		logger:      logger.NewLogger(),
	}
}

// CreateTag handles POST /tags
func (h *TagHandler) CreateTag(c *gin.Context) {
	var req CreateTagRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create tag", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	cmd := usecases.CreateTagCommand{
		Name:  req.Name,
		Color: req.Color,
	}

	result, err := h.createTagUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Tag created successfully")
}

// UpdateTag handles PUT /tags/:id
func (h *TagHandler) UpdateTag(c *gin.Context) {
	tagID, err := parseTagID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req UpdateTagRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	cmd := usecases.UpdateTagCommand{
		TagID: tagID,
		Name:  req.Name,
		Color: req.Color,
	}

	result, err := h.updateTagUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Tag updated successfully", result)
}

// DeleteTag handles DELETE /tags/:id
func (h *TagHandler) DeleteTag(c *gin.Context) {
	tagID, err := parseTagID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	cmd := usecases.DeleteTagCommand{
		TagID:         tagID,
		RequesterRole: c.GetString("user_role"),
	}

	_, err = h.deleteTagUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}

// ListTags handles GET /tags
func (h *TagHandler) ListTags(c *gin.Context) {
	tags, err := h.listTagsUC.Execute(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", tags)
}

func parseTagID(c *gin.Context) (uint, error) {
	idStr := c.Param("id")
	id, err := strconv.ParseUint(idStr, 10, 32)
	if err != nil || id == 0 {
		return 0, errors.NewValidationError("Invalid tag ID")
	}
	return uint(id), nil
}
