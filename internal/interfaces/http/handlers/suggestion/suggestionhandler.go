package suggestion

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"parley/internal/application/suggestion/usecases"
	"parley/internal/shared/errors"
	"parley/internal/shared/logger"
	"parley/internal/shared/utils"
)

type SuggestionHandler struct {
	generateUC   usecases.GenerateSuggestionExecutor
	listActiveUC usecases.ListActiveSuggestionsExecutor
	acceptUC     usecases.AcceptSuggestionExecutor
	rejectUC     usecases.RejectSuggestionExecutor
	logger       logger.Interface
}

func NewSuggestionHandler(
	generateUC usecases.GenerateSuggestionExecutor,
	listActiveUC usecases.ListActiveSuggestionsExecutor,
	acceptUC usecases.AcceptSuggestionExecutor,
	rejectUC usecases.RejectSuggestionExecutor,
) *SuggestionHandler {
	return &SuggestionHandler{
		generateUC:   generateUC,
		listActiveUC: listActiveUC,
		acceptUC:     acceptUC,
		rejectUC:     rejectUC,
		logger:       logger.NewLogger(),
	}
}

// GenerateSuggestion handles POST /suggestions/generate. Unlike the
// worker path this surfaces pipeline failures to the caller.
func (h *SuggestionHandler) GenerateSuggestion(c *gin.Context) {
	var req GenerateSuggestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for generate suggestion", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	cmd := usecases.GenerateSuggestionCommand{
		TicketID: req.TicketID,
	}

	result, err := h.generateUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Suggestion generated successfully")
}

// ListActiveSuggestions handles GET /tickets/:id/suggestions
func (h *SuggestionHandler) ListActiveSuggestions(c *gin.Context) {
	idStr := c.Param("id")
	id, err := strconv.ParseUint(idStr, 10, 32)
	if err != nil || id == 0 {
		utils.ErrorResponseWithError(c, errors.NewValidationError("Invalid ticket ID"))
		return
	}

	query := usecases.ListActiveSuggestionsQuery{TicketID: uint(id)}

	suggestions, err := h.listActiveUC.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", suggestions)
}

// AcceptSuggestion handles POST /suggestions/:id/accept
func (h *SuggestionHandler) AcceptSuggestion(c *gin.Context) {
	suggestionID, err := parseSuggestionID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	userID, _ := c.Get("user_id")
	cmd := usecases.AcceptSuggestionCommand{
		SuggestionID: suggestionID,
		AcceptedBy:   userID.(uint),
	}

	result, err := h.acceptUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Suggestion accepted", result)
}

// RejectSuggestion handles POST /suggestions/:id/reject
func (h *SuggestionHandler) RejectSuggestion(c *gin.Context) {
	suggestionID, err := parseSuggestionID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req RejectSuggestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	userID, _ := c.Get("user_id")
	cmd := usecases.RejectSuggestionCommand{
		SuggestionID: suggestionID,
		Reason:       req.Reason,
		RejectedBy:   userID.(uint),
	}

	result, err := h.rejectUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Suggestion rejected", result)
}

func parseSuggestionID(c *gin.Context) (uint, error) {
	idStr := c.Param("id")
	id, err := strconv.ParseUint(idStr, 10, 32)
	if err != nil || id == 0 {
		return 0, errors.NewValidationError("Invalid suggestion ID")
	}
	return uint(id), nil
}
