package ticket

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"parley/internal/application/ticket/usecases"
	"parley/internal/shared/errors"
	"parley/internal/shared/logger"
	"parley/internal/shared/utils"
)

type NoteHandler struct {
	addNoteUC    usecases.AddNoteExecutor
	listNotesUC  usecases.ListNotesExecutor
	updateNoteUC usecases.UpdateNoteExecutor
	deleteNoteUC usecases.DeleteNoteExecutor
	logger       logger.Interface
}

func NewNoteHandler(
	addNoteUC usecases.AddNoteExecutor,
	listNotesUC usecases.ListNotesExecutor,
	updateNoteUC usecases.UpdateNoteExecutor,
	deleteNoteUC usecases.DeleteNoteExecutor,
) *NoteHandler {
	return &NoteHandler{
		addNoteUC:    addNoteUC,
		listNotesUC:  listNotesUC,
		updateNoteUC: updateNoteUC,
		deleteNoteUC: deleteNoteUC,
		logger:       logger.NewLogger(),
	}
}

// AddNote handles POST /tickets/:id/notes
func (h *NoteHandler) AddNote(c *gin.Context) {
	ticketID, err := parseTicketID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req AddNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for add note", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	userID, _ := c.Get("user_id")
	cmd := usecases.AddNoteCommand{
		TicketID:   ticketID,
		AuthorID:   userID.(uint),
		AuthorRole: c.GetString("user_role"),
		Body:       req.Body,
		Visibility: req.Visibility,
	}

	result, err := h.addNoteUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Note added successfully")
}

// ListNotes handles GET /tickets/:id/notes
func (h *NoteHandler) ListNotes(c *gin.Context) {
	ticketID, err := parseTicketID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	userID, _ := c.Get("user_id")
	query := usecases.ListNotesQuery{
		TicketID:      ticketID,
		RequesterID:   userID.(uint),
		RequesterRole: c.GetString("user_role"),
	}

	notes, err := h.listNotesUC.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", notes)
}

// UpdateNote handles PUT /notes/:id
func (h *NoteHandler) UpdateNote(c *gin.Context) {
	noteID, err := parseNoteID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req UpdateNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	userID, _ := c.Get("user_id")
	cmd := usecases.UpdateNoteCommand{
		NoteID:      noteID,
		Body:        req.Body,
		Visibility:  req.Visibility,
		RequesterID: userID.(uint),
	}

	result, err := h.updateNoteUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Note updated successfully", result)
}

// DeleteNote handles DELETE /notes/:id
func (h *NoteHandler) DeleteNote(c *gin.Context) {
	noteID, err := parseNoteID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	userID, _ := c.Get("user_id")
	cmd := usecases.DeleteNoteCommand{
		NoteID:      noteID,
		RequesterID: userID.(uint),
	}

	_, err = h.deleteNoteUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}

func parseNoteID(c *gin.Context) (uint, error) {
	idStr := c.Param("id")
	id, err := strconv.ParseUint(idStr, 10, 32)
	if err != nil || id == 0 {
		return 0, errors.NewValidationError("Invalid note ID")
	}
	return uint(id), nil
}
