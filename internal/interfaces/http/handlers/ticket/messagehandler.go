package ticket

import (
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"parley/internal/application/ticket/usecases"
	"parley/internal/domain/ticket"
	"parley/internal/shared/errors"
	"parley/internal/shared/logger"
	"parley/internal/shared/utils"
)

const maxAttachmentsPerMessage = 5

// BlobStore persists attachment payloads and hands back storage path keys.
type BlobStore interface {
	Store(fileName string, r io.Reader) (string, error)
}

type MessageHandler struct {
	addMessageUC    usecases.AddMessageExecutor
	listMessagesUC  usecases.ListMessagesExecutor
	deleteMessageUC usecases.DeleteMessageExecutor
	blobStore       BlobStore
	logger          logger.Interface
}

func NewMessageHandler(
	addMessageUC usecases.AddMessageExecutor,
	listMessagesUC usecases.ListMessagesExecutor,
	deleteMessageUC usecases.DeleteMessageExecutor,
	blobStore BlobStore,
) *MessageHandler {
	return &MessageHandler{
		addMessageUC:    addMessageUC,
		listMessagesUC:  listMessagesUC,
		deleteMessageUC: deleteMessageUC,
		blobStore:       blobStore,
		logger:          logger.NewLogger(),
	}
}

// AddMessage handles POST /tickets/:id/messages. Plain JSON bodies carry
// text only; multipart bodies carry a text field plus attachment files.
func (h *MessageHandler) AddMessage(c *gin.Context) {
	ticketID, err := parseTicketID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var text string
	var attachments []ticket.Attachment

	if strings.HasPrefix(c.ContentType(), "multipart/form-data") {
		text, attachments, err = h.parseMultipartMessage(c)
		if err != nil {
			utils.ErrorResponseWithError(c, err)
			return
		}
	} else {
		var req AddMessageRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			h.logger.Warnw("invalid request body for add message", "error", err)
			utils.ErrorResponseWithError(c, err)
			return
		}
		text = req.Text
	}

	userID, _ := c.Get("user_id")
	cmd := usecases.AddMessageCommand{
		TicketID:    ticketID,
		AuthorID:    userID.(uint),
		AuthorRole:  c.GetString("user_role"),
		Text:        text,
		Attachments: attachments,
	}

	result, err := h.addMessageUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Message added successfully")
}

// ListMessages handles GET /tickets/:id/messages
func (h *MessageHandler) ListMessages(c *gin.Context) {
	ticketID, err := parseTicketID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	userID, _ := c.Get("user_id")
	query := usecases.ListMessagesQuery{
		TicketID:      ticketID,
		RequesterID:   userID.(uint),
		RequesterRole: c.GetString("user_role"),
	}

	messages, err := h.listMessagesUC.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", messages)
}

// DeleteMessage handles DELETE /messages/:id
func (h *MessageHandler) DeleteMessage(c *gin.Context) {
	idStr := c.Param("id")
	id, err := strconv.ParseUint(idStr, 10, 32)
	if err != nil || id == 0 {
		utils.ErrorResponseWithError(c, errors.NewValidationError("Invalid message ID"))
		return
	}

	userID, _ := c.Get("user_id")
	cmd := usecases.DeleteMessageCommand{
		MessageID:     uint(id),
		RequesterID:   userID.(uint),
		RequesterRole: c.GetString("user_role"),
	}

	_, err = h.deleteMessageUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}

func (h *MessageHandler) parseMultipartMessage(c *gin.Context) (string, []ticket.Attachment, error) {
	form, err := c.MultipartForm()
	if err != nil {
		return "", nil, errors.NewValidationError("Invalid multipart form")
	}

	var text string
	if values := form.Value["text"]; len(values) > 0 {
		text = values[0]
	}

	// Multipart bodies bypass gin's binding, so the same constraints
	// are enforced here before any attachment is persisted.
	if err := utils.ValidateStruct(AddMessageRequest{Text: text}); err != nil {
		return "", nil, err
	}

	files := form.File["attachments"]
	if len(files) > maxAttachmentsPerMessage {
		return "", nil, errors.NewValidationError("Too many attachments")
	}

	attachments := make([]ticket.Attachment, 0, len(files))
	for _, fileHeader := range files {
		f, err := fileHeader.Open()
		if err != nil {
			return "", nil, errors.NewInternalError("failed to read attachment")
		}

		storagePath, err := h.blobStore.Store(fileHeader.Filename, f)
		f.Close()
		if err != nil {
			h.logger.Errorw("failed to store attachment", "error", err, "file_name", fileHeader.Filename)
			return "", nil, errors.NewInternalError("failed to store attachment")
		}

		attachments = append(attachments, ticket.Attachment{
			FileName:    fileHeader.Filename,
			ContentType: fileHeader.Header.Get("Content-Type"),
			SizeBytes:   fileHeader.Size,
			StoragePath: storagePath,
		})
	}

	return text, attachments, nil
}
