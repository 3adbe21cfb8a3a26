package attachment

import (
	"io"
	"mime"
	"net/http"
	"path/filepath"

	"github.com/gin-gonic/gin"

	"parley/internal/shared/errors"
	"parley/internal/shared/logger"
	"parley/internal/shared/utils"
)

// BlobReader opens stored attachment payloads by their storage path key.
type BlobReader interface {
	Open(storagePath string) (io.ReadCloser, error)
}

type AttachmentHandler struct {
	blobs  BlobReader
	logger logger.Interface
}

func NewAttachmentHandler(blobs BlobReader) *AttachmentHandler {
	return &AttachmentHandler{
		blobs:  blobs,
		logger: logger.NewLogger(),
	}
}

// Download handles GET /attachments/:key. Keys are opaque generated
// names; the store rejects anything that traverses out of its base path.
func (h *AttachmentHandler) Download(c *gin.Context) {
	key := c.Param("key")
	if key == "" {
		utils.ErrorResponseWithError(c, errors.NewValidationError("Invalid attachment key"))
		return
	}

	f, err := h.blobs.Open(key)
	if err != nil {
		utils.ErrorResponseWithError(c, errors.NewNotFoundError("attachment not found"))
		return
	}
	defer f.Close()

	contentType := mime.TypeByExtension(filepath.Ext(key))
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	c.Header("Content-Type", contentType)
	c.Status(http.StatusOK)
	if _, err := io.Copy(c.Writer, f); err != nil {
		h.logger.Warnw("failed to write attachment response", "error", err, "key", key)
	}
}
