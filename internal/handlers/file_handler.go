package handlers

import (
	"io"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"

	"inakat_backend/internal/storage"
	"inakat_backend/pkg/apperrors"
)

// FileHandler streams stored documents (CVs, identification papers). These
// are opened by link navigation from the admin screens, so the route sits
// behind the page gate rather than the JSON gate.
type FileHandler struct {
	store storage.Storage
}

func NewFileHandler(store storage.Storage) *FileHandler {
	return &FileHandler{store: store}
}

func (h *FileHandler) Serve(c *gin.Context) {
	key := strings.TrimPrefix(c.Param("filepath"), "/")
	if key == "" || strings.Contains(key, "..") {
		apperrors.HandleError(c, apperrors.NewBadRequestError("Invalid file path"))
		return
	}

	reader, err := h.store.Get(c.Request.Context(), key)
	if err != nil {
		apperrors.HandleError(c, apperrors.NewNotFoundError("file", "File not found"))
		return
	}
	defer reader.Close()

	c.Header("Content-Type", contentTypeForKey(key))
	c.Status(http.StatusOK)
	_, _ = io.Copy(c.Writer, reader)
}

func contentTypeForKey(key string) string {
	switch strings.ToLower(filepath.Ext(key)) {
	case ".pdf":
		return "application/pdf"
	case ".jpg", ".jpeg":
		return "image/jpeg"
	case ".png":
		return "image/png"
	default:
		return "application/octet-stream"
	}
}
