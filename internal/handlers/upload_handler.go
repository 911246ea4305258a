package handlers

import (
	"github.com/gin-gonic/gin"

	"inakat_backend/internal/services"
	"inakat_backend/internal/validator"
	"inakat_backend/pkg/apperrors"
)

type UploadHandler struct {
	BaseHandler
	uploadService services.UploadService
}

func NewUploadHandler(v *validator.Validator, uploadService services.UploadService) *UploadHandler {
	return &UploadHandler{
		BaseHandler:   NewBaseHandler(v),
		uploadService: uploadService,
	}
}

// Upload accepts a multipart form with a "file" field and an optional
// "category" field (cv, identification, documents).
func (h *UploadHandler) Upload(c *gin.Context) {
	header, err := c.FormFile("file")
	if err != nil {
		apperrors.HandleError(c, apperrors.NewBadRequestError("Missing file field"))
		return
	}

	result, err := h.uploadService.Upload(c.Request.Context(), c.PostForm("category"), header)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	h.Created(c, result)
}
