package handlers

import (
	"github.com/gin-gonic/gin"

	"inakat_backend/internal/services"
	"inakat_backend/internal/services/dto"
	"inakat_backend/internal/validator"
	"inakat_backend/pkg/apperrors"
)

type ApplicationHandler struct {
	BaseHandler
	applicationService services.ApplicationService
}

func NewApplicationHandler(v *validator.Validator, applicationService services.ApplicationService) *ApplicationHandler {
	return &ApplicationHandler{
		BaseHandler:        NewBaseHandler(v),
		applicationService: applicationService,
	}
}

func (h *ApplicationHandler) ListByJob(c *gin.Context) {
	jobID, ok := h.IDParam(c, "id")
	if !ok {
		return
	}

	applications, err := h.applicationService.ListByJob(jobID)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	h.OK(c, gin.H{"applications": applications, "count": len(applications)})
}

// Create is the public apply endpoint for a job.
func (h *ApplicationHandler) Create(c *gin.Context) {
	jobID, ok := h.IDParam(c, "id")
	if !ok {
		return
	}

	var req dto.CreateApplicationRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	application, err := h.applicationService.Create(jobID, &req)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	h.Created(c, application)
}

func (h *ApplicationHandler) UpdateStatus(c *gin.Context) {
	id, ok := h.IDParam(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateApplicationStatusRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	application, err := h.applicationService.UpdateStatus(id, &req)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	h.OK(c, application)
}
