package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"inakat_backend/internal/services"
	"inakat_backend/internal/services/dto"
	"inakat_backend/internal/validator"
	"inakat_backend/pkg/apperrors"
)

type JobHandler struct {
	BaseHandler
	jobService services.JobService
}

func NewJobHandler(v *validator.Validator, jobService services.JobService) *JobHandler {
	return &JobHandler{
		BaseHandler: NewBaseHandler(v),
		jobService:  jobService,
	}
}

// List serves the public board. ?includeInactive=true is only meaningful
// on the admin route; the public route always filters to active.
func (h *JobHandler) List(c *gin.Context) {
	activeOnly := c.Query("includeInactive") != "true"
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	list, err := h.jobService.List(activeOnly, limit, offset)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	h.OK(c, gin.H{"jobs": list.Jobs, "total": list.Total})
}

func (h *JobHandler) Get(c *gin.Context) {
	id, ok := h.IDParam(c, "id")
	if !ok {
		return
	}

	job, err := h.jobService.Get(id)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	h.OK(c, job)
}

func (h *JobHandler) Create(c *gin.Context) {
	var req dto.CreateJobRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	job, err := h.jobService.Create(&req)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	h.Created(c, job)
}

func (h *JobHandler) Update(c *gin.Context) {
	id, ok := h.IDParam(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateJobRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	job, err := h.jobService.Update(id, &req)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	h.OK(c, job)
}

func (h *JobHandler) Delete(c *gin.Context) {
	id, ok := h.IDParam(c, "id")
	if !ok {
		return
	}

	if err := h.jobService.Delete(id); err != nil {
		apperrors.HandleError(c, err)
		return
	}
	h.OK(c, gin.H{"message": "Job deleted"})
}
