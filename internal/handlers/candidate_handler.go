package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"inakat_backend/internal/services"
	"inakat_backend/internal/services/dto"
	"inakat_backend/internal/validator"
	"inakat_backend/pkg/apperrors"
)

type CandidateHandler struct {
	BaseHandler
	candidateService services.CandidateService
}

func NewCandidateHandler(v *validator.Validator, candidateService services.CandidateService) *CandidateHandler {
	return &CandidateHandler{
		BaseHandler:      NewBaseHandler(v),
		candidateService: candidateService,
	}
}

func (h *CandidateHandler) List(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	list, err := h.candidateService.List(limit, offset)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	h.OK(c, gin.H{"candidates": list.Candidates, "total": list.Total})
}

func (h *CandidateHandler) Get(c *gin.Context) {
	id, ok := h.IDParam(c, "id")
	if !ok {
		return
	}

	candidate, err := h.candidateService.Get(id)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	h.OK(c, candidate)
}

// Create is the public candidate registration endpoint.
func (h *CandidateHandler) Create(c *gin.Context) {
	var req dto.CreateCandidateRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	candidate, err := h.candidateService.Create(&req)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	h.Created(c, candidate)
}
