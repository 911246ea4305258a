package handlers

import (
	"github.com/gin-gonic/gin"

	"inakat_backend/internal/models"
	"inakat_backend/internal/services"
	"inakat_backend/internal/services/dto"
	"inakat_backend/internal/validator"
	"inakat_backend/pkg/apperrors"
	"inakat_backend/pkg/contextkeys"
)

type CompanyRequestHandler struct {
	BaseHandler
	requestService services.CompanyRequestService
}

func NewCompanyRequestHandler(v *validator.Validator, requestService services.CompanyRequestService) *CompanyRequestHandler {
	return &CompanyRequestHandler{
		BaseHandler:    NewBaseHandler(v),
		requestService: requestService,
	}
}

// List is admin-only. ?status=pending|approved|rejected filters; empty
// returns all.
func (h *CompanyRequestHandler) List(c *gin.Context) {
	status := models.RequestStatus(c.Query("status"))
	switch status {
	case "", models.RequestStatusPending, models.RequestStatusApproved, models.RequestStatusRejected:
	default:
		apperrors.HandleError(c, apperrors.NewBadRequestError("Invalid status filter"))
		return
	}

	requests, err := h.requestService.List(status)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	h.OK(c, gin.H{"requests": requests, "count": len(requests)})
}

func (h *CompanyRequestHandler) Get(c *gin.Context) {
	id, ok := h.IDParam(c, "id")
	if !ok {
		return
	}

	request, err := h.requestService.Get(id)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	h.OK(c, request)
}

// Create is the public company registration form endpoint.
func (h *CompanyRequestHandler) Create(c *gin.Context) {
	var req dto.CreateCompanyRequestRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	request, err := h.requestService.Create(&req)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	h.Created(c, request)
}

func (h *CompanyRequestHandler) Approve(c *gin.Context) {
	id, ok := h.IDParam(c, "id")
	if !ok {
		return
	}
	reviewerID := c.GetUint(contextkeys.UserIDKey)

	request, err := h.requestService.Approve(id, reviewerID)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	h.OK(c, request)
}

func (h *CompanyRequestHandler) Reject(c *gin.Context) {
	id, ok := h.IDParam(c, "id")
	if !ok {
		return
	}
	reviewerID := c.GetUint(contextkeys.UserIDKey)

	var req dto.RejectCompanyRequestRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	request, err := h.requestService.Reject(id, reviewerID, req.Reason)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	h.OK(c, request)
}
