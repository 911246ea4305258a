package handlers

import (
	"github.com/gin-gonic/gin"

	"inakat_backend/internal/services"
	"inakat_backend/internal/services/dto"
	"inakat_backend/internal/validator"
	"inakat_backend/pkg/apperrors"
)

type PricingHandler struct {
	BaseHandler
	pricingService services.PricingService
}

func NewPricingHandler(v *validator.Validator, pricingService services.PricingService) *PricingHandler {
	return &PricingHandler{
		BaseHandler:    NewBaseHandler(v),
		pricingService: pricingService,
	}
}

func (h *PricingHandler) List(c *gin.Context) {
	activeOnly := c.Query("includeInactive") != "true"

	rules, err := h.pricingService.List(activeOnly)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	h.OK(c, gin.H{"rules": rules, "count": len(rules)})
}

func (h *PricingHandler) Create(c *gin.Context) {
	var req dto.CreatePricingRuleRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	rule, err := h.pricingService.Create(&req)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	h.Created(c, rule)
}

func (h *PricingHandler) Update(c *gin.Context) {
	id, ok := h.IDParam(c, "id")
	if !ok {
		return
	}

	var req dto.UpdatePricingRuleRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	rule, err := h.pricingService.Update(id, &req)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	h.OK(c, rule)
}

func (h *PricingHandler) Delete(c *gin.Context) {
	id, ok := h.IDParam(c, "id")
	if !ok {
		return
	}

	if err := h.pricingService.Delete(id); err != nil {
		apperrors.HandleError(c, err)
		return
	}
	h.OK(c, gin.H{"message": "Pricing rule deleted"})
}
