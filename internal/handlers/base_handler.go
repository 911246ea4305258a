package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"inakat_backend/internal/validator"
	"inakat_backend/pkg/apperrors"
)

// BaseHandler carries the shared request plumbing every handler embeds.
type BaseHandler struct {
	validator *validator.Validator
}

func NewBaseHandler(v *validator.Validator) BaseHandler {
	return BaseHandler{validator: v}
}

// BindAndValidateJSON decodes the body and runs struct validation. On
// failure it writes the error response and returns false; the handler just
// returns.
func (h *BaseHandler) BindAndValidateJSON(c *gin.Context, dest interface{}) bool {
	if err := c.ShouldBindJSON(dest); err != nil {
		apperrors.HandleError(c, apperrors.NewBadRequestError("Invalid JSON body"))
		return false
	}
	if err := h.validator.Validate(dest); err != nil {
		var vErr *validator.ValidationError
		if apperrors.As(err, &vErr) {
			apperrors.HandleError(c, apperrors.ValidationError(vErr.Errors))
		} else {
			apperrors.HandleError(c, err)
		}
		return false
	}
	return true
}

// IDParam parses a positive integer path parameter.
func (h *BaseHandler) IDParam(c *gin.Context, name string) (uint, bool) {
	raw := c.Param(name)
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		apperrors.HandleError(c, apperrors.NewBadRequestError("Invalid "+name+" parameter"))
		return 0, false
	}
	return uint(id), true
}

// OK writes the success envelope: {"success": true, "data": ...}.
func (h *BaseHandler) OK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, gin.H{"success": true, "data": data})
}

// Created writes the success envelope with a 201.
func (h *BaseHandler) Created(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, gin.H{"success": true, "data": data})
}
