package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"inakat_backend/internal/services"
	"inakat_backend/internal/services/dto"
	"inakat_backend/internal/validator"
	"inakat_backend/pkg/apperrors"
	"inakat_backend/pkg/contextkeys"
)

type UserHandler struct {
	BaseHandler
	userService services.UserService
}

func NewUserHandler(v *validator.Validator, userService services.UserService) *UserHandler {
	return &UserHandler{
		BaseHandler: NewBaseHandler(v),
		userService: userService,
	}
}

// List serves the admin account screens, one role at a time.
func (h *UserHandler) List(c *gin.Context) {
	role := c.DefaultQuery("role", "company")
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	list, err := h.userService.ListByRole(role, limit, offset)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	h.OK(c, gin.H{"users": list.Users, "total": list.Total})
}

// UpdateStatus activates or deactivates an account. The acting admin
// cannot change their own account.
func (h *UserHandler) UpdateStatus(c *gin.Context) {
	id, ok := h.IDParam(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateUserStatusRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	actorID := c.GetUint(contextkeys.UserIDKey)
	user, err := h.userService.SetActive(actorID, id, *req.IsActive)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	h.OK(c, gin.H{"user": user})
}
