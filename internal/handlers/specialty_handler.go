package handlers

import (
	"github.com/gin-gonic/gin"

	"inakat_backend/internal/models"
	"inakat_backend/internal/services"
	"inakat_backend/internal/services/dto"
	"inakat_backend/internal/validator"
	"inakat_backend/pkg/apperrors"
)

type SpecialtyHandler struct {
	BaseHandler
	specialtyService services.SpecialtyService
}

func NewSpecialtyHandler(v *validator.Validator, specialtyService services.SpecialtyService) *SpecialtyHandler {
	return &SpecialtyHandler{
		BaseHandler:      NewBaseHandler(v),
		specialtyService: specialtyService,
	}
}

// ListPublic serves the job-board dropdowns: active specialties ordered by
// sort order. Every response carries the object list, the plain names array
// for simple selects, and the count; ?subcategories=true adds subcategories
// to each object. Descriptions stay internal.
func (h *SpecialtyHandler) ListPublic(c *gin.Context) {
	withSubcategories := c.Query("subcategories") == "true"

	specialties, err := h.specialtyService.List(true)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}

	entries := make([]gin.H, 0, len(specialties))
	names := make([]string, 0, len(specialties))
	for i := range specialties {
		s := &specialties[i]
		entry := gin.H{
			"id":    s.ID,
			"name":  s.Name,
			"slug":  s.Slug,
			"color": s.Color,
			"icon":  s.Icon,
		}
		if withSubcategories {
			entry["subcategories"] = services.DecodeSubcategories(s.Subcategories)
		}
		entries = append(entries, entry)
		names = append(names, s.Name)
	}
	h.OK(c, gin.H{"specialties": entries, "names": names, "count": len(entries)})
}

// ListDetailed serves full specialty objects for the admin screens: every
// entity by default, ?active=true to filter, ?subcategories=false to slim
// the payload.
func (h *SpecialtyHandler) ListDetailed(c *gin.Context) {
	activeOnly := c.Query("active") == "true"
	withSubcategories := c.Query("subcategories") != "false"

	specialties, err := h.specialtyService.List(activeOnly)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}

	responses := make([]dto.SpecialtyResponse, 0, len(specialties))
	for i := range specialties {
		responses = append(responses, toSpecialtyResponse(&specialties[i], withSubcategories))
	}
	h.OK(c, gin.H{"specialties": responses, "count": len(responses)})
}

func (h *SpecialtyHandler) Get(c *gin.Context) {
	id, ok := h.IDParam(c, "id")
	if !ok {
		return
	}

	specialty, err := h.specialtyService.Get(id)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	h.OK(c, toSpecialtyResponse(specialty, true))
}

func (h *SpecialtyHandler) Create(c *gin.Context) {
	var req dto.CreateSpecialtyRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	specialty, err := h.specialtyService.Create(&req)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	h.Created(c, toSpecialtyResponse(specialty, true))
}

func (h *SpecialtyHandler) Update(c *gin.Context) {
	id, ok := h.IDParam(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateSpecialtyRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	specialty, err := h.specialtyService.Update(id, &req)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	h.OK(c, toSpecialtyResponse(specialty, true))
}

func (h *SpecialtyHandler) Delete(c *gin.Context) {
	id, ok := h.IDParam(c, "id")
	if !ok {
		return
	}

	if err := h.specialtyService.Delete(id); err != nil {
		apperrors.HandleError(c, err)
		return
	}
	h.OK(c, gin.H{"message": "Specialty deleted"})
}

func (h *SpecialtyHandler) ToggleActive(c *gin.Context) {
	id, ok := h.IDParam(c, "id")
	if !ok {
		return
	}

	specialty, err := h.specialtyService.ToggleActive(id)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	h.OK(c, toSpecialtyResponse(specialty, true))
}

func toSpecialtyResponse(s *models.Specialty, withSubcategories bool) dto.SpecialtyResponse {
	resp := dto.SpecialtyResponse{
		ID:          s.ID,
		Name:        s.Name,
		Slug:        s.Slug,
		Description: s.Description,
		Icon:        s.Icon,
		Color:       s.Color,
		SortOrder:   s.SortOrder,
		IsActive:    s.IsActive,
	}
	if withSubcategories {
		resp.Subcategories = services.DecodeSubcategories(s.Subcategories)
	}
	return resp
}
