package services

import (
	"encoding/json"
	"strings"

	"gorm.io/datatypes"

	"inakat_backend/internal/models"
	"inakat_backend/internal/repositories"
	"inakat_backend/internal/services/dto"
	"inakat_backend/internal/utils"
	"inakat_backend/pkg/apperrors"
)

// DefaultSpecialtyColor is applied when a create or update supplies none.
const DefaultSpecialtyColor = "#2b5d62"

type SpecialtyService interface {
	List(activeOnly bool) ([]models.Specialty, error)
	Get(id uint) (*models.Specialty, error)
	Create(req *dto.CreateSpecialtyRequest) (*models.Specialty, error)
	Update(id uint, req *dto.UpdateSpecialtyRequest) (*models.Specialty, error)
	Delete(id uint) error
	ToggleActive(id uint) (*models.Specialty, error)
}

type SpecialtyServiceImpl struct {
	specialtyRepo repositories.SpecialtyRepository
	pricingRepo   repositories.PricingRuleRepository
	candidateRepo repositories.CandidateRepository
	jobRepo       repositories.JobRepository
}

func NewSpecialtyService(
	specialtyRepo repositories.SpecialtyRepository,
	pricingRepo repositories.PricingRuleRepository,
	candidateRepo repositories.CandidateRepository,
	jobRepo repositories.JobRepository,
) SpecialtyService {
	return &SpecialtyServiceImpl{
		specialtyRepo: specialtyRepo,
		pricingRepo:   pricingRepo,
		candidateRepo: candidateRepo,
		jobRepo:       jobRepo,
	}
}

func (s *SpecialtyServiceImpl) List(activeOnly bool) ([]models.Specialty, error) {
	specialties, err := s.specialtyRepo.FindAll(activeOnly)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return specialties, nil
}

func (s *SpecialtyServiceImpl) Get(id uint) (*models.Specialty, error) {
	specialty, err := s.specialtyRepo.FindByID(id)
	if err != nil {
		if apperrors.Is(err, repositories.ErrSpecialtyNotFound) {
			return nil, apperrors.NewNotFoundError("specialty", "Specialty not found")
		}
		return nil, apperrors.InternalError(err)
	}
	return specialty, nil
}

// Create runs two independent uniqueness pre-checks (name, slug): distinct
// names can still derive the same slug. The DB unique constraints remain
// the authority under concurrency; losing the insert race also reports a
// conflict.
func (s *SpecialtyServiceImpl) Create(req *dto.CreateSpecialtyRequest) (*models.Specialty, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, apperrors.NewBadRequestError("Name is required")
	}

	nameTaken, err := s.specialtyRepo.ExistsByName(name, 0)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	if nameTaken {
		return nil, apperrors.NewConflictError("specialty", "A specialty with that name already exists")
	}

	slug := utils.Slugify(name)
	slugTaken, err := s.specialtyRepo.ExistsBySlug(slug, 0)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	if slugTaken {
		return nil, apperrors.NewConflictError("specialty", "A specialty with that slug already exists")
	}

	sortOrder := 0
	if req.SortOrder != nil {
		sortOrder = *req.SortOrder
	} else {
		max, err := s.specialtyRepo.MaxSortOrder()
		if err != nil {
			return nil, apperrors.InternalError(err)
		}
		sortOrder = max + 1
	}

	color := DefaultSpecialtyColor
	if req.Color != nil && *req.Color != "" {
		color = *req.Color
	}

	subcategories := req.Subcategories
	if subcategories == nil {
		subcategories = []string{}
	}

	specialty := &models.Specialty{
		Name:          name,
		Slug:          slug,
		Description:   trimmedOrNil(req.Description),
		Icon:          emptyToNil(req.Icon),
		Color:         color,
		Subcategories: mustJSON(subcategories),
		SortOrder:     sortOrder,
		IsActive:      req.IsActive == nil || *req.IsActive,
	}

	if err := s.specialtyRepo.Create(specialty); err != nil {
		if apperrors.Is(err, repositories.ErrSpecialtyDuplicate) {
			return nil, apperrors.NewConflictError("specialty", "A specialty with that name or slug already exists")
		}
		return nil, apperrors.InternalError(err)
	}
	return specialty, nil
}

// Update merges only the fields present in the request. On a name change
// the slug is recomputed, but an update whose new slug collides with
// another entity keeps the old slug and applies the rest. Keeping the old
// slug mirrors the historical behavior the admin UI depends on; see
// DESIGN.md before changing it to a rejection.
func (s *SpecialtyServiceImpl) Update(id uint, req *dto.UpdateSpecialtyRequest) (*models.Specialty, error) {
	if _, err := s.Get(id); err != nil {
		return nil, err
	}

	fields := map[string]interface{}{}

	if req.Name != nil && strings.TrimSpace(*req.Name) != "" {
		name := strings.TrimSpace(*req.Name)

		nameTaken, err := s.specialtyRepo.ExistsByName(name, id)
		if err != nil {
			return nil, apperrors.InternalError(err)
		}
		if nameTaken {
			return nil, apperrors.NewConflictError("specialty", "Another specialty with that name already exists")
		}
		fields["name"] = name

		newSlug := utils.Slugify(name)
		slugTaken, err := s.specialtyRepo.ExistsBySlug(newSlug, id)
		if err != nil {
			return nil, apperrors.InternalError(err)
		}
		if !slugTaken {
			fields["slug"] = newSlug
		}
	}

	if req.Description != nil {
		fields["description"] = trimmedOrNil(req.Description)
	}
	if req.Icon != nil {
		fields["icon"] = emptyToNil(req.Icon)
	}
	if req.Color != nil {
		color := *req.Color
		if color == "" {
			color = DefaultSpecialtyColor
		}
		fields["color"] = color
	}
	if req.Subcategories != nil {
		subcategories := *req.Subcategories
		if subcategories == nil {
			subcategories = []string{}
		}
		fields["subcategories"] = mustJSON(subcategories)
	}
	if req.SortOrder != nil {
		fields["sort_order"] = *req.SortOrder
	}
	if req.IsActive != nil {
		fields["is_active"] = *req.IsActive
	}

	if len(fields) == 0 {
		return s.Get(id)
	}

	specialty, err := s.specialtyRepo.Updates(id, fields)
	if err != nil {
		if apperrors.Is(err, repositories.ErrSpecialtyDuplicate) {
			return nil, apperrors.NewConflictError("specialty", "Another specialty with that name already exists")
		}
		if apperrors.Is(err, repositories.ErrSpecialtyNotFound) {
			return nil, apperrors.NewNotFoundError("specialty", "Specialty not found")
		}
		return nil, apperrors.InternalError(err)
	}
	return specialty, nil
}

// Delete refuses while any dependent record still references the specialty
// by name. Each class produces its own actionable message; the remedy is
// always to deactivate instead.
func (s *SpecialtyServiceImpl) Delete(id uint) error {
	specialty, err := s.Get(id)
	if err != nil {
		return err
	}

	inPricing, err := s.pricingRepo.CountByProfile(specialty.Name)
	if err != nil {
		return apperrors.InternalError(err)
	}
	if inPricing > 0 {
		return apperrors.ErrInvalidOperation("specialty",
			"Cannot delete: this specialty is used by the pricing matrix. Deactivate it instead.")
	}

	inCandidates, err := s.candidateRepo.CountByProfile(specialty.Name)
	if err != nil {
		return apperrors.InternalError(err)
	}
	if inCandidates > 0 {
		return apperrors.ErrInvalidOperation("specialty",
			"Cannot delete: candidates are registered with this specialty. Deactivate it instead.")
	}

	inJobs, err := s.jobRepo.CountByProfile(specialty.Name)
	if err != nil {
		return apperrors.InternalError(err)
	}
	if inJobs > 0 {
		return apperrors.ErrInvalidOperation("specialty",
			"Cannot delete: job postings use this specialty. Deactivate it instead.")
	}

	if err := s.specialtyRepo.Delete(id); err != nil {
		if apperrors.Is(err, repositories.ErrSpecialtyNotFound) {
			return apperrors.NewNotFoundError("specialty", "Specialty not found")
		}
		return apperrors.InternalError(err)
	}
	return nil
}

// ToggleActive flips only the active flag.
func (s *SpecialtyServiceImpl) ToggleActive(id uint) (*models.Specialty, error) {
	specialty, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	updated, err := s.specialtyRepo.Updates(id, map[string]interface{}{
		"is_active": !specialty.IsActive,
	})
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return updated, nil
}

// DecodeSubcategories unpacks the JSONB column for response shaping.
func DecodeSubcategories(raw datatypes.JSON) []string {
	if len(raw) == 0 {
		return []string{}
	}
	var out []string
	if err := json.Unmarshal(raw, &out); err != nil {
		return []string{}
	}
	return out
}

func mustJSON(v interface{}) datatypes.JSON {
	raw, err := json.Marshal(v)
	if err != nil {
		// Only reachable with unmarshalable types, which we never pass.
		panic(err)
	}
	return datatypes.JSON(raw)
}

func trimmedOrNil(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

func emptyToNil(s *string) *string {
	if s == nil || *s == "" {
		return nil
	}
	return s
}
