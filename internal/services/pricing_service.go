package services

import (
	"strings"

	"inakat_backend/internal/models"
	"inakat_backend/internal/repositories"
	"inakat_backend/internal/services/dto"
	"inakat_backend/pkg/apperrors"
)

type PricingService interface {
	List(activeOnly bool) ([]models.PricingRule, error)
	Create(req *dto.CreatePricingRuleRequest) (*models.PricingRule, error)
	Update(id uint, req *dto.UpdatePricingRuleRequest) (*models.PricingRule, error)
	Delete(id uint) error
}

type PricingServiceImpl struct {
	pricingRepo   repositories.PricingRuleRepository
	specialtyRepo repositories.SpecialtyRepository
}

func NewPricingService(pricingRepo repositories.PricingRuleRepository, specialtyRepo repositories.SpecialtyRepository) PricingService {
	return &PricingServiceImpl{pricingRepo: pricingRepo, specialtyRepo: specialtyRepo}
}

func (s *PricingServiceImpl) List(activeOnly bool) ([]models.PricingRule, error) {
	rules, err := s.pricingRepo.FindAll(activeOnly)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return rules, nil
}

func (s *PricingServiceImpl) Create(req *dto.CreatePricingRuleRequest) (*models.PricingRule, error) {
	profile := strings.TrimSpace(req.Profile)
	exists, err := s.specialtyRepo.ExistsByName(profile, 0)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	if !exists {
		return nil, apperrors.NewBadRequestError("Unknown specialty: " + profile)
	}

	if req.SalaryMax > 0 && req.SalaryMin > req.SalaryMax {
		return nil, apperrors.NewBadRequestError("salaryMin cannot exceed salaryMax")
	}

	rule := &models.PricingRule{
		Profile:   profile,
		Seniority: req.Seniority,
		SalaryMin: req.SalaryMin,
		SalaryMax: req.SalaryMax,
		Fee:       req.Fee,
		IsActive:  req.IsActive == nil || *req.IsActive,
	}

	if err := s.pricingRepo.Create(rule); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return rule, nil
}

func (s *PricingServiceImpl) Update(id uint, req *dto.UpdatePricingRuleRequest) (*models.PricingRule, error) {
	fields := map[string]interface{}{}

	if req.Profile != nil {
		profile := strings.TrimSpace(*req.Profile)
		exists, err := s.specialtyRepo.ExistsByName(profile, 0)
		if err != nil {
			return nil, apperrors.InternalError(err)
		}
		if !exists {
			return nil, apperrors.NewBadRequestError("Unknown specialty: " + profile)
		}
		fields["profile"] = profile
	}
	if req.Seniority != nil {
		fields["seniority"] = *req.Seniority
	}
	if req.SalaryMin != nil {
		fields["salary_min"] = *req.SalaryMin
	}
	if req.SalaryMax != nil {
		fields["salary_max"] = *req.SalaryMax
	}
	if req.Fee != nil {
		fields["fee"] = *req.Fee
	}
	if req.IsActive != nil {
		fields["is_active"] = *req.IsActive
	}

	if len(fields) == 0 {
		rule, err := s.pricingRepo.FindByID(id)
		if err != nil {
			if apperrors.Is(err, repositories.ErrPricingRuleNotFound) {
				return nil, apperrors.NewNotFoundError("pricing", "Pricing rule not found")
			}
			return nil, apperrors.InternalError(err)
		}
		return rule, nil
	}

	rule, err := s.pricingRepo.Updates(id, fields)
	if err != nil {
		if apperrors.Is(err, repositories.ErrPricingRuleNotFound) {
			return nil, apperrors.NewNotFoundError("pricing", "Pricing rule not found")
		}
		return nil, apperrors.InternalError(err)
	}
	return rule, nil
}

func (s *PricingServiceImpl) Delete(id uint) error {
	if err := s.pricingRepo.Delete(id); err != nil {
		if apperrors.Is(err, repositories.ErrPricingRuleNotFound) {
			return apperrors.NewNotFoundError("pricing", "Pricing rule not found")
		}
		return apperrors.InternalError(err)
	}
	return nil
}
