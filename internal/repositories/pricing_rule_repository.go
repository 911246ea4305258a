package repositories

import (
	"errors"

	"gorm.io/gorm"

	"inakat_backend/internal/models"
)

var ErrPricingRuleNotFound = errors.New("pricing rule not found")

type PricingRuleRepository interface {
	FindAll(activeOnly bool) ([]models.PricingRule, error)
	FindByID(id uint) (*models.PricingRule, error)
	Create(rule *models.PricingRule) error
	Updates(id uint, fields map[string]interface{}) (*models.PricingRule, error)
	Delete(id uint) error
	CountByProfile(profile string) (int64, error)
}

type PricingRuleRepositoryImpl struct {
	db *gorm.DB
}

func NewPricingRuleRepository(db *gorm.DB) PricingRuleRepository {
	return &PricingRuleRepositoryImpl{db: db}
}

func (r *PricingRuleRepositoryImpl) FindAll(activeOnly bool) ([]models.PricingRule, error) {
	var rules []models.PricingRule
	query := r.db.Order("profile ASC, salary_min ASC")
	if activeOnly {
		query = query.Where("is_active = ?", true)
	}
	err := query.Find(&rules).Error
	return rules, err
}

func (r *PricingRuleRepositoryImpl) FindByID(id uint) (*models.PricingRule, error) {
	var rule models.PricingRule
	err := r.db.First(&rule, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPricingRuleNotFound
		}
		return nil, err
	}
	return &rule, nil
}

func (r *PricingRuleRepositoryImpl) Create(rule *models.PricingRule) error {
	return r.db.Create(rule).Error
}

func (r *PricingRuleRepositoryImpl) Updates(id uint, fields map[string]interface{}) (*models.PricingRule, error) {
	result := r.db.Model(&models.PricingRule{}).Where("id = ?", id).Updates(fields)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, ErrPricingRuleNotFound
	}
	return r.FindByID(id)
}

func (r *PricingRuleRepositoryImpl) Delete(id uint) error {
	result := r.db.Delete(&models.PricingRule{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrPricingRuleNotFound
	}
	return nil
}

func (r *PricingRuleRepositoryImpl) CountByProfile(profile string) (int64, error) {
	var count int64
	err := r.db.Model(&models.PricingRule{}).Where("profile = ?", profile).Count(&count).Error
	return count, err
}
