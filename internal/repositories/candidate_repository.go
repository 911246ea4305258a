package repositories

import (
	"errors"

	"gorm.io/gorm"

	"inakat_backend/internal/models"
)

var ErrCandidateNotFound = errors.New("candidate not found")

type CandidateRepository interface {
	FindAll(limit, offset int) ([]models.Candidate, int64, error)
	FindByID(id uint) (*models.Candidate, error)
	Create(candidate *models.Candidate) error
	CountByProfile(profile string) (int64, error)
}

type CandidateRepositoryImpl struct {
	db *gorm.DB
}

func NewCandidateRepository(db *gorm.DB) CandidateRepository {
	return &CandidateRepositoryImpl{db: db}
}

func (r *CandidateRepositoryImpl) FindAll(limit, offset int) ([]models.Candidate, int64, error) {
	var candidates []models.Candidate
	var total int64

	if err := r.db.Model(&models.Candidate{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}
	err := r.db.Order("created_at DESC").Limit(limit).Offset(offset).Find(&candidates).Error
	return candidates, total, err
}

func (r *CandidateRepositoryImpl) FindByID(id uint) (*models.Candidate, error) {
	var candidate models.Candidate
	err := r.db.First(&candidate, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCandidateNotFound
		}
		return nil, err
	}
	return &candidate, nil
}

func (r *CandidateRepositoryImpl) Create(candidate *models.Candidate) error {
	return r.db.Create(candidate).Error
}

func (r *CandidateRepositoryImpl) CountByProfile(profile string) (int64, error) {
	var count int64
	err := r.db.Model(&models.Candidate{}).Where("profile = ?", profile).Count(&count).Error
	return count, err
}
