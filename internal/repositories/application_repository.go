package repositories

import (
	"errors"

	"gorm.io/gorm"

	"inakat_backend/internal/models"
)

var ErrApplicationNotFound = errors.New("application not found")

type ApplicationRepository interface {
	FindByJobID(jobID uint) ([]models.Application, error)
	FindByID(id uint) (*models.Application, error)
	Create(application *models.Application) error
	UpdateStatus(id uint, status models.ApplicationStatus) (*models.Application, error)
}

type ApplicationRepositoryImpl struct {
	db *gorm.DB
}

func NewApplicationRepository(db *gorm.DB) ApplicationRepository {
	return &ApplicationRepositoryImpl{db: db}
}

func (r *ApplicationRepositoryImpl) FindByJobID(jobID uint) ([]models.Application, error) {
	var applications []models.Application
	err := r.db.Where("job_id = ?", jobID).
		Order("created_at DESC").
		Find(&applications).Error
	return applications, err
}

func (r *ApplicationRepositoryImpl) FindByID(id uint) (*models.Application, error) {
	var application models.Application
	err := r.db.First(&application, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrApplicationNotFound
		}
		return nil, err
	}
	return &application, nil
}

func (r *ApplicationRepositoryImpl) Create(application *models.Application) error {
	return r.db.Create(application).Error
}

func (r *ApplicationRepositoryImpl) UpdateStatus(id uint, status models.ApplicationStatus) (*models.Application, error) {
	result := r.db.Model(&models.Application{}).Where("id = ?", id).
		Update("status", status)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, ErrApplicationNotFound
	}
	return r.FindByID(id)
}
