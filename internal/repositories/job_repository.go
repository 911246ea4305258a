package repositories

import (
	"errors"

	"gorm.io/gorm"

	"inakat_backend/internal/models"
)

var ErrJobNotFound = errors.New("job not found")

type JobRepository interface {
	FindAll(activeOnly bool, limit, offset int) ([]models.Job, int64, error)
	FindByID(id uint) (*models.Job, error)
	Create(job *models.Job) error
	Updates(id uint, fields map[string]interface{}) (*models.Job, error)
	Delete(id uint) error
	CountByProfile(profile string) (int64, error)
}

type JobRepositoryImpl struct {
	db *gorm.DB
}

func NewJobRepository(db *gorm.DB) JobRepository {
	return &JobRepositoryImpl{db: db}
}

func (r *JobRepositoryImpl) FindAll(activeOnly bool, limit, offset int) ([]models.Job, int64, error) {
	var jobs []models.Job
	var total int64

	query := r.db.Model(&models.Job{})
	if activeOnly {
		query = query.Where("is_active = ?", true)
	}
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Order("created_at DESC").Limit(limit).Offset(offset).Find(&jobs).Error
	return jobs, total, err
}

func (r *JobRepositoryImpl) FindByID(id uint) (*models.Job, error) {
	var job models.Job
	err := r.db.First(&job, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrJobNotFound
		}
		return nil, err
	}
	return &job, nil
}

func (r *JobRepositoryImpl) Create(job *models.Job) error {
	return r.db.Create(job).Error
}

func (r *JobRepositoryImpl) Updates(id uint, fields map[string]interface{}) (*models.Job, error) {
	result := r.db.Model(&models.Job{}).Where("id = ?", id).Updates(fields)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, ErrJobNotFound
	}
	return r.FindByID(id)
}

func (r *JobRepositoryImpl) Delete(id uint) error {
	result := r.db.Delete(&models.Job{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrJobNotFound
	}
	return nil
}

func (r *JobRepositoryImpl) CountByProfile(profile string) (int64, error) {
	var count int64
	err := r.db.Model(&models.Job{}).Where("profile = ?", profile).Count(&count).Error
	return count, err
}
