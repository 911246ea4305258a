package repositories

import (
	"errors"

	"gorm.io/gorm"

	"inakat_backend/internal/models"
)

var ErrCompanyRequestNotFound = errors.New("company request not found")

type CompanyRequestRepository interface {
	FindAll(status models.RequestStatus) ([]models.CompanyRequest, error)
	FindByID(id uint) (*models.CompanyRequest, error)
	HasPendingByEmail(email string) (bool, error)
	Create(request *models.CompanyRequest) error
	Update(request *models.CompanyRequest) error
}

type CompanyRequestRepositoryImpl struct {
	db *gorm.DB
}

func NewCompanyRequestRepository(db *gorm.DB) CompanyRequestRepository {
	return &CompanyRequestRepositoryImpl{db: db}
}

// FindAll filters by status when one is given; empty status means all.
func (r *CompanyRequestRepositoryImpl) FindAll(status models.RequestStatus) ([]models.CompanyRequest, error) {
	var requests []models.CompanyRequest
	query := r.db.Order("created_at DESC")
	if status != "" {
		query = query.Where("status = ?", status)
	}
	err := query.Find(&requests).Error
	return requests, err
}

func (r *CompanyRequestRepositoryImpl) FindByID(id uint) (*models.CompanyRequest, error) {
	var request models.CompanyRequest
	err := r.db.First(&request, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCompanyRequestNotFound
		}
		return nil, err
	}
	return &request, nil
}

func (r *CompanyRequestRepositoryImpl) HasPendingByEmail(email string) (bool, error) {
	var count int64
	err := r.db.Model(&models.CompanyRequest{}).
		Where("correo_empresa = ? AND status = ?", email, models.RequestStatusPending).
		Count(&count).Error
	return count > 0, err
}

func (r *CompanyRequestRepositoryImpl) Create(request *models.CompanyRequest) error {
	return r.db.Create(request).Error
}

func (r *CompanyRequestRepositoryImpl) Update(request *models.CompanyRequest) error {
	result := r.db.Save(request)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrCompanyRequestNotFound
	}
	return nil
}
