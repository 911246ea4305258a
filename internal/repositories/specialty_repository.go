package repositories

import (
	"errors"

	"gorm.io/gorm"

	"inakat_backend/internal/models"
)

var (
	ErrSpecialtyNotFound  = errors.New("specialty not found")
	ErrSpecialtyDuplicate = errors.New("specialty already exists")
)

type SpecialtyRepository interface {
	// FindAll returns specialties ordered by sort order ascending, name
	// ascending as the deterministic tie-breaker.
	FindAll(activeOnly bool) ([]models.Specialty, error)
	FindByID(id uint) (*models.Specialty, error)
	// ExistsByName / ExistsBySlug report collisions, ignoring excludeID so
	// updates can exclude the entity itself (pass 0 for creates).
	ExistsByName(name string, excludeID uint) (bool, error)
	ExistsBySlug(slug string, excludeID uint) (bool, error)
	MaxSortOrder() (int, error)
	Create(specialty *models.Specialty) error
	Updates(id uint, fields map[string]interface{}) (*models.Specialty, error)
	Delete(id uint) error
}

type SpecialtyRepositoryImpl struct {
	db *gorm.DB
}

func NewSpecialtyRepository(db *gorm.DB) SpecialtyRepository {
	return &SpecialtyRepositoryImpl{db: db}
}

func (r *SpecialtyRepositoryImpl) FindAll(activeOnly bool) ([]models.Specialty, error) {
	var specialties []models.Specialty
	query := r.db.Order("sort_order ASC, name ASC")
	if activeOnly {
		query = query.Where("is_active = ?", true)
	}
	err := query.Find(&specialties).Error
	return specialties, err
}

func (r *SpecialtyRepositoryImpl) FindByID(id uint) (*models.Specialty, error) {
	var specialty models.Specialty
	err := r.db.First(&specialty, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSpecialtyNotFound
		}
		return nil, err
	}
	return &specialty, nil
}

func (r *SpecialtyRepositoryImpl) ExistsByName(name string, excludeID uint) (bool, error) {
	var count int64
	query := r.db.Model(&models.Specialty{}).Where("name = ?", name)
	if excludeID != 0 {
		query = query.Where("id <> ?", excludeID)
	}
	err := query.Count(&count).Error
	return count > 0, err
}

func (r *SpecialtyRepositoryImpl) ExistsBySlug(slug string, excludeID uint) (bool, error) {
	var count int64
	query := r.db.Model(&models.Specialty{}).Where("slug = ?", slug)
	if excludeID != 0 {
		query = query.Where("id <> ?", excludeID)
	}
	err := query.Count(&count).Error
	return count > 0, err
}

func (r *SpecialtyRepositoryImpl) MaxSortOrder() (int, error) {
	var max *int
	err := r.db.Model(&models.Specialty{}).
		Select("MAX(sort_order)").Scan(&max).Error
	if err != nil {
		return 0, err
	}
	if max == nil {
		return 0, nil
	}
	return *max, nil
}

func (r *SpecialtyRepositoryImpl) Create(specialty *models.Specialty) error {
	err := r.db.Create(specialty).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		// Lost a concurrent create race; the unique constraint decides.
		return ErrSpecialtyDuplicate
	}
	return err
}

func (r *SpecialtyRepositoryImpl) Updates(id uint, fields map[string]interface{}) (*models.Specialty, error) {
	result := r.db.Model(&models.Specialty{}).Where("id = ?", id).Updates(fields)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrDuplicatedKey) {
			return nil, ErrSpecialtyDuplicate
		}
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, ErrSpecialtyNotFound
	}
	return r.FindByID(id)
}

func (r *SpecialtyRepositoryImpl) Delete(id uint) error {
	result := r.db.Delete(&models.Specialty{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrSpecialtyNotFound
	}
	return nil
}
