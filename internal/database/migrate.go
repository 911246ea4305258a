package database

import (
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"inakat_backend/internal/models"
)

// Connect opens the Postgres connection. TranslateError makes GORM surface
// unique-constraint violations as gorm.ErrDuplicatedKey, which the
// repositories rely on for the create race (constraint wins, not the
// pre-check).
func Connect(dsn string) (*gorm.DB, error) {
	return gorm.Open(postgres.Open(dsn), &gorm.Config{
		TranslateError: true,
	})
}

// AutoMigrate creates or updates the schema for every model.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Specialty{},
		&models.PricingRule{},
		&models.Candidate{},
		&models.Job{},
		&models.Application{},
		&models.CompanyRequest{},
	)
}
