package models

import "time"

// User is an account. Accounts are never hard-deleted; admins toggle
// IsActive instead, and a deactivated account cannot authenticate.
type User struct {
	BaseModel
	Email            string     `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash     string     `gorm:"not null" json:"-"`
	Nombre           string     `gorm:"not null" json:"nombre"`
	ApellidoPaterno  *string    `json:"apellidoPaterno,omitempty"`
	ApellidoMaterno  *string    `json:"apellidoMaterno,omitempty"`
	Role             UserRole   `gorm:"type:varchar(20);not null;default:'user'" json:"role"`
	IsActive         bool       `gorm:"default:true" json:"isActive"`
	LastLogin        *time.Time `json:"lastLogin,omitempty"`
	EmailVerifiedAt  *time.Time `json:"emailVerifiedAt,omitempty"`
}
