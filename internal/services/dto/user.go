package dto

import "time"

// AccountResponse is the admin view of an account. Never carries the
// password hash.
type AccountResponse struct {
	ID              uint       `json:"id"`
	Email           string     `json:"email"`
	Nombre          string     `json:"nombre"`
	ApellidoPaterno *string    `json:"apellidoPaterno,omitempty"`
	ApellidoMaterno *string    `json:"apellidoMaterno,omitempty"`
	Role            string     `json:"role"`
	IsActive        bool       `json:"isActive"`
	LastLogin       *time.Time `json:"lastLogin,omitempty"`
	CreatedAt       time.Time  `json:"createdAt"`
}

type UpdateUserStatusRequest struct {
	IsActive *bool `json:"isActive" validate:"required"`
}
