package dto

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

// UserResponse is the account as returned to clients. Never carries the
// password hash.
type UserResponse struct {
	ID              uint    `json:"id"`
	Email           string  `json:"email"`
	Nombre          string  `json:"nombre"`
	ApellidoPaterno *string `json:"apellidoPaterno,omitempty"`
	ApellidoMaterno *string `json:"apellidoMaterno,omitempty"`
	Role            string  `json:"role"`
}

// LoginResult is the authenticator's success value: the account plus the
// signed session token the handler turns into a cookie.
type LoginResult struct {
	User  UserResponse `json:"user"`
	Token string       `json:"-"`
}
