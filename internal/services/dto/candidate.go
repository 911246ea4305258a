package dto

type CreateCandidateRequest struct {
	Nombre          string  `json:"nombre" validate:"required,min=2"`
	ApellidoPaterno *string `json:"apellidoPaterno"`
	ApellidoMaterno *string `json:"apellidoMaterno"`
	Email           string  `json:"email" validate:"required,email"`
	Telefono        string  `json:"telefono"`
	Profile         string  `json:"profile" validate:"required"`
	CVUrl           string  `json:"cvUrl" validate:"omitempty,url"`
}
