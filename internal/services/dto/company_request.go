package dto

// CreateCompanyRequestRequest mirrors the public registration form. The RFC
// pattern is the Mexican tax ID format.
type CreateCompanyRequestRequest struct {
	Nombre           string  `json:"nombre" validate:"required,min=2"`
	ApellidoPaterno  string  `json:"apellidoPaterno" validate:"required,min=2"`
	ApellidoMaterno  string  `json:"apellidoMaterno" validate:"required,min=2"`
	NombreEmpresa    string  `json:"nombreEmpresa" validate:"required,min=2"`
	CorreoEmpresa    string  `json:"correoEmpresa" validate:"required,email"`
	SitioWeb         *string `json:"sitioWeb" validate:"omitempty,url"`
	RazonSocial      string  `json:"razonSocial" validate:"required,min=5"`
	RFC              string  `json:"rfc" validate:"required,rfc"`
	DireccionEmpresa string  `json:"direccionEmpresa" validate:"required,min=10"`
	IdentificacionUrl         *string `json:"identificacionUrl" validate:"omitempty,url"`
	DocumentosConstitucionUrl *string `json:"documentosConstitucionUrl" validate:"omitempty,url"`
}

type RejectCompanyRequestRequest struct {
	Reason string `json:"reason"`
}
