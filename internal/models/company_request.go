package models

import "time"

// CompanyRequest is a company registration awaiting admin review. Approval
// provisions a company-role User; the request itself keeps the audit trail.
type CompanyRequest struct {
	BaseModel
	Nombre          string        `gorm:"not null" json:"nombre"`
	ApellidoPaterno string        `gorm:"not null" json:"apellidoPaterno"`
	ApellidoMaterno string        `gorm:"not null" json:"apellidoMaterno"`
	NombreEmpresa   string        `gorm:"not null" json:"nombreEmpresa"`
	CorreoEmpresa   string        `gorm:"not null;index" json:"correoEmpresa"`
	SitioWeb        *string       `json:"sitioWeb,omitempty"`
	RazonSocial     string        `gorm:"not null" json:"razonSocial"`
	RFC             string        `gorm:"not null" json:"rfc"`
	DireccionEmpresa string       `gorm:"not null" json:"direccionEmpresa"`
	IdentificacionUrl         *string `json:"identificacionUrl,omitempty"`
	DocumentosConstitucionUrl *string `json:"documentosConstitucionUrl,omitempty"`
	Status          RequestStatus `gorm:"type:varchar(20);default:'pending';index" json:"status"`
	RejectionReason *string       `json:"rejectionReason,omitempty"`
	ReviewedAt      *time.Time    `json:"reviewedAt,omitempty"`
	ReviewedBy      *uint         `json:"reviewedBy,omitempty"`
}
