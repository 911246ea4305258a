package models

// Candidate is a registered job seeker. Profile references a Specialty by
// name (dependent class for specialty deletion).
type Candidate struct {
	BaseModel
	Nombre          string  `gorm:"not null" json:"nombre"`
	ApellidoPaterno *string `json:"apellidoPaterno,omitempty"`
	ApellidoMaterno *string `json:"apellidoMaterno,omitempty"`
	Email           string  `gorm:"not null;index" json:"email"`
	Telefono        string  `json:"telefono"`
	Profile         string  `gorm:"index" json:"profile"`
	CVUrl           string  `json:"cvUrl"`
}
