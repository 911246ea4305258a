package models

// PricingRule is one row of the recruitment pricing matrix. Profile
// references a Specialty by name (dependent class for specialty deletion).
type PricingRule struct {
	BaseModel
	Profile   string  `gorm:"not null;index" json:"profile"`
	Seniority string  `json:"seniority"`
	SalaryMin float64 `json:"salaryMin"`
	SalaryMax float64 `json:"salaryMax"`
	Fee       float64 `json:"fee"`
	IsActive  bool    `gorm:"default:true" json:"isActive"`
}
