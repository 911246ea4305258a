package dto

type CreatePricingRuleRequest struct {
	Profile   string  `json:"profile" validate:"required"`
	Seniority string  `json:"seniority"`
	SalaryMin float64 `json:"salaryMin" validate:"gte=0"`
	SalaryMax float64 `json:"salaryMax" validate:"gte=0"`
	Fee       float64 `json:"fee" validate:"gte=0"`
	IsActive  *bool   `json:"isActive"`
}

type UpdatePricingRuleRequest struct {
	Profile   *string  `json:"profile"`
	Seniority *string  `json:"seniority"`
	SalaryMin *float64 `json:"salaryMin"`
	SalaryMax *float64 `json:"salaryMax"`
	Fee       *float64 `json:"fee"`
	IsActive  *bool    `json:"isActive"`
}
