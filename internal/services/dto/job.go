package dto

type CreateJobRequest struct {
	Title         string  `json:"title" validate:"required"`
	Company       string  `json:"company" validate:"required"`
	Location      string  `json:"location"`
	Salary        string  `json:"salary"`
	JobType       string  `json:"jobType"`
	IsRemote      bool    `json:"isRemote"`
	CompanyRating float64 `json:"companyRating"`
	Description   string  `json:"description"`
	Requirements  string  `json:"requirements"`
	Profile       string  `json:"profile"`
	IsActive      *bool   `json:"isActive"`
}

type UpdateJobRequest struct {
	Title         *string  `json:"title"`
	Company       *string  `json:"company"`
	Location      *string  `json:"location"`
	Salary        *string  `json:"salary"`
	JobType       *string  `json:"jobType"`
	IsRemote      *bool    `json:"isRemote"`
	CompanyRating *float64 `json:"companyRating"`
	Description   *string  `json:"description"`
	Requirements  *string  `json:"requirements"`
	Profile       *string  `json:"profile"`
	IsActive      *bool    `json:"isActive"`
}
