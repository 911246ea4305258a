package models

// Job is a published vacancy. Profile references a Specialty by name; jobs
// holding a specialty's name block that specialty's deletion.
type Job struct {
	BaseModel
	Title         string  `gorm:"not null" json:"title"`
	Company       string  `gorm:"not null" json:"company"`
	Location      string  `json:"location"`
	Salary        string  `json:"salary"`
	JobType       string  `json:"jobType"`
	IsRemote      bool    `gorm:"default:false" json:"isRemote"`
	CompanyRating float64 `json:"companyRating"`
	Description   string  `gorm:"type:text" json:"description"`
	Requirements  string  `gorm:"type:text" json:"requirements"`
	Profile       string  `gorm:"index" json:"profile"`
	IsActive      bool    `gorm:"default:true" json:"isActive"`

	Applications []Application `gorm:"foreignKey:JobID" json:"-"`
}
