package models

// Application is a candidate's submission against a Job.
type Application struct {
	BaseModel
	JobID          uint              `gorm:"not null;index" json:"jobId"`
	CandidateName  string            `gorm:"not null" json:"candidateName"`
	CandidateEmail string            `gorm:"not null" json:"candidateEmail"`
	CandidatePhone string            `json:"candidatePhone"`
	CVUrl          string            `json:"cvUrl"`
	Message        string            `gorm:"type:text" json:"message"`
	Status         ApplicationStatus `gorm:"type:varchar(20);default:'pending'" json:"status"`
}
