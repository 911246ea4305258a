package dto

type CreateApplicationRequest struct {
	CandidateName  string `json:"candidateName" validate:"required,min=2"`
	CandidateEmail string `json:"candidateEmail" validate:"required,email"`
	CandidatePhone string `json:"candidatePhone"`
	CVUrl          string `json:"cvUrl" validate:"omitempty,url"`
	Message        string `json:"message"`
}

type UpdateApplicationStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending reviewed accepted rejected"`
}
