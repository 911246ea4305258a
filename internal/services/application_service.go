package services

import (
	"strings"

	"inakat_backend/internal/models"
	"inakat_backend/internal/repositories"
	"inakat_backend/internal/services/dto"
	"inakat_backend/pkg/apperrors"
)

type ApplicationService interface {
	ListByJob(jobID uint) ([]models.Application, error)
	Create(jobID uint, req *dto.CreateApplicationRequest) (*models.Application, error)
	UpdateStatus(id uint, req *dto.UpdateApplicationStatusRequest) (*models.Application, error)
}

type ApplicationServiceImpl struct {
	applicationRepo repositories.ApplicationRepository
	jobRepo         repositories.JobRepository
}

func NewApplicationService(applicationRepo repositories.ApplicationRepository, jobRepo repositories.JobRepository) ApplicationService {
	return &ApplicationServiceImpl{applicationRepo: applicationRepo, jobRepo: jobRepo}
}

func (s *ApplicationServiceImpl) ListByJob(jobID uint) ([]models.Application, error) {
	if _, err := s.jobRepo.FindByID(jobID); err != nil {
		if apperrors.Is(err, repositories.ErrJobNotFound) {
			return nil, apperrors.NewNotFoundError("job", "Job not found")
		}
		return nil, apperrors.InternalError(err)
	}

	applications, err := s.applicationRepo.FindByJobID(jobID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return applications, nil
}

// Create files an application against an active job. Inactive jobs do not
// accept new applications.
func (s *ApplicationServiceImpl) Create(jobID uint, req *dto.CreateApplicationRequest) (*models.Application, error) {
	job, err := s.jobRepo.FindByID(jobID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrJobNotFound) {
			return nil, apperrors.NewNotFoundError("job", "Job not found")
		}
		return nil, apperrors.InternalError(err)
	}
	if !job.IsActive {
		return nil, apperrors.NewBadRequestError("This job is no longer accepting applications")
	}

	application := &models.Application{
		JobID:          jobID,
		CandidateName:  strings.TrimSpace(req.CandidateName),
		CandidateEmail: strings.ToLower(strings.TrimSpace(req.CandidateEmail)),
		CandidatePhone: req.CandidatePhone,
		CVUrl:          req.CVUrl,
		Message:        req.Message,
		Status:         models.ApplicationStatusPending,
	}

	if err := s.applicationRepo.Create(application); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return application, nil
}

func (s *ApplicationServiceImpl) UpdateStatus(id uint, req *dto.UpdateApplicationStatusRequest) (*models.Application, error) {
	application, err := s.applicationRepo.UpdateStatus(id, models.ApplicationStatus(req.Status))
	if err != nil {
		if apperrors.Is(err, repositories.ErrApplicationNotFound) {
			return nil, apperrors.NewNotFoundError("application", "Application not found")
		}
		return nil, apperrors.InternalError(err)
	}
	return application, nil
}
