package services

import (
	"strings"

	"inakat_backend/internal/models"
	"inakat_backend/internal/repositories"
	"inakat_backend/internal/services/dto"
	"inakat_backend/pkg/apperrors"
)

type JobList struct {
	Jobs  []models.Job
	Total int64
}

type JobService interface {
	List(activeOnly bool, limit, offset int) (*JobList, error)
	Get(id uint) (*models.Job, error)
	Create(req *dto.CreateJobRequest) (*models.Job, error)
	Update(id uint, req *dto.UpdateJobRequest) (*models.Job, error)
	Delete(id uint) error
}

type JobServiceImpl struct {
	jobRepo       repositories.JobRepository
	specialtyRepo repositories.SpecialtyRepository
}

func NewJobService(jobRepo repositories.JobRepository, specialtyRepo repositories.SpecialtyRepository) JobService {
	return &JobServiceImpl{jobRepo: jobRepo, specialtyRepo: specialtyRepo}
}

const (
	defaultJobPageSize = 20
	maxJobPageSize     = 100
)

func (s *JobServiceImpl) List(activeOnly bool, limit, offset int) (*JobList, error) {
	if limit <= 0 {
		limit = defaultJobPageSize
	}
	if limit > maxJobPageSize {
		limit = maxJobPageSize
	}
	if offset < 0 {
		offset = 0
	}

	jobs, total, err := s.jobRepo.FindAll(activeOnly, limit, offset)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return &JobList{Jobs: jobs, Total: total}, nil
}

func (s *JobServiceImpl) Get(id uint) (*models.Job, error) {
	job, err := s.jobRepo.FindByID(id)
	if err != nil {
		if apperrors.Is(err, repositories.ErrJobNotFound) {
			return nil, apperrors.NewNotFoundError("job", "Job not found")
		}
		return nil, apperrors.InternalError(err)
	}
	return job, nil
}

func (s *JobServiceImpl) Create(req *dto.CreateJobRequest) (*models.Job, error) {
	profile := strings.TrimSpace(req.Profile)
	if profile != "" {
		if err := s.checkProfile(profile); err != nil {
			return nil, err
		}
	}

	job := &models.Job{
		Title:         strings.TrimSpace(req.Title),
		Company:       strings.TrimSpace(req.Company),
		Location:      req.Location,
		Salary:        req.Salary,
		JobType:       req.JobType,
		IsRemote:      req.IsRemote,
		CompanyRating: req.CompanyRating,
		Description:   req.Description,
		Requirements:  req.Requirements,
		Profile:       profile,
		IsActive:      req.IsActive == nil || *req.IsActive,
	}

	if err := s.jobRepo.Create(job); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return job, nil
}

func (s *JobServiceImpl) Update(id uint, req *dto.UpdateJobRequest) (*models.Job, error) {
	if _, err := s.Get(id); err != nil {
		return nil, err
	}

	fields := map[string]interface{}{}

	if req.Title != nil && strings.TrimSpace(*req.Title) != "" {
		fields["title"] = strings.TrimSpace(*req.Title)
	}
	if req.Company != nil && strings.TrimSpace(*req.Company) != "" {
		fields["company"] = strings.TrimSpace(*req.Company)
	}
	if req.Location != nil {
		fields["location"] = *req.Location
	}
	if req.Salary != nil {
		fields["salary"] = *req.Salary
	}
	if req.JobType != nil {
		fields["job_type"] = *req.JobType
	}
	if req.IsRemote != nil {
		fields["is_remote"] = *req.IsRemote
	}
	if req.CompanyRating != nil {
		fields["company_rating"] = *req.CompanyRating
	}
	if req.Description != nil {
		fields["description"] = *req.Description
	}
	if req.Requirements != nil {
		fields["requirements"] = *req.Requirements
	}
	if req.Profile != nil {
		profile := strings.TrimSpace(*req.Profile)
		if profile != "" {
			if err := s.checkProfile(profile); err != nil {
				return nil, err
			}
		}
		fields["profile"] = profile
	}
	if req.IsActive != nil {
		fields["is_active"] = *req.IsActive
	}

	if len(fields) == 0 {
		return s.Get(id)
	}

	job, err := s.jobRepo.Updates(id, fields)
	if err != nil {
		if apperrors.Is(err, repositories.ErrJobNotFound) {
			return nil, apperrors.NewNotFoundError("job", "Job not found")
		}
		return nil, apperrors.InternalError(err)
	}
	return job, nil
}

func (s *JobServiceImpl) Delete(id uint) error {
	if err := s.jobRepo.Delete(id); err != nil {
		if apperrors.Is(err, repositories.ErrJobNotFound) {
			return apperrors.NewNotFoundError("job", "Job not found")
		}
		return apperrors.InternalError(err)
	}
	return nil
}

// checkProfile validates the profile against known specialty names so job
// postings cannot reference specialties that do not exist.
func (s *JobServiceImpl) checkProfile(profile string) error {
	exists, err := s.specialtyRepo.ExistsByName(profile, 0)
	if err != nil {
		return apperrors.InternalError(err)
	}
	if !exists {
		return apperrors.NewBadRequestError("Unknown specialty: " + profile)
	}
	return nil
}
