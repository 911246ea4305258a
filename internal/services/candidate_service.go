package services

import (
	"strings"

	"inakat_backend/internal/models"
	"inakat_backend/internal/repositories"
	"inakat_backend/internal/services/dto"
	"inakat_backend/pkg/apperrors"
)

type CandidateList struct {
	Candidates []models.Candidate
	Total      int64
}

type CandidateService interface {
	List(limit, offset int) (*CandidateList, error)
	Get(id uint) (*models.Candidate, error)
	Create(req *dto.CreateCandidateRequest) (*models.Candidate, error)
}

type CandidateServiceImpl struct {
	candidateRepo repositories.CandidateRepository
	specialtyRepo repositories.SpecialtyRepository
}

func NewCandidateService(candidateRepo repositories.CandidateRepository, specialtyRepo repositories.SpecialtyRepository) CandidateService {
	return &CandidateServiceImpl{candidateRepo: candidateRepo, specialtyRepo: specialtyRepo}
}

func (s *CandidateServiceImpl) List(limit, offset int) (*CandidateList, error) {
	if limit <= 0 {
		limit = defaultJobPageSize
	}
	if limit > maxJobPageSize {
		limit = maxJobPageSize
	}
	if offset < 0 {
		offset = 0
	}

	candidates, total, err := s.candidateRepo.FindAll(limit, offset)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return &CandidateList{Candidates: candidates, Total: total}, nil
}

func (s *CandidateServiceImpl) Get(id uint) (*models.Candidate, error) {
	candidate, err := s.candidateRepo.FindByID(id)
	if err != nil {
		if apperrors.Is(err, repositories.ErrCandidateNotFound) {
			return nil, apperrors.NewNotFoundError("candidate", "Candidate not found")
		}
		return nil, apperrors.InternalError(err)
	}
	return candidate, nil
}

func (s *CandidateServiceImpl) Create(req *dto.CreateCandidateRequest) (*models.Candidate, error) {
	profile := strings.TrimSpace(req.Profile)
	exists, err := s.specialtyRepo.ExistsByName(profile, 0)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	if !exists {
		return nil, apperrors.NewBadRequestError("Unknown specialty: " + profile)
	}

	candidate := &models.Candidate{
		Nombre:          strings.TrimSpace(req.Nombre),
		ApellidoPaterno: req.ApellidoPaterno,
		ApellidoMaterno: req.ApellidoMaterno,
		Email:           strings.ToLower(strings.TrimSpace(req.Email)),
		Telefono:        req.Telefono,
		Profile:         profile,
		CVUrl:           req.CVUrl,
	}

	if err := s.candidateRepo.Create(candidate); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return candidate, nil
}
