package services

import (
	"crypto/rand"
	"math/big"
	"strings"
	"time"

	"inakat_backend/internal/auth"
	"inakat_backend/internal/email"
	"inakat_backend/internal/logger"
	"inakat_backend/internal/models"
	"inakat_backend/internal/repositories"
	"inakat_backend/internal/services/dto"
	"inakat_backend/pkg/apperrors"
)

type CompanyRequestService interface {
	List(status models.RequestStatus) ([]models.CompanyRequest, error)
	Get(id uint) (*models.CompanyRequest, error)
	Create(req *dto.CreateCompanyRequestRequest) (*models.CompanyRequest, error)
	Approve(id uint, reviewerID uint) (*models.CompanyRequest, error)
	Reject(id uint, reviewerID uint, reason string) (*models.CompanyRequest, error)
}

type CompanyRequestServiceImpl struct {
	requestRepo repositories.CompanyRequestRepository
	userRepo    repositories.UserRepository
	mailer      email.Provider
}

func NewCompanyRequestService(
	requestRepo repositories.CompanyRequestRepository,
	userRepo repositories.UserRepository,
	mailer email.Provider,
) CompanyRequestService {
	return &CompanyRequestServiceImpl{
		requestRepo: requestRepo,
		userRepo:    userRepo,
		mailer:      mailer,
	}
}

func (s *CompanyRequestServiceImpl) List(status models.RequestStatus) ([]models.CompanyRequest, error) {
	requests, err := s.requestRepo.FindAll(status)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return requests, nil
}

func (s *CompanyRequestServiceImpl) Get(id uint) (*models.CompanyRequest, error) {
	request, err := s.requestRepo.FindByID(id)
	if err != nil {
		if apperrors.Is(err, repositories.ErrCompanyRequestNotFound) {
			return nil, apperrors.NewNotFoundError("company_request", "Request not found")
		}
		return nil, apperrors.InternalError(err)
	}
	return request, nil
}

// Create registers a new company request. One pending request per company
// email at a time; a registered account with the same email also blocks.
func (s *CompanyRequestServiceImpl) Create(req *dto.CreateCompanyRequestRequest) (*models.CompanyRequest, error) {
	correo := strings.ToLower(strings.TrimSpace(req.CorreoEmpresa))

	pending, err := s.requestRepo.HasPendingByEmail(correo)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	if pending {
		return nil, apperrors.NewConflictError("company_request",
			"A pending request already exists for this email")
	}

	if _, err := s.userRepo.FindByEmail(correo); err == nil {
		return nil, apperrors.NewConflictError("company_request",
			"An account with this email already exists")
	} else if !apperrors.Is(err, repositories.ErrUserNotFound) {
		return nil, apperrors.InternalError(err)
	}

	request := &models.CompanyRequest{
		Nombre:                    strings.TrimSpace(req.Nombre),
		ApellidoPaterno:           strings.TrimSpace(req.ApellidoPaterno),
		ApellidoMaterno:           strings.TrimSpace(req.ApellidoMaterno),
		NombreEmpresa:             strings.TrimSpace(req.NombreEmpresa),
		CorreoEmpresa:             correo,
		SitioWeb:                  req.SitioWeb,
		RazonSocial:               strings.TrimSpace(req.RazonSocial),
		RFC:                       strings.ToUpper(strings.TrimSpace(req.RFC)),
		DireccionEmpresa:          strings.TrimSpace(req.DireccionEmpresa),
		IdentificacionUrl:         req.IdentificacionUrl,
		DocumentosConstitucionUrl: req.DocumentosConstitucionUrl,
		Status:                    models.RequestStatusPending,
	}

	if err := s.requestRepo.Create(request); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return request, nil
}

// Approve provisions a company-role account with a generated temporary
// password and mails the credentials. The account is created before the
// request is marked approved so a crash never leaves an approved request
// without an account. The email is best-effort.
func (s *CompanyRequestServiceImpl) Approve(id uint, reviewerID uint) (*models.CompanyRequest, error) {
	request, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	if request.Status != models.RequestStatusPending {
		return nil, apperrors.ErrInvalidOperation("company_request",
			"Only pending requests can be approved")
	}

	tempPassword, err := generateTempPassword(12)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	hash, err := auth.HashPassword(tempPassword)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	user := &models.User{
		Email:           request.CorreoEmpresa,
		PasswordHash:    hash,
		Nombre:          request.NombreEmpresa,
		ApellidoPaterno: &request.ApellidoPaterno,
		ApellidoMaterno: &request.ApellidoMaterno,
		Role:            models.UserRoleCompany,
		IsActive:        true,
	}
	if err := s.userRepo.Create(user); err != nil {
		if apperrors.Is(err, repositories.ErrUserAlreadyExists) {
			return nil, apperrors.NewConflictError("company_request",
				"An account with this email already exists")
		}
		return nil, apperrors.InternalError(err)
	}

	now := time.Now().UTC()
	request.Status = models.RequestStatusApproved
	request.ReviewedAt = &now
	request.ReviewedBy = &reviewerID
	if err := s.requestRepo.Update(request); err != nil {
		return nil, apperrors.InternalError(err)
	}

	if err := s.mailer.SendCompanyApproved(request.CorreoEmpresa, request.NombreEmpresa, user.Email, tempPassword); err != nil {
		logger.Warn("failed to send approval email",
			"request_id", request.ID, "email", request.CorreoEmpresa, "error", err)
	}

	return request, nil
}

// Reject marks the request rejected and mails the reason. Best-effort
// email, same as Approve.
func (s *CompanyRequestServiceImpl) Reject(id uint, reviewerID uint, reason string) (*models.CompanyRequest, error) {
	request, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	if request.Status != models.RequestStatusPending {
		return nil, apperrors.ErrInvalidOperation("company_request",
			"Only pending requests can be rejected")
	}

	now := time.Now().UTC()
	reason = strings.TrimSpace(reason)
	request.Status = models.RequestStatusRejected
	request.ReviewedAt = &now
	request.ReviewedBy = &reviewerID
	if reason != "" {
		request.RejectionReason = &reason
	}
	if err := s.requestRepo.Update(request); err != nil {
		return nil, apperrors.InternalError(err)
	}

	if err := s.mailer.SendCompanyRejected(request.CorreoEmpresa, request.NombreEmpresa, reason); err != nil {
		logger.Warn("failed to send rejection email",
			"request_id", request.ID, "email", request.CorreoEmpresa, "error", err)
	}

	return request, nil
}

// tempPasswordAlphabet omits ambiguous glyphs (0/O, 1/l/I).
const tempPasswordAlphabet = "abcdefghijkmnpqrstuvwxyzABCDEFGHJKLMNPQRSTUVWXYZ23456789"

func generateTempPassword(length int) (string, error) {
	out := make([]byte, length)
	max := big.NewInt(int64(len(tempPasswordAlphabet)))
	for i := range out {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", err
		}
		out[i] = tempPasswordAlphabet[n.Int64()]
	}
	return string(out), nil
}
