package services

import (
	"strings"
	"time"

	"inakat_backend/internal/auth"
	"inakat_backend/internal/logger"
	"inakat_backend/internal/models"
	"inakat_backend/internal/repositories"
	"inakat_backend/internal/services/dto"
	"inakat_backend/pkg/apperrors"
)

type AuthService interface {
	Login(req *dto.LoginRequest) (*dto.LoginResult, error)
	GetUser(userID uint) (*dto.UserResponse, error)
}

type AuthServiceImpl struct {
	userRepo repositories.UserRepository
	tokens   *auth.Manager
}

func NewAuthService(userRepo repositories.UserRepository, tokens *auth.Manager) AuthService {
	return &AuthServiceImpl{
		userRepo: userRepo,
		tokens:   tokens,
	}
}

// Login authenticates an account and issues a session token.
//
// Unknown email and wrong password fail with the same error so callers
// cannot probe which addresses are registered. No account state is mutated
// on any failure branch.
func (s *AuthServiceImpl) Login(req *dto.LoginRequest) (*dto.LoginResult, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	user, err := s.userRepo.FindByEmail(email)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, apperrors.InternalError(err)
	}

	if !user.IsActive {
		return nil, apperrors.ErrAccountDisabled
	}

	if !auth.CheckPasswordHash(req.Password, user.PasswordHash) {
		return nil, apperrors.ErrInvalidCredentials
	}

	// Best-effort bookkeeping; a failure here must not abort the login.
	if err := s.userRepo.UpdateLastLogin(user.ID, time.Now().UTC()); err != nil {
		logger.Warn("failed to update last login", "user_id", user.ID, "error", err)
	}

	token, err := s.tokens.GenerateToken(user.ID, user.Email, string(user.Role))
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.LoginResult{
		User:  toUserResponse(user),
		Token: token,
	}, nil
}

// GetUser returns an active account for session echo endpoints.
func (s *AuthServiceImpl) GetUser(userID uint) (*dto.UserResponse, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.NewNotFoundError("user", "User not found")
		}
		return nil, apperrors.InternalError(err)
	}
	if !user.IsActive {
		return nil, apperrors.ErrAccountDisabled
	}
	resp := toUserResponse(user)
	return &resp, nil
}

func toUserResponse(user *models.User) dto.UserResponse {
	return dto.UserResponse{
		ID:              user.ID,
		Email:           user.Email,
		Nombre:          user.Nombre,
		ApellidoPaterno: user.ApellidoPaterno,
		ApellidoMaterno: user.ApellidoMaterno,
		Role:            string(user.Role),
	}
}
