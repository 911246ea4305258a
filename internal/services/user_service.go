package services

import (
	"fmt"

	"inakat_backend/internal/models"
	"inakat_backend/internal/repositories"
	"inakat_backend/internal/services/dto"
	"inakat_backend/pkg/apperrors"
)

type UserList struct {
	Users []dto.AccountResponse
	Total int64
}

// UserService is the admin account surface: listing accounts by role and
// toggling activation. Accounts are never hard-deleted.
type UserService interface {
	ListByRole(role string, limit, offset int) (*UserList, error)
	SetActive(actorID, userID uint, active bool) (*dto.AccountResponse, error)
}

type UserServiceImpl struct {
	userRepo repositories.UserRepository
}

func NewUserService(userRepo repositories.UserRepository) UserService {
	return &UserServiceImpl{userRepo: userRepo}
}

const (
	defaultUserPageSize = 20
	maxUserPageSize     = 100
)

func (s *UserServiceImpl) ListByRole(role string, limit, offset int) (*UserList, error) {
	parsed, err := parseRole(role)
	if err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = defaultUserPageSize
	}
	if limit > maxUserPageSize {
		limit = maxUserPageSize
	}
	if offset < 0 {
		offset = 0
	}

	users, err := s.userRepo.FindByRole(parsed, limit, offset)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	total, err := s.userRepo.CountByRole(parsed)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	responses := make([]dto.AccountResponse, 0, len(users))
	for i := range users {
		responses = append(responses, toAccountResponse(&users[i]))
	}
	return &UserList{Users: responses, Total: total}, nil
}

// SetActive flips an account's activation flag. Admins cannot change their
// own account, so there is always at least one active admin left.
func (s *UserServiceImpl) SetActive(actorID, userID uint, active bool) (*dto.AccountResponse, error) {
	if actorID == userID {
		return nil, apperrors.NewBadRequestError("Cannot change the status of your own account")
	}

	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.NewNotFoundError("users", "User not found")
		}
		return nil, apperrors.InternalError(err)
	}

	if user.IsActive != active {
		if err := s.userRepo.SetActive(userID, active); err != nil {
			return nil, apperrors.InternalError(err)
		}
		user.IsActive = active
	}

	resp := toAccountResponse(user)
	return &resp, nil
}

func parseRole(role string) (models.UserRole, error) {
	switch models.UserRole(role) {
	case models.UserRoleAdmin, models.UserRoleCompany, models.UserRoleUser:
		return models.UserRole(role), nil
	default:
		return "", apperrors.NewBadRequestError(fmt.Sprintf("Unknown role: %s", role))
	}
}

func toAccountResponse(user *models.User) dto.AccountResponse {
	return dto.AccountResponse{
		ID:              user.ID,
		Email:           user.Email,
		Nombre:          user.Nombre,
		ApellidoPaterno: user.ApellidoPaterno,
		ApellidoMaterno: user.ApellidoMaterno,
		Role:            string(user.Role),
		IsActive:        user.IsActive,
		LastLogin:       user.LastLogin,
		CreatedAt:       user.CreatedAt,
	}
}
