package services

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"inakat_backend/internal/auth"
	"inakat_backend/internal/models"
	"inakat_backend/internal/services/dto"
	"inakat_backend/pkg/apperrors"
)

func newTestAuthService(t *testing.T) (AuthService, *fakeUserRepo, *auth.Manager) {
	t.Helper()
	userRepo := newFakeUserRepo()
	tokens := auth.NewManager("test-secret", 7*24*time.Hour)
	return NewAuthService(userRepo, tokens), userRepo, tokens
}

func seedUser(t *testing.T, repo *fakeUserRepo, email, password string, active bool) *models.User {
	t.Helper()
	hash, err := auth.HashPassword(password)
	require.NoError(t, err)
	return repo.add(&models.User{
		Email:        email,
		PasswordHash: hash,
		Nombre:       "Test",
		Role:         models.UserRoleAdmin,
		IsActive:     active,
	})
}

func TestLoginSuccess(t *testing.T) {
	svc, repo, tokens := newTestAuthService(t)
	user := seedUser(t, repo, "admin@inakat.mx", "secret123", true)

	result, err := svc.Login(&dto.LoginRequest{Email: "admin@inakat.mx", Password: "secret123"})
	require.NoError(t, err)

	assert.Equal(t, user.ID, result.User.ID)
	assert.Equal(t, "admin", result.User.Role)

	claims, err := tokens.VerifyToken(result.Token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
	assert.NotNil(t, repo.users[user.ID].LastLogin)
}

func TestLoginNormalizesEmail(t *testing.T) {
	svc, repo, _ := newTestAuthService(t)
	seedUser(t, repo, "admin@inakat.mx", "secret123", true)

	_, err := svc.Login(&dto.LoginRequest{Email: "  Admin@Inakat.MX ", Password: "secret123"})
	assert.NoError(t, err)
}

func TestLoginUnknownEmailAndWrongPasswordLookIdentical(t *testing.T) {
	svc, repo, _ := newTestAuthService(t)
	seedUser(t, repo, "admin@inakat.mx", "secret123", true)

	_, unknownErr := svc.Login(&dto.LoginRequest{Email: "nobody@inakat.mx", Password: "secret123"})
	_, wrongErr := svc.Login(&dto.LoginRequest{Email: "admin@inakat.mx", Password: "wrong-password"})

	require.Error(t, unknownErr)
	require.Error(t, wrongErr)
	// Same error value both ways, so responses cannot reveal which
	// addresses are registered.
	assert.Equal(t, apperrors.ErrInvalidCredentials, unknownErr)
	assert.Equal(t, apperrors.ErrInvalidCredentials, wrongErr)
}

func TestLoginDisabledAccount(t *testing.T) {
	svc, repo, _ := newTestAuthService(t)
	user := seedUser(t, repo, "admin@inakat.mx", "secret123", false)

	_, err := svc.Login(&dto.LoginRequest{Email: "admin@inakat.mx", Password: "secret123"})
	assert.Equal(t, apperrors.ErrAccountDisabled, err)
	assert.Nil(t, repo.users[user.ID].LastLogin)
}

func TestLoginSucceedsWhenLastLoginUpdateFails(t *testing.T) {
	svc, repo, _ := newTestAuthService(t)
	seedUser(t, repo, "admin@inakat.mx", "secret123", true)
	repo.lastLoginErr = errors.New("write failed")

	result, err := svc.Login(&dto.LoginRequest{Email: "admin@inakat.mx", Password: "secret123"})
	require.NoError(t, err)
	assert.NotEmpty(t, result.Token)
}

func TestGetUser(t *testing.T) {
	svc, repo, _ := newTestAuthService(t)
	user := seedUser(t, repo, "admin@inakat.mx", "secret123", true)

	resp, err := svc.GetUser(user.ID)
	require.NoError(t, err)
	assert.Equal(t, user.Email, resp.Email)

	_, err = svc.GetUser(999)
	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.CodeNotFound, appErr.Code)
}

func TestGetUserDisabled(t *testing.T) {
	svc, repo, _ := newTestAuthService(t)
	user := seedUser(t, repo, "admin@inakat.mx", "secret123", false)

	_, err := svc.GetUser(user.ID)
	assert.Equal(t, apperrors.ErrAccountDisabled, err)
}
