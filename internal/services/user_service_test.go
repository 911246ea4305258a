package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"inakat_backend/internal/auth"
	"inakat_backend/internal/models"
	"inakat_backend/internal/services/dto"
	"inakat_backend/pkg/apperrors"
)

func seedAccount(repo *fakeUserRepo, email string, role models.UserRole, active bool) *models.User {
	return repo.add(&models.User{
		Email:        email,
		PasswordHash: "x",
		Nombre:       "Cuenta",
		Role:         role,
		IsActive:     active,
	})
}

func TestListByRoleFiltersAndCounts(t *testing.T) {
	repo := newFakeUserRepo()
	seedAccount(repo, "admin@inakat.com", models.UserRoleAdmin, true)
	seedAccount(repo, "empresa1@acme.com", models.UserRoleCompany, true)
	seedAccount(repo, "empresa2@acme.com", models.UserRoleCompany, false)
	svc := NewUserService(repo)

	list, err := svc.ListByRole("company", 0, 0)
	require.NoError(t, err)
	assert.Len(t, list.Users, 2)
	assert.Equal(t, int64(2), list.Total)
	for _, u := range list.Users {
		assert.Equal(t, "company", u.Role)
	}
}

func TestListByRoleRejectsUnknownRole(t *testing.T) {
	svc := NewUserService(newFakeUserRepo())

	_, err := svc.ListByRole("superuser", 0, 0)
	require.Error(t, err)
	var appErr *apperrors.AppError
	require.True(t, apperrors.As(err, &appErr))
	assert.Equal(t, 400, appErr.HTTPCode)
	assert.Contains(t, appErr.Message, "Unknown role: superuser")
}

func TestSetActiveDeactivatesAccount(t *testing.T) {
	repo := newFakeUserRepo()
	admin := seedAccount(repo, "admin@inakat.com", models.UserRoleAdmin, true)
	company := seedAccount(repo, "empresa@acme.com", models.UserRoleCompany, true)
	svc := NewUserService(repo)

	resp, err := svc.SetActive(admin.ID, company.ID, false)
	require.NoError(t, err)
	assert.False(t, resp.IsActive)

	stored, err := repo.FindByID(company.ID)
	require.NoError(t, err)
	assert.False(t, stored.IsActive)
}

func TestSetActiveReactivatesAccount(t *testing.T) {
	repo := newFakeUserRepo()
	admin := seedAccount(repo, "admin@inakat.com", models.UserRoleAdmin, true)
	company := seedAccount(repo, "empresa@acme.com", models.UserRoleCompany, false)
	svc := NewUserService(repo)

	resp, err := svc.SetActive(admin.ID, company.ID, true)
	require.NoError(t, err)
	assert.True(t, resp.IsActive)
}

func TestSetActiveRejectsOwnAccount(t *testing.T) {
	repo := newFakeUserRepo()
	admin := seedAccount(repo, "admin@inakat.com", models.UserRoleAdmin, true)
	svc := NewUserService(repo)

	_, err := svc.SetActive(admin.ID, admin.ID, false)
	require.Error(t, err)
	var appErr *apperrors.AppError
	require.True(t, apperrors.As(err, &appErr))
	assert.Equal(t, 400, appErr.HTTPCode)

	// The account is untouched.
	stored, err := repo.FindByID(admin.ID)
	require.NoError(t, err)
	assert.True(t, stored.IsActive)
}

func TestSetActiveUnknownUser(t *testing.T) {
	repo := newFakeUserRepo()
	admin := seedAccount(repo, "admin@inakat.com", models.UserRoleAdmin, true)
	svc := NewUserService(repo)

	_, err := svc.SetActive(admin.ID, 99, false)
	require.Error(t, err)
	var appErr *apperrors.AppError
	require.True(t, apperrors.As(err, &appErr))
	assert.Equal(t, 404, appErr.HTTPCode)
}

func TestDeactivatedAccountCannotLogIn(t *testing.T) {
	repo := newFakeUserRepo()
	admin := seedAccount(repo, "admin@inakat.com", models.UserRoleAdmin, true)

	hash, err := auth.HashPassword("secret123")
	require.NoError(t, err)
	company := repo.add(&models.User{
		Email:        "empresa@acme.com",
		PasswordHash: hash,
		Nombre:       "Empresa",
		Role:         models.UserRoleCompany,
		IsActive:     true,
	})

	users := NewUserService(repo)
	_, err = users.SetActive(admin.ID, company.ID, false)
	require.NoError(t, err)

	logins := NewAuthService(repo, auth.NewManager("test-secret", 7*24*time.Hour))
	_, err = logins.Login(&dto.LoginRequest{Email: "empresa@acme.com", Password: "secret123"})
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrAccountDisabled)
}
