package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"inakat_backend/internal/auth"
	"inakat_backend/internal/email"
	"inakat_backend/internal/models"
	"inakat_backend/internal/repositories"
	"inakat_backend/internal/services/dto"
	"inakat_backend/pkg/apperrors"
)

type fakeRequestRepo struct {
	requests map[uint]*models.CompanyRequest
	nextID   uint
}

func newFakeRequestRepo() *fakeRequestRepo {
	return &fakeRequestRepo{requests: map[uint]*models.CompanyRequest{}, nextID: 1}
}

func (f *fakeRequestRepo) FindAll(status models.RequestStatus) ([]models.CompanyRequest, error) {
	var out []models.CompanyRequest
	for _, r := range f.requests {
		if status == "" || r.Status == status {
			out = append(out, *r)
		}
	}
	return out, nil
}

func (f *fakeRequestRepo) FindByID(id uint) (*models.CompanyRequest, error) {
	if r, ok := f.requests[id]; ok {
		copied := *r
		return &copied, nil
	}
	return nil, repositories.ErrCompanyRequestNotFound
}

func (f *fakeRequestRepo) HasPendingByEmail(email string) (bool, error) {
	for _, r := range f.requests {
		if r.CorreoEmpresa == email && r.Status == models.RequestStatusPending {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeRequestRepo) Create(r *models.CompanyRequest) error {
	r.ID = f.nextID
	f.nextID++
	f.requests[r.ID] = r
	return nil
}

func (f *fakeRequestRepo) Update(r *models.CompanyRequest) error {
	if _, ok := f.requests[r.ID]; !ok {
		return repositories.ErrCompanyRequestNotFound
	}
	copied := *r
	f.requests[r.ID] = &copied
	return nil
}

// recordingMailer captures outgoing notifications.
type recordingMailer struct {
	approved []string // tempPassword per call
	rejected []string // reason per call
	lastTo   string
	failWith error
}

func (m *recordingMailer) Send(*email.Message) error { return nil }

func (m *recordingMailer) SendCompanyApproved(to, companyName, loginEmail, tempPassword string) error {
	if m.failWith != nil {
		return m.failWith
	}
	m.lastTo = to
	m.approved = append(m.approved, tempPassword)
	return nil
}

func (m *recordingMailer) SendCompanyRejected(to, companyName, reason string) error {
	if m.failWith != nil {
		return m.failWith
	}
	m.lastTo = to
	m.rejected = append(m.rejected, reason)
	return nil
}

func validCompanyRequest() *dto.CreateCompanyRequestRequest {
	return &dto.CreateCompanyRequestRequest{
		Nombre:           "Laura",
		ApellidoPaterno:  "Mendez",
		ApellidoMaterno:  "Rios",
		NombreEmpresa:    "Acme MX",
		CorreoEmpresa:    "Contacto@Acme.MX",
		RazonSocial:      "Acme de Mexico SA de CV",
		RFC:              "abc123456a1a",
		DireccionEmpresa: "Av. Reforma 123, CDMX",
	}
}

type requestFixture struct {
	svc      CompanyRequestService
	requests *fakeRequestRepo
	users    *fakeUserRepo
	mailer   *recordingMailer
}

func newRequestFixture() *requestFixture {
	f := &requestFixture{
		requests: newFakeRequestRepo(),
		users:    newFakeUserRepo(),
		mailer:   &recordingMailer{},
	}
	f.svc = NewCompanyRequestService(f.requests, f.users, f.mailer)
	return f
}

func TestCreateCompanyRequestNormalizes(t *testing.T) {
	f := newRequestFixture()

	created, err := f.svc.Create(validCompanyRequest())
	require.NoError(t, err)

	assert.Equal(t, "contacto@acme.mx", created.CorreoEmpresa)
	assert.Equal(t, "ABC123456A1A", created.RFC)
	assert.Equal(t, models.RequestStatusPending, created.Status)
}

func TestCreateCompanyRequestDuplicatePending(t *testing.T) {
	f := newRequestFixture()
	_, err := f.svc.Create(validCompanyRequest())
	require.NoError(t, err)

	_, err = f.svc.Create(validCompanyRequest())
	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.CodeConflict, appErr.Code)
}

func TestCreateCompanyRequestExistingAccount(t *testing.T) {
	f := newRequestFixture()
	f.users.add(&models.User{Email: "contacto@acme.mx", Role: models.UserRoleCompany, IsActive: true})

	_, err := f.svc.Create(validCompanyRequest())
	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.CodeConflict, appErr.Code)
}

func TestApproveProvisionsCompanyAccount(t *testing.T) {
	f := newRequestFixture()
	created, err := f.svc.Create(validCompanyRequest())
	require.NoError(t, err)

	approved, err := f.svc.Approve(created.ID, 7)
	require.NoError(t, err)

	assert.Equal(t, models.RequestStatusApproved, approved.Status)
	require.NotNil(t, approved.ReviewedBy)
	assert.Equal(t, uint(7), *approved.ReviewedBy)
	assert.NotNil(t, approved.ReviewedAt)

	user, err := f.users.FindByEmail("contacto@acme.mx")
	require.NoError(t, err)
	assert.Equal(t, models.UserRoleCompany, user.Role)
	assert.True(t, user.IsActive)

	// The mailed temporary password matches the stored hash.
	require.Len(t, f.mailer.approved, 1)
	assert.Equal(t, "contacto@acme.mx", f.mailer.lastTo)
	assert.True(t, auth.CheckPasswordHash(f.mailer.approved[0], user.PasswordHash))
}

func TestApproveSucceedsWhenEmailFails(t *testing.T) {
	f := newRequestFixture()
	created, err := f.svc.Create(validCompanyRequest())
	require.NoError(t, err)

	f.mailer.failWith = assert.AnError

	approved, err := f.svc.Approve(created.ID, 7)
	require.NoError(t, err)
	assert.Equal(t, models.RequestStatusApproved, approved.Status)
}

func TestApproveNonPending(t *testing.T) {
	f := newRequestFixture()
	created, err := f.svc.Create(validCompanyRequest())
	require.NoError(t, err)
	_, err = f.svc.Approve(created.ID, 7)
	require.NoError(t, err)

	_, err = f.svc.Approve(created.ID, 7)
	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.CodeInvalidOperation, appErr.Code)
}

func TestReject(t *testing.T) {
	f := newRequestFixture()
	created, err := f.svc.Create(validCompanyRequest())
	require.NoError(t, err)

	rejected, err := f.svc.Reject(created.ID, 7, "  Documentos incompletos ")
	require.NoError(t, err)

	assert.Equal(t, models.RequestStatusRejected, rejected.Status)
	require.NotNil(t, rejected.RejectionReason)
	assert.Equal(t, "Documentos incompletos", *rejected.RejectionReason)
	require.Len(t, f.mailer.rejected, 1)
	assert.Equal(t, "Documentos incompletos", f.mailer.rejected[0])

	// No account gets created on rejection.
	_, err = f.users.FindByEmail("contacto@acme.mx")
	assert.ErrorIs(t, err, repositories.ErrUserNotFound)
}

func TestGenerateTempPassword(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 20; i++ {
		pw, err := generateTempPassword(12)
		require.NoError(t, err)
		assert.Len(t, pw, 12)
		assert.False(t, seen[pw], "temp passwords must not repeat")
		seen[pw] = true
	}
}
