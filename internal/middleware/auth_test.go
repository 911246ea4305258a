package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"inakat_backend/internal/auth"
	"inakat_backend/internal/models"
	"inakat_backend/pkg/contextkeys"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// stubVerifier maps token strings to canned outcomes.
type stubVerifier struct {
	claims map[string]*auth.Claims
	errs   map[string]error
}

func (s *stubVerifier) VerifyToken(token string) (*auth.Claims, error) {
	if err, ok := s.errs[token]; ok {
		return nil, err
	}
	if claims, ok := s.claims[token]; ok {
		return claims, nil
	}
	return nil, auth.ErrInvalidToken
}

func newStubVerifier() *stubVerifier {
	return &stubVerifier{
		claims: map[string]*auth.Claims{
			"admin-token": {UserID: 1, Email: "admin@inakat.mx", Role: "admin"},
			"user-token":  {UserID: 2, Email: "user@inakat.mx", Role: "user"},
		},
		errs: map[string]error{
			"expired-token": auth.ErrExpiredToken,
		},
	}
}

func apiRouter(verifier TokenVerifier) *gin.Engine {
	router := gin.New()
	protected := router.Group("/api", RequireAuth(verifier))
	protected.GET("/me", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"userId": c.GetUint(contextkeys.UserIDKey),
			"role":   c.GetString(contextkeys.RoleKey),
		})
	})
	admin := protected.Group("/admin", RequireRoles(models.UserRoleAdmin))
	admin.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	return router
}

func doRequest(router *gin.Engine, path, cookie, bearer string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if cookie != "" {
		req.AddCookie(&http.Cookie{Name: AuthCookieName, Value: cookie})
	}
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func errorCode(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var body struct {
		Success bool `json:"success"`
		Error   struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.False(t, body.Success)
	return body.Error.Code
}

func TestRequireAuthMissingToken(t *testing.T) {
	rec := doRequest(apiRouter(newStubVerifier()), "/api/me", "", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "UNAUTHORIZED", errorCode(t, rec))
}

func TestRequireAuthCookie(t *testing.T) {
	rec := doRequest(apiRouter(newStubVerifier()), "/api/me", "admin-token", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"userId":1`)
}

func TestRequireAuthBearerFallback(t *testing.T) {
	rec := doRequest(apiRouter(newStubVerifier()), "/api/me", "", "user-token")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"userId":2`)
}

func TestRequireAuthCookieWinsOverHeader(t *testing.T) {
	rec := doRequest(apiRouter(newStubVerifier()), "/api/me", "admin-token", "user-token")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"userId":1`)
}

func TestRequireAuthInvalidToken(t *testing.T) {
	rec := doRequest(apiRouter(newStubVerifier()), "/api/me", "garbage", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "UNAUTHORIZED", errorCode(t, rec))
}

func TestRequireAuthExpiredToken(t *testing.T) {
	rec := doRequest(apiRouter(newStubVerifier()), "/api/me", "expired-token", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "TOKEN_EXPIRED", errorCode(t, rec))
}

func TestRequireRoles(t *testing.T) {
	router := apiRouter(newStubVerifier())

	rec := doRequest(router, "/api/admin/ping", "admin-token", "")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = doRequest(router, "/api/admin/ping", "user-token", "")
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, "FORBIDDEN", errorCode(t, rec))
}

func pageRouter(verifier TokenVerifier) *gin.Engine {
	router := gin.New()
	pages := router.Group("/admin", RequirePageAuth(verifier, "/login", models.UserRoleAdmin))
	pages.GET("/panel", func(c *gin.Context) {
		c.String(http.StatusOK, "panel")
	})
	return router
}

func TestRequirePageAuthRedirectsAnonymous(t *testing.T) {
	rec := doRequest(pageRouter(newStubVerifier()), "/admin/panel", "", "")
	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/login?redirect=%2Fadmin%2Fpanel", rec.Header().Get("Location"))
}

func TestRequirePageAuthPreservesQuery(t *testing.T) {
	rec := doRequest(pageRouter(newStubVerifier()), "/admin/panel?tab=jobs", "", "")
	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/login?redirect=%2Fadmin%2Fpanel%3Ftab%3Djobs", rec.Header().Get("Location"))
}

func TestRequirePageAuthExpiredReason(t *testing.T) {
	rec := doRequest(pageRouter(newStubVerifier()), "/admin/panel", "expired-token", "")
	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/login?redirect=%2Fadmin%2Fpanel&reason=expired", rec.Header().Get("Location"))
}

func TestRequirePageAuthWrongRoleGoesHome(t *testing.T) {
	rec := doRequest(pageRouter(newStubVerifier()), "/admin/panel", "user-token", "")
	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/", rec.Header().Get("Location"))
}

func TestRequirePageAuthAllowsAdmin(t *testing.T) {
	rec := doRequest(pageRouter(newStubVerifier()), "/admin/panel", "admin-token", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "panel", rec.Body.String())
}
