package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"inakat_backend/internal/metrics"
	"inakat_backend/internal/middleware"
	"inakat_backend/internal/services"
	"inakat_backend/internal/services/dto"
	"inakat_backend/internal/validator"
	"inakat_backend/pkg/apperrors"
	"inakat_backend/pkg/contextkeys"
)

type AuthHandler struct {
	BaseHandler
	authService  services.AuthService
	cookieMaxAge int
	secureCookie bool
}

// NewAuthHandler builds the login/logout/session surface. cookieMaxAge is
// the session TTL in seconds; secureCookie should be true in production so
// the cookie only travels over HTTPS.
func NewAuthHandler(v *validator.Validator, authService services.AuthService, cookieMaxAge int, secureCookie bool) *AuthHandler {
	return &AuthHandler{
		BaseHandler:  NewBaseHandler(v),
		authService:  authService,
		cookieMaxAge: cookieMaxAge,
		secureCookie: secureCookie,
	}
}

// Login authenticates and sets the HttpOnly session cookie. The token is
// never in the JSON body; browser clients only ever hold it in the cookie.
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	result, err := h.authService.Login(&req)
	if err != nil {
		metrics.RecordLogin(false)
		apperrors.HandleError(c, err)
		return
	}
	metrics.RecordLogin(true)

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(middleware.AuthCookieName, result.Token, h.cookieMaxAge, "/", "", h.secureCookie, true)

	h.OK(c, gin.H{"user": result.User})
}

// Logout clears the session cookie. Always succeeds, even without one.
func (h *AuthHandler) Logout(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(middleware.AuthCookieName, "", -1, "/", "", h.secureCookie, true)

	h.OK(c, gin.H{"message": "Logged out"})
}

// Me echoes the authenticated account. Runs behind RequireAuth.
func (h *AuthHandler) Me(c *gin.Context) {
	userID := c.GetUint(contextkeys.UserIDKey)

	user, err := h.authService.GetUser(userID)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	h.OK(c, gin.H{"user": user})
}
