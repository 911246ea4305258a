package middleware

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/gin-gonic/gin"

	"inakat_backend/internal/auth"
	"inakat_backend/internal/models"
	"inakat_backend/pkg/apperrors"
	"inakat_backend/pkg/contextkeys"
)

// AuthCookieName is the session cookie the login handler sets and the
// request gate reads.
const AuthCookieName = "auth-token"

// TokenVerifier is what the gate needs from the token manager. Narrow on
// purpose so tests can substitute a stub.
type TokenVerifier interface {
	VerifyToken(token string) (*auth.Claims, error)
}

// extractToken prefers the session cookie; an Authorization bearer header
// is accepted as a fallback for non-browser clients.
func extractToken(c *gin.Context) string {
	if cookie, err := c.Cookie(AuthCookieName); err == nil && cookie != "" {
		return cookie
	}
	header := c.GetHeader("Authorization")
	if strings.HasPrefix(header, "Bearer ") {
		return strings.TrimPrefix(header, "Bearer ")
	}
	return ""
}

func setIdentity(c *gin.Context, claims *auth.Claims) {
	c.Set(contextkeys.UserIDKey, claims.UserID)
	c.Set(contextkeys.EmailKey, claims.Email)
	c.Set(contextkeys.RoleKey, claims.Role)
}

// RequireAuth gates API routes: a missing, malformed or expired token
// aborts with 401. Expiry gets its own code so clients can distinguish
// "log in again" from "bad token".
func RequireAuth(verifier TokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c)
		if token == "" {
			abortUnauthorized(c, apperrors.CodeUnauthorized, "Authentication required")
			return
		}

		claims, err := verifier.VerifyToken(token)
		if err != nil {
			if err == auth.ErrExpiredToken {
				abortUnauthorized(c, apperrors.CodeTokenExpired, "Session expired. Please log in again.")
				return
			}
			abortUnauthorized(c, apperrors.CodeUnauthorized, "Invalid authentication token")
			return
		}

		setIdentity(c, claims)
		c.Next()
	}
}

// RequireRoles gates a route group to the given roles. Must run after
// RequireAuth.
func RequireRoles(roles ...models.UserRole) gin.HandlerFunc {
	allowed := make(map[string]bool, len(roles))
	for _, role := range roles {
		allowed[string(role)] = true
	}

	return func(c *gin.Context) {
		role := c.GetString(contextkeys.RoleKey)
		if !allowed[role] {
			c.AbortWithStatusJSON(http.StatusForbidden, apperrors.ErrorResponse{
				Success: false,
				Error:   apperrors.ErrInsufficientPermissions,
			})
			return
		}
		c.Next()
	}
}

// RequirePageAuth gates server-rendered pages. Instead of JSON errors it
// redirects to the login page, preserving the originally requested path so
// login can bounce the user back. Expired sessions carry reason=expired.
// An authenticated user lacking the role is sent to the home page.
func RequirePageAuth(verifier TokenVerifier, loginPath string, roles ...models.UserRole) gin.HandlerFunc {
	allowed := make(map[string]bool, len(roles))
	for _, role := range roles {
		allowed[string(role)] = true
	}

	return func(c *gin.Context) {
		redirectTo := func(reason string) {
			target := loginPath + "?redirect=" + url.QueryEscape(c.Request.URL.RequestURI())
			if reason != "" {
				target += "&reason=" + reason
			}
			c.Redirect(http.StatusFound, target)
			c.Abort()
		}

		token := extractToken(c)
		if token == "" {
			redirectTo("")
			return
		}

		claims, err := verifier.VerifyToken(token)
		if err != nil {
			if err == auth.ErrExpiredToken {
				redirectTo("expired")
			} else {
				redirectTo("")
			}
			return
		}

		if len(allowed) > 0 && !allowed[claims.Role] {
			c.Redirect(http.StatusFound, "/")
			c.Abort()
			return
		}

		setIdentity(c, claims)
		c.Next()
	}
}

func abortUnauthorized(c *gin.Context, code apperrors.ErrorCode, message string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, apperrors.ErrorResponse{
		Success: false,
		Error:   apperrors.New(code, "auth", message, http.StatusUnauthorized),
	})
}
