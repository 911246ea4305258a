package apperrors

import (
	"github.com/gin-gonic/gin"

	"inakat_backend/internal/logger"
)

// ErrorResponse is the wire envelope for every failed request:
// {"success": false, "error": {...}}.
type ErrorResponse struct {
	Success bool      `json:"success"`
	Error   *AppError `json:"error"`
}

type GinErrorHandler struct {
	Debug bool
}

func (h *GinErrorHandler) HandleGinError(c *gin.Context, err error) {
	appErr, ok := AsAppError(err)
	if !ok {
		appErr = InternalError(err)
	}
	if appErr.HTTPCode >= 500 && !h.Debug {
		// Never leak driver or stack detail to the client.
		appErr = New(appErr.Code, appErr.Domain, "Internal server error", appErr.HTTPCode)
	}

	if appErr.HTTPCode >= 500 {
		logger.Error("request failed",
			"path", c.Request.URL.Path,
			"method", c.Request.Method,
			"error", err.Error(),
		)
	}

	c.JSON(appErr.HTTPCode, ErrorResponse{Success: false, Error: appErr})
}

// HandleError is the helper handlers call at their error boundary.
func HandleError(c *gin.Context, err error) {
	handler := &GinErrorHandler{Debug: gin.Mode() != gin.ReleaseMode}
	handler.HandleGinError(c, err)
}

func AsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}
