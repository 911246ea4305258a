package apperrors

import "net/http"

// Predefined errors shared across services. Auth failure messages are
// intentionally identical for unknown-email and wrong-password so callers
// cannot enumerate accounts.
var (
	ErrInvalidCredentials = New(
		CodeInvalidCredentials,
		"auth",
		"Invalid credentials",
		http.StatusUnauthorized,
	)

	ErrAccountDisabled = New(
		CodeAccountDisabled,
		"auth",
		"Account disabled. Contact an administrator.",
		http.StatusUnauthorized,
	)

	ErrInsufficientPermissions = New(
		CodeForbidden,
		"auth",
		"Insufficient permissions",
		http.StatusForbidden,
	)

	ErrFileTooLarge = New(
		CodeLimitExceeded,
		"validation",
		"File too large. Maximum size is 5MB",
		http.StatusBadRequest,
	)

	ErrInvalidFileType = New(
		CodeValidationFailed,
		"validation",
		"File type not allowed. Only PDF, JPG, PNG",
		http.StatusBadRequest,
	)
)

// Factories for wrapping repository errors.

func ErrNotFound(err error) *AppError {
	return Wrap(err, CodeNotFound, "resource", "Resource not found", http.StatusNotFound)
}

func ErrAlreadyExists(err error) *AppError {
	return Wrap(err, CodeAlreadyExists, "resource", "Resource already exists", http.StatusConflict)
}

func ErrConflict(err error, domain, message string) *AppError {
	return Wrap(err, CodeConflict, domain, message, http.StatusConflict)
}

func ErrInvalidOperation(domain, message string) *AppError {
	return New(CodeInvalidOperation, domain, message, http.StatusBadRequest)
}
