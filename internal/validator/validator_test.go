package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type loginForm struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

type rfcForm struct {
	RFC string `json:"rfc" validate:"required,rfc"`
}

func TestValidateReportsJSONFieldNames(t *testing.T) {
	v := New()

	err := v.Validate(&loginForm{Email: "nope", Password: "123"})
	require.Error(t, err)

	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Contains(t, vErr.Errors, "email")
	assert.Contains(t, vErr.Errors, "password")
}

func TestValidateOK(t *testing.T) {
	v := New()
	assert.NoError(t, v.Validate(&loginForm{Email: "admin@inakat.mx", Password: "secret123"}))
}

func TestRFCRule(t *testing.T) {
	v := New()

	valid := []string{
		"ABC123456A1A", // persona moral, 12 chars
		"ABCD123456A1A",
		"Ñ&A123456A1A",
	}
	for _, rfc := range valid {
		assert.NoError(t, v.Validate(&rfcForm{RFC: rfc}), rfc)
	}

	invalid := []string{
		"abc123456a1a", // lowercase
		"AB123456A1A",  // too few letters
		"ABC12345A1A",  // date too short
		"ABC123456",    // missing homoclave
		"1234567890123",
	}
	for _, rfc := range invalid {
		assert.Error(t, v.Validate(&rfcForm{RFC: rfc}), rfc)
	}
}
