package validator

import (
	"regexp"

	"github.com/go-playground/validator/v10"
)

// Mexican RFC (tax ID), e.g. ABC123456A1A.
var rfcPattern = regexp.MustCompile(`^[A-ZÑ&]{3,4}\d{6}[A-V1-9][A-Z1-9][0-9A]$`)

func registerCustomRules(v *validator.Validate) error {
	return v.RegisterValidation("rfc", func(fl validator.FieldLevel) bool {
		return rfcPattern.MatchString(fl.Field().String())
	})
}
