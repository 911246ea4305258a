package auth

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

// HashCost mirrors the original deployment: bcrypt with 10 rounds.
const HashCost = 10

// HashPassword produces a salted bcrypt hash of the plaintext.
func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), HashCost)
	return string(bytes), err
}

// CheckPasswordHash verifies a plaintext password against a stored hash.
// A malformed stored hash verifies as false rather than erroring out.
func CheckPasswordHash(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}

// ValidatePassword enforces the minimum password policy.
func ValidatePassword(password string) error {
	if len(password) < 6 {
		return errors.New("password must be at least 6 characters long")
	}
	return nil
}
