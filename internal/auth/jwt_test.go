package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndVerifyToken(t *testing.T) {
	m := NewManager("test-secret", 7*24*time.Hour)

	token, err := m.GenerateToken(42, "admin@inakat.mx", "admin")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := m.VerifyToken(token)
	require.NoError(t, err)
	assert.Equal(t, uint(42), claims.UserID)
	assert.Equal(t, "admin@inakat.mx", claims.Email)
	assert.Equal(t, "admin", claims.Role)
	assert.Equal(t, "42", claims.Subject)
}

func TestVerifyTokenExpiry(t *testing.T) {
	// Negative TTL mints a token that is already expired.
	expired := NewManager("test-secret", -time.Hour)
	token, err := expired.GenerateToken(1, "user@inakat.mx", "user")
	require.NoError(t, err)

	_, err = NewManager("test-secret", time.Hour).VerifyToken(token)
	assert.ErrorIs(t, err, ErrExpiredToken)
}

func TestVerifyTokenTTLWindow(t *testing.T) {
	m := NewManager("test-secret", 7*24*time.Hour)
	token, err := m.GenerateToken(1, "user@inakat.mx", "user")
	require.NoError(t, err)

	// Well inside the 7-day window.
	claims, err := m.VerifyToken(token)
	require.NoError(t, err)
	assert.WithinDuration(t,
		time.Now().Add(7*24*time.Hour),
		claims.ExpiresAt.Time,
		time.Minute,
	)
}

func TestVerifyTokenSevenDayBoundary(t *testing.T) {
	minted := time.Now().UTC()
	timeNow = func() time.Time { return minted }
	t.Cleanup(func() { timeNow = time.Now })

	m := NewManager("test-secret", 7*24*time.Hour)
	token, err := m.GenerateToken(1, "user@inakat.mx", "user")
	require.NoError(t, err)

	// Six days in, the token still verifies.
	timeNow = func() time.Time { return minted.Add(6 * 24 * time.Hour) }
	claims, err := m.VerifyToken(token)
	require.NoError(t, err)
	assert.Equal(t, uint(1), claims.UserID)

	// Eight days in, it is expired.
	timeNow = func() time.Time { return minted.Add(8 * 24 * time.Hour) }
	_, err = m.VerifyToken(token)
	assert.ErrorIs(t, err, ErrExpiredToken)
}

func TestVerifyTokenWrongSecret(t *testing.T) {
	token, err := NewManager("secret-a", time.Hour).GenerateToken(1, "user@inakat.mx", "user")
	require.NoError(t, err)

	_, err = NewManager("secret-b", time.Hour).VerifyToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyTokenGarbage(t *testing.T) {
	m := NewManager("test-secret", time.Hour)

	_, err := m.VerifyToken("not.a.token")
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = m.VerifyToken("")
	assert.ErrorIs(t, err, ErrInvalidToken)
}
