package security

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pvmarket-backend/internal/domain"
)

const testSecret = "test-secret-key-with-at-least-32-chars"

func TestGenerateAndValidateToken(t *testing.T) {
	m := NewTokenManager(testSecret, 7*24*time.Hour)

	token, err := m.GenerateToken("user-123", "kari@example.no", "Kari Nordmann", domain.AuthTypeLocal)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := m.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-123", claims.UserID)
	assert.Equal(t, "kari@example.no", claims.Email)
	assert.Equal(t, "Kari Nordmann", claims.Name)
	assert.Equal(t, domain.AuthTypeLocal, claims.AuthType)
	assert.WithinDuration(t, time.Now().Add(7*24*time.Hour), claims.ExpiresAt.Time, time.Minute)
}

func TestValidateToken_Expired(t *testing.T) {
	m := NewTokenManager(testSecret, -time.Hour)

	token, err := m.GenerateToken("user-123", "kari@example.no", "Kari", domain.AuthTypeLocal)
	require.NoError(t, err)

	_, err = m.ValidateToken(token)
	assert.ErrorIs(t, err, ErrExpiredToken)
}

func TestValidateToken_WrongSecret(t *testing.T) {
	m := NewTokenManager(testSecret, time.Hour)
	other := NewTokenManager("another-secret-key-also-32-chars-long", time.Hour)

	token, err := other.GenerateToken("user-123", "kari@example.no", "Kari", domain.AuthTypeGoogle)
	require.NoError(t, err)

	_, err = m.ValidateToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidateToken_RejectsNonHMAC(t *testing.T) {
	m := NewTokenManager(testSecret, time.Hour)

	// alg=none tokens must never validate.
	unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, UserClaims{UserID: "user-123"})
	token, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = m.ValidateToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidateToken_Garbage(t *testing.T) {
	m := NewTokenManager(testSecret, time.Hour)

	_, err := m.ValidateToken("not.a.token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}
