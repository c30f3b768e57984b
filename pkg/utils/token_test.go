package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAuthToken_RoundTrip(t *testing.T) {
	token, err := GenerateAuthToken("user-123", "admin", "alice@example.com", "alice", "test-secret", 30*24*time.Hour)
	require.NoError(t, err)

	claims, err := VerifyAuthToken(token, "test-secret")
	require.NoError(t, err)

	assert.Equal(t, "user-123", claims.UserID)
	assert.Equal(t, "admin", claims.Usertype)
	assert.Equal(t, "alice@example.com", claims.Email)
	assert.Equal(t, "alice", claims.Username)
}

func TestVerifyAuthToken_WrongSecret(t *testing.T) {
	token, err := GenerateAuthToken("user-123", "user", "a@b.com", "a", "right-secret", time.Hour)
	require.NoError(t, err)

	_, err = VerifyAuthToken(token, "wrong-secret")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyAuthToken_Malformed(t *testing.T) {
	_, err := VerifyAuthToken("not.a.jwt", "secret")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyResetToken_Expired(t *testing.T) {
	token, err := GenerateResetToken("alice@example.com", "test-secret", -time.Second)
	require.NoError(t, err)

	_, err = VerifyResetToken(token, "test-secret")
	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestVerifyResetToken_WithinWindow(t *testing.T) {
	token, err := GenerateResetToken("alice@example.com", "test-secret", 5*time.Minute)
	require.NoError(t, err)

	claims, err := VerifyResetToken(token, "test-secret")
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", claims.Email)
}
