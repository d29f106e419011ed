package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndValidateJWT(t *testing.T) {
	secret := "test-secret-key-that-is-long-enough"

	token, err := GenerateJWT("user-123", secret, time.Hour, "inkwell-test")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ParseAndValidateJWT(token, secret)
	require.NoError(t, err)
	assert.Equal(t, "user-123", claims.Subject)
	assert.Equal(t, "inkwell-test", claims.Issuer)

	_, err = ParseAndValidateJWT(token, "a-different-secret")
	assert.Error(t, err, "a wrong secret must not validate")
}

func TestExpiredJWTRejected(t *testing.T) {
	secret := "test-secret-key-that-is-long-enough"

	token, err := GenerateJWT("user-123", secret, -time.Minute, "inkwell-test")
	require.NoError(t, err)

	_, err = ParseAndValidateJWT(token, secret)
	assert.Error(t, err)
}

func TestOpaqueTokenHashing(t *testing.T) {
	raw, err := GenerateSecureRandomString(32)
	require.NoError(t, err)
	require.NotEmpty(t, raw)

	hash := HashOpaqueToken(raw)
	assert.NotEqual(t, raw, hash)
	assert.True(t, CompareOpaqueTokenHash(raw, hash))
	assert.False(t, CompareOpaqueTokenHash("something-else", hash))

	other, err := GenerateSecureRandomString(32)
	require.NoError(t, err)
	assert.NotEqual(t, raw, other, "random tokens must not repeat")
}
