package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTRoundTrip(t *testing.T) {
	Init("test-secret", "1h")

	token, err := GenerateJWT("uid-123", "vendor", "ST-1", "Glow Salon")
	require.NoError(t, err)

	claims, err := ParseJWT(token)
	require.NoError(t, err)
	assert.Equal(t, "uid-123", claims.UID)
	assert.Equal(t, "vendor", claims.Role)
	assert.Equal(t, "ST-1", claims.BusinessID)
	assert.Equal(t, "Glow Salon", claims.BusinessName)
}

func TestParseJWTRejectsWrongSecret(t *testing.T) {
	Init("secret-one", "1h")
	token, err := GenerateJWT("uid-123", "customer", "", "")
	require.NoError(t, err)

	Init("secret-two", "1h")
	_, err = ParseJWT(token)
	assert.Error(t, err)
}

func TestParseJWTRejectsExpired(t *testing.T) {
	Init("test-secret", "1ns")
	token, err := GenerateJWT("uid-123", "customer", "", "")
	require.NoError(t, err)

	time.Sleep(10 * time.Millisecond)
	_, err = ParseJWT(token)
	assert.Error(t, err)
}

func TestInitKeepsDefaultOnBadExpiration(t *testing.T) {
	Init("test-secret", "not-a-duration")
	token, err := GenerateJWT("uid-123", "customer", "", "")
	require.NoError(t, err)

	claims, err := ParseJWT(token)
	require.NoError(t, err)
	assert.True(t, claims.ExpiresAt.After(time.Now()))
}

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("secret")
	require.NoError(t, err)
	assert.NotEqual(t, "secret", hash)

	assert.True(t, CheckPasswordHash("secret", hash))
	assert.False(t, CheckPasswordHash("wrong", hash))
}
