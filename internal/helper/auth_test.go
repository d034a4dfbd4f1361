package helper

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestGenerateAndVerifyToken(t *testing.T) {
	auth := SetupAuth("test-secret")

	token, err := auth.GenerateToken("alice")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	username, err := auth.VerifyToken(token)
	require.NoError(t, err)
	assert.Equal(t, "alice", username)
}

func TestVerifyTokenBearerPrefix(t *testing.T) {
	auth := SetupAuth("test-secret")

	token, err := auth.GenerateToken("alice")
	require.NoError(t, err)

	username, err := auth.VerifyToken("Bearer " + token)
	require.NoError(t, err)
	assert.Equal(t, "alice", username)
}

func TestVerifyTokenFailures(t *testing.T) {
	auth := SetupAuth("test-secret")

	expired := Auth{Secret: "test-secret", AccessTTL: -time.Minute}
	expiredToken, err := expired.GenerateToken("alice")
	require.NoError(t, err)

	other := SetupAuth("other-secret")
	foreignToken, err := other.GenerateToken("alice")
	require.NoError(t, err)

	tcases := []struct {
		name  string
		token string
	}{
		{name: "empty token", token: ""},
		{name: "malformed token", token: "not-a-jwt"},
		{name: "bearer without token", token: "Bearer "},
		{name: "expired token", token: expiredToken},
		{name: "wrong signing key", token: foreignToken},
	}

	for _, tc := range tcases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := auth.VerifyToken(tc.token)
			assert.Error(t, err)
		})
	}
}

func TestGenerateTokenRequiresUsername(t *testing.T) {
	auth := SetupAuth("test-secret")

	_, err := auth.GenerateToken("")
	assert.Error(t, err)
}

func TestHashAndVerifyPassword(t *testing.T) {
	auth := SetupAuth("test-secret")

	hashed, err := auth.HashPassword("s3cret")
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret", hashed)
	require.NoError(t, bcrypt.CompareHashAndPassword([]byte(hashed), []byte("s3cret")))

	assert.NoError(t, auth.VerifyPassword("s3cret", hashed))
	assert.Error(t, auth.VerifyPassword("wrong", hashed))
}

func TestGenerateRefreshTokenUnique(t *testing.T) {
	auth := SetupAuth("test-secret")

	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		token := auth.GenerateRefreshToken()
		require.NotEmpty(t, token)
		assert.False(t, seen[token], "refresh token repeated")
		seen[token] = true
	}
}
