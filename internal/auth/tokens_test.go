package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"praxis/internal/shared/config"
)

func testJWTConfig() config.JWTConfig {
	return config.JWTConfig{
		AccessSecret:     "test-access-secret",
		RefreshSecret:    "test-refresh-secret",
		AccessExpiresIn:  15 * time.Minute,
		RefreshExpiresIn: 7 * 24 * time.Hour,
	}
}

func TestTokenManagerAccessRoundTrip(t *testing.T) {
	tm := NewTokenManager(testJWTConfig())

	token, err := tm.IssueAccessToken("user-123", "Client")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := tm.VerifyAccessToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-123", claims.UserID)
	assert.Equal(t, "Client", claims.Role)
	assert.Equal(t, "praxis", claims.Issuer)
}

func TestTokenManagerRefreshRoundTrip(t *testing.T) {
	tm := NewTokenManager(testJWTConfig())

	token, err := tm.IssueRefreshToken("user-123", "Therapist")
	require.NoError(t, err)

	claims, err := tm.VerifyRefreshToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-123", claims.UserID)
	assert.Equal(t, "Therapist", claims.Role)
}

func TestTokenManagerRejectsWrongTokenClass(t *testing.T) {
	tm := NewTokenManager(testJWTConfig())

	refresh, err := tm.IssueRefreshToken("user-123", "Client")
	require.NoError(t, err)
	access, err := tm.IssueAccessToken("user-123", "Client")
	require.NoError(t, err)

	_, err = tm.VerifyAccessToken(refresh)
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = tm.VerifyRefreshToken(access)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenManagerRejectsForeignSignature(t *testing.T) {
	tm := NewTokenManager(testJWTConfig())

	other := NewTokenManager(config.JWTConfig{
		AccessSecret:     "different-access-secret",
		RefreshSecret:    "different-refresh-secret",
		AccessExpiresIn:  15 * time.Minute,
		RefreshExpiresIn: 7 * 24 * time.Hour,
	})

	foreign, err := other.IssueAccessToken("user-123", "Admin")
	require.NoError(t, err)

	_, err = tm.VerifyAccessToken(foreign)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenManagerRejectsExpiredToken(t *testing.T) {
	tm := NewTokenManager(testJWTConfig())
	tm.now = func() time.Time { return time.Now().Add(-time.Hour) }

	expired, err := tm.IssueAccessToken("user-123", "Client")
	require.NoError(t, err)

	_, err = tm.VerifyAccessToken(expired)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenManagerRejectsGarbage(t *testing.T) {
	tm := NewTokenManager(testJWTConfig())

	_, err := tm.VerifyAccessToken("not.a.token")
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = tm.VerifyRefreshToken("")
	assert.ErrorIs(t, err, ErrInvalidToken)
}
