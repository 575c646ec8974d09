package jwt

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccessTokenRoundTrip(t *testing.T) {
	m := NewManager("secret", 15*time.Minute, 72*time.Hour)
	userID := uuid.NewString()

	token, err := m.GenerateAccessToken(userID)
	require.NoError(t, err)

	claims, err := m.ValidateAccessToken(token)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, TokenTypeAccess, claims.Type)
}

func TestRefreshTokenRoundTrip(t *testing.T) {
	m := NewManager("secret", 15*time.Minute, 72*time.Hour)
	userID := uuid.NewString()

	token, err := m.GenerateRefreshToken(userID)
	require.NoError(t, err)

	claims, err := m.ValidateRefreshToken(token)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, TokenTypeRefresh, claims.Type)
}

func TestTokenTypeEnforced(t *testing.T) {
	m := NewManager("secret", 15*time.Minute, 72*time.Hour)

	access, err := m.GenerateAccessToken(uuid.NewString())
	require.NoError(t, err)
	refresh, err := m.GenerateRefreshToken(uuid.NewString())
	require.NoError(t, err)

	_, err = m.ValidateRefreshToken(access)
	assert.Error(t, err)

	_, err = m.ValidateAccessToken(refresh)
	assert.Error(t, err)
}

func TestExpiredTokenRejected(t *testing.T) {
	m := NewManager("secret", -time.Minute, 72*time.Hour)

	token, err := m.GenerateAccessToken(uuid.NewString())
	require.NoError(t, err)

	_, err = m.ValidateAccessToken(token)
	assert.Error(t, err)
}

func TestWrongSecretRejected(t *testing.T) {
	issuer := NewManager("secret-a", 15*time.Minute, 72*time.Hour)
	verifier := NewManager("secret-b", 15*time.Minute, 72*time.Hour)

	token, err := issuer.GenerateAccessToken(uuid.NewString())
	require.NoError(t, err)

	_, err = verifier.ValidateAccessToken(token)
	assert.Error(t, err)
}
