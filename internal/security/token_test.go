package security

import (
	"testing"

	"arena-backend/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret-0123456789abcdef0123456789abcdef"

func TestTokenManager_RoundTrip(t *testing.T) {
	m := NewTokenManager(testSecret, 60)

	token, err := m.GenerateSessionToken(7, "alice", domain.UserRolePlayer)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := m.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, int32(7), claims.UserID)
	assert.Equal(t, "alice", claims.Username)
	assert.Equal(t, domain.UserRolePlayer, claims.Role)
}

func TestTokenManager_InvalidToken(t *testing.T) {
	m := NewTokenManager(testSecret, 60)

	_, err := m.ValidateToken("not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenManager_WrongSecret(t *testing.T) {
	m := NewTokenManager(testSecret, 60)
	other := NewTokenManager("another-secret-0123456789abcdef012345678", 60)

	token, err := m.GenerateSessionToken(7, "alice", domain.UserRoleAdmin)
	require.NoError(t, err)

	_, err = other.ValidateToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenManager_ExpiredToken(t *testing.T) {
	m := NewTokenManager(testSecret, -1)

	token, err := m.GenerateSessionToken(7, "alice", domain.UserRolePlayer)
	require.NoError(t, err)

	_, err = m.ValidateToken(token)
	assert.ErrorIs(t, err, ErrExpiredToken)
}
