package jwt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndValidateSessionToken(t *testing.T) {
	m := NewManager("secret", 12*time.Hour)

	token, expiresAt, err := m.GenerateSessionToken("admin")
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(12*time.Hour), expiresAt, time.Minute)

	claims, err := m.ValidateSessionToken(token)
	require.NoError(t, err)
	assert.Equal(t, "admin", claims.Username)
	assert.Equal(t, "admin", claims.Role)
}

func TestValidateSessionToken_RejectsWrongSecret(t *testing.T) {
	token, _, err := NewManager("secret-a", time.Hour).GenerateSessionToken("admin")
	require.NoError(t, err)

	_, err = NewManager("secret-b", time.Hour).ValidateSessionToken(token)
	assert.Error(t, err)
}

func TestValidateSessionToken_RejectsExpired(t *testing.T) {
	token, _, err := NewManager("secret", -time.Minute).GenerateSessionToken("admin")
	require.NoError(t, err)

	_, err = NewManager("secret", -time.Minute).ValidateSessionToken(token)
	assert.Error(t, err)
}

func TestValidateSessionToken_RejectsGarbage(t *testing.T) {
	_, err := NewManager("secret", time.Hour).ValidateSessionToken("not-a-token")
	assert.Error(t, err)
}
