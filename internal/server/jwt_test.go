package server

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JavierGuerrero99/talento-hub/internal/config"
)

func testJWTService(hours int) *JWTService {
	return NewJWTService(&config.JWTConfig{Secret: "secreto-de-prueba", ExpirationHours: hours})
}

func TestGenerateAndValidateToken(t *testing.T) {
	svc := testJWTService(1)
	sessionID := uuid.New()

	token, err := svc.GenerateToken(sessionID)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, sessionID, claims.GetSessionID())
	assert.True(t, claims.ExpiresAt.After(time.Now()))
}

func TestValidateToken_Empty(t *testing.T) {
	svc := testJWTService(1)
	_, err := svc.ValidateToken("")
	assert.Error(t, err)
}

func TestValidateToken_Malformed(t *testing.T) {
	svc := testJWTService(1)
	_, err := svc.ValidateToken("no.es.un.jwt")
	assert.Error(t, err)
}

func TestValidateToken_WrongSecret(t *testing.T) {
	token, err := testJWTService(1).GenerateToken(uuid.New())
	require.NoError(t, err)

	other := NewJWTService(&config.JWTConfig{Secret: "otro-secreto", ExpirationHours: 1})
	_, err = other.ValidateToken(token)
	assert.Error(t, err)
}
