package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateYValidateSessionToken(t *testing.T) {
	svc := NewJWTService("secreto-de-prueba", time.Hour)

	token, err := svc.GenerateSessionToken("admin@demo.com")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "admin@demo.com", claims.Usuario)
	assert.NotEmpty(t, claims.ID)
}

func TestValidateTokenConOtroSecreto(t *testing.T) {
	emisor := NewJWTService("secreto-a", time.Hour)
	receptor := NewJWTService("secreto-b", time.Hour)

	token, err := emisor.GenerateSessionToken("usuario")
	require.NoError(t, err)

	_, err = receptor.ValidateToken(token)
	assert.Error(t, err)
}

func TestValidateTokenVencido(t *testing.T) {
	svc := NewJWTService("secreto", -time.Minute)

	token, err := svc.GenerateSessionToken("usuario")
	require.NoError(t, err)

	_, err = svc.ValidateToken(token)
	assert.Error(t, err)
}

func TestGetSessionTTL(t *testing.T) {
	svc := NewJWTService("secreto", 24*time.Hour)
	assert.Equal(t, 24*time.Hour, svc.GetSessionTTL())
}
