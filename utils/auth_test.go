package utils

import (
	"testing"

	"github.com/dgrijalva/jwt-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateJWT_RoundTrip(t *testing.T) {
	JwtKey = []byte("test-secret")

	tokenStr, err := GenerateJWT("admin@example.com", "admin")
	require.NoError(t, err)

	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(*jwt.Token) (interface{}, error) {
		return JwtKey, nil
	})
	require.NoError(t, err)

	assert.True(t, token.Valid)
	assert.Equal(t, "admin@example.com", claims.Email)
	assert.Equal(t, "admin", claims.Role)
	assert.Greater(t, claims.ExpiresAt, jwt.TimeFunc().Unix())
}
