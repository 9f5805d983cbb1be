package jwt

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTMaker_GenerateAndParseToken_ValidCases(t *testing.T) {
	secretKey := "test_secret_key_1234567890"
	tokenTTL := 15 * time.Minute
	maker := NewJWTMaker(secretKey, tokenTTL)

	tests := []struct {
		name    string
		subject string
	}{
		{
			name:    "simple username",
			subject: "testuser",
		},
		{
			name:    "username with numbers",
			subject: "user123",
		},
		{
			name:    "email-like username",
			subject: "user@domain.com",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, err := maker.GenerateToken(tt.subject)
			require.NoError(t, err)
			assert.NotEmpty(t, token)

			subject, err := maker.ParseToken(token)
			require.NoError(t, err)
			assert.Equal(t, tt.subject, subject)
		})
	}
}

func TestJWTMaker_ParseToken_InvalidTokens(t *testing.T) {
	secretKey := "test_secret_key_1234567890"
	maker := NewJWTMaker(secretKey, 15*time.Minute)

	validToken, err := maker.GenerateToken("testuser")
	require.NoError(t, err)

	tests := []struct {
		name  string
		token string
	}{
		{
			name:  "empty token",
			token: "",
		},
		{
			name:  "malformed token",
			token: "invalid.token.here",
		},
		{
			name:  "expired token",
			token: createExpiredToken(t, secretKey),
		},
		{
			name:  "wrong secret key",
			token: createTokenWithWrongSecret(t),
		},
		{
			name:  "tampered token",
			token: validToken + "tampered",
		},
		{
			name:  "empty subject",
			token: createTokenWithEmptySubject(t, secretKey),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			subject, err := maker.ParseToken(tt.token)

			assert.ErrorIs(t, err, ErrInvalidToken)
			assert.Empty(t, subject)
		})
	}
}

func TestJWTMaker_TokenExpiration(t *testing.T) {
	secretKey := "test_secret_key_1234567890"

	// Токен с коротким TTL валиден сразу после выпуска
	// и невалиден после истечения срока.
	maker := NewJWTMaker(secretKey, time.Second)
	token, err := maker.GenerateToken("testuser")
	require.NoError(t, err)

	subject, err := maker.ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, "testuser", subject)

	time.Sleep(2 * time.Second)

	_, err = maker.ParseToken(token)
	assert.True(t, errors.Is(err, ErrInvalidToken))
}

func TestJWTMaker_DifferentSecretKeys(t *testing.T) {
	maker1 := NewJWTMaker("first_secret_key", 15*time.Minute)
	maker2 := NewJWTMaker("different_secret_key", 15*time.Minute)

	token, err := maker1.GenerateToken("testuser")
	require.NoError(t, err)

	_, err = maker2.ParseToken(token)
	assert.Error(t, err)

	subject, err := maker1.ParseToken(token)
	assert.NoError(t, err)
	assert.Equal(t, "testuser", subject)
}

func TestNewJWTMaker_DefaultTTL(t *testing.T) {
	maker := NewJWTMaker("secret", 0)
	assert.Equal(t, DefaultTokenTTL, maker.tokenTTL)

	maker = NewJWTMaker("secret", -time.Minute)
	assert.Equal(t, DefaultTokenTTL, maker.tokenTTL)
}

func createExpiredToken(t *testing.T, secretKey string) string {
	maker := &MakerImpl{secretKey: secretKey, tokenTTL: -time.Hour}
	token, err := maker.GenerateToken("testuser")
	require.NoError(t, err)
	return token
}

func createTokenWithWrongSecret(t *testing.T) string {
	wrongMaker := NewJWTMaker("wrong_secret_key", 15*time.Minute)
	token, err := wrongMaker.GenerateToken("testuser")
	require.NoError(t, err)
	return token
}

func createTokenWithEmptySubject(t *testing.T, secretKey string) string {
	maker := NewJWTMaker(secretKey, 15*time.Minute)
	token, err := maker.GenerateToken("")
	require.NoError(t, err)
	return token
}
