package auth

import (
	"testing"
	"time"

	"github.com/ainotes/backend/internal/infrastructure/config"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestJWTService(expiration time.Duration) *JWTService {
	return NewJWTService(config.JWTConfig{
		Secret:                "test-secret-key-for-unit-tests-only",
		AccessTokenExpiration: expiration,
		Issuer:                "ainotes-test",
	})
}

func TestJWTService_GenerateAccessToken(t *testing.T) {
	svc := newTestJWTService(time.Hour)
	userID := uuid.New()

	token, err := svc.GenerateAccessToken(GenerateTokenInput{
		UserID: userID,
		Email:  "test@example.com",
		Name:   "Test User",
	})

	require.NoError(t, err)
	assert.NotEmpty(t, token.Token)
	assert.Equal(t, "Bearer", token.TokenType)
	assert.WithinDuration(t, time.Now().Add(time.Hour), token.ExpiresAt, 5*time.Second)
}

func TestJWTService_ValidateAccessToken(t *testing.T) {
	svc := newTestJWTService(time.Hour)
	userID := uuid.New()

	t.Run("validates own token", func(t *testing.T) {
		token, err := svc.GenerateAccessToken(GenerateTokenInput{
			UserID: userID,
			Email:  "test@example.com",
			Name:   "Test User",
		})
		require.NoError(t, err)

		claims, err := svc.ValidateAccessToken(token.Token)

		require.NoError(t, err)
		assert.Equal(t, userID.String(), claims.UserID)
		assert.Equal(t, "test@example.com", claims.Email)
		assert.NotEmpty(t, claims.ID)

		parsed, err := claims.GetUserUUID()
		require.NoError(t, err)
		assert.Equal(t, userID, parsed)
	})

	t.Run("rejects garbage token", func(t *testing.T) {
		_, err := svc.ValidateAccessToken("not.a.token")

		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("rejects token signed with different secret", func(t *testing.T) {
		other := NewJWTService(config.JWTConfig{
			Secret:                "a-completely-different-secret-key",
			AccessTokenExpiration: time.Hour,
			Issuer:                "ainotes-test",
		})
		token, err := other.GenerateAccessToken(GenerateTokenInput{UserID: userID, Email: "x@y.com"})
		require.NoError(t, err)

		_, err = svc.ValidateAccessToken(token.Token)

		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("rejects expired token", func(t *testing.T) {
		expired := newTestJWTService(-time.Minute)
		token, err := expired.GenerateAccessToken(GenerateTokenInput{UserID: userID, Email: "x@y.com"})
		require.NoError(t, err)

		_, err = svc.ValidateAccessToken(token.Token)

		assert.ErrorIs(t, err, ErrExpiredToken)
	})
}

func TestClaims_GetRemainingTTL(t *testing.T) {
	svc := newTestJWTService(time.Hour)
	token, err := svc.GenerateAccessToken(GenerateTokenInput{UserID: uuid.New(), Email: "x@y.com"})
	require.NoError(t, err)

	claims, err := svc.ValidateAccessToken(token.Token)
	require.NoError(t, err)

	ttl := claims.GetRemainingTTL()
	assert.Greater(t, ttl, 55*time.Minute)
	assert.LessOrEqual(t, ttl, time.Hour)
}
