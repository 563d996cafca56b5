package auth

import (
	"testing"
	"time"

	"github.com/mosslight/storefront/internal/domain/identity"
	"github.com/mosslight/storefront/internal/infrastructure/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(expiration time.Duration) *JWTService {
	return NewJWTService(config.JWTConfig{
		Secret:                "test-secret-key-for-unit-tests-only!",
		AccessTokenExpiration: expiration,
		Issuer:                "mosslight-test",
	})
}

func newTestUser(t *testing.T) *identity.User {
	t.Helper()
	user, err := identity.NewUser("ada@example.com", "glaze1234")
	require.NoError(t, err)
	return user
}

func TestJWTServiceIssueAndValidate(t *testing.T) {
	service := newTestService(time.Hour)
	user := newTestUser(t)

	token, expiresAt, err := service.Issue(user)
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.WithinDuration(t, time.Now().Add(time.Hour), expiresAt, 5*time.Second)

	claims, err := service.Validate(token)
	require.NoError(t, err)
	assert.Equal(t, user.ID.String(), claims.UserID)
	assert.Equal(t, "ada@example.com", claims.Email)
	assert.Equal(t, "customer", claims.Role)
	assert.Equal(t, "mosslight-test", claims.Issuer)
}

func TestJWTServiceValidateErrors(t *testing.T) {
	service := newTestService(time.Hour)

	t.Run("rejects garbage", func(t *testing.T) {
		_, err := service.Validate("not-a-token")
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("rejects a token signed with a different secret", func(t *testing.T) {
		other := NewJWTService(config.JWTConfig{
			Secret:                "a-completely-different-secret-value!",
			AccessTokenExpiration: time.Hour,
			Issuer:                "mosslight-test",
		})
		token, _, err := other.Issue(newTestUser(t))
		require.NoError(t, err)

		_, err = service.Validate(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("rejects an expired token", func(t *testing.T) {
		short := newTestService(-time.Minute)
		token, _, err := short.Issue(newTestUser(t))
		require.NoError(t, err)

		_, err = newTestService(time.Hour).Validate(token)
		assert.ErrorIs(t, err, ErrExpiredToken)
	})
}

func TestClaimsCaller(t *testing.T) {
	service := newTestService(time.Hour)
	user := newTestUser(t)
	require.NoError(t, user.AssignRole(identity.RoleAdmin))

	token, _, err := service.Issue(user)
	require.NoError(t, err)

	claims, err := service.Validate(token)
	require.NoError(t, err)

	caller, err := claims.Caller()
	require.NoError(t, err)
	assert.Equal(t, user.ID, caller.UserID)
	assert.Equal(t, user.Email, caller.Email)
	assert.True(t, caller.IsAdmin())
}
