package auth

import (
	"testing"
	"time"

	"bazaar/config"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestTokenService(t *testing.T, ttl time.Duration) *jwtService {
	t.Helper()

	cfg := &config.Config{}
	cfg.SecretKey.Access = "test-secret"
	cfg.Auth = &config.AuthConfig{AccessTokenTTL: ttl}

	svc, err := NewJWTService(cfg)
	require.NoError(t, err)

	return svc.(*jwtService)
}

func TestNewJWTService_RequiresSecret(t *testing.T) {
	_, err := NewJWTService(&config.Config{})
	assert.Error(t, err)
}

func TestJWTService_GenerateAndValidate(t *testing.T) {
	svc := newTestTokenService(t, time.Minute)
	userID := uuid.New()

	token, err := svc.GenerateToken(userID, []string{"customer", "merchant"})
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, []string{"customer", "merchant"}, claims.Roles)
}

func TestJWTService_RejectsExpiredToken(t *testing.T) {
	// The constructor falls back to the default TTL for non-positive values,
	// so force an already-expired token directly.
	svc := newTestTokenService(t, time.Minute)
	svc.accessTTL = -time.Minute

	token, err := svc.GenerateToken(uuid.New(), []string{"customer"})
	require.NoError(t, err)

	_, err = svc.ValidateToken(token)
	assert.Error(t, err)
}

func TestJWTService_RejectsTamperedToken(t *testing.T) {
	svc := newTestTokenService(t, time.Minute)

	token, err := svc.GenerateToken(uuid.New(), nil)
	require.NoError(t, err)

	other := newTestTokenService(t, time.Minute)
	other.secret = "different-secret"

	_, err = other.ValidateToken(token)
	assert.Error(t, err)

	_, err = svc.ValidateToken("not.a.token")
	assert.Error(t, err)
}
