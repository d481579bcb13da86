package google

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"bazaar/config"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/idtoken"
)

func newTestVerifier(t *testing.T, validate func(ctx context.Context, token, audience string) (*idtoken.Payload, error)) *Verifier {
	t.Helper()

	cfg := &config.Config{GoogleOAuth: &config.GoogleOAuthConfig{ClientID: "client-id"}}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	svc, err := NewVerifier(cfg, logger)
	require.NoError(t, err)

	verifier := svc.(*Verifier)
	verifier.validate = validate

	return verifier
}

func TestNewVerifier_RequiresClientID(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	_, err := NewVerifier(&config.Config{}, logger)
	assert.Error(t, err)
}

func TestVerifyIDToken_MapsClaims(t *testing.T) {
	verifier := newTestVerifier(t, func(_ context.Context, token, audience string) (*idtoken.Payload, error) {
		assert.Equal(t, "raw-token", token)
		assert.Equal(t, "client-id", audience)

		return &idtoken.Payload{
			Subject: "google-sub",
			Claims: map[string]any{
				"email":          "rajesh@example.com",
				"email_verified": true,
				"name":           "Rajesh Kumar",
				"picture":        "https://example.com/p.png",
			},
		}, nil
	})

	user, err := verifier.VerifyIDToken(context.Background(), "raw-token")
	require.NoError(t, err)
	assert.Equal(t, "google-sub", user.ID)
	assert.Equal(t, "rajesh@example.com", user.Email)
	assert.Equal(t, "Rajesh Kumar", user.Name)
	assert.True(t, user.EmailVerified)
}

func TestVerifyIDToken_RejectsInvalidToken(t *testing.T) {
	verifier := newTestVerifier(t, func(context.Context, string, string) (*idtoken.Payload, error) {
		return nil, errors.New("expired")
	})

	_, err := verifier.VerifyIDToken(context.Background(), "bad")
	assert.Error(t, err)
}

func TestVerifyIDToken_RequiresEmailClaim(t *testing.T) {
	verifier := newTestVerifier(t, func(context.Context, string, string) (*idtoken.Payload, error) {
		return &idtoken.Payload{Subject: "sub", Claims: map[string]any{}}, nil
	})

	_, err := verifier.VerifyIDToken(context.Background(), "raw")
	assert.Error(t, err)
}
