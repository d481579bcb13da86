// Package google verifies Sign-in-with-Google ID tokens. Authentication is
// delegated to Google; this service only checks the token and extracts the
// profile the marketplace needs.
package google

import (
	"context"
	"log/slog"

	"bazaar/config"
	"bazaar/internal/domain/service"

	"github.com/pkg/errors"
	"google.golang.org/api/idtoken"
)

// Verifier implements service.OAuthVerifier against Google's token endpoint.
type Verifier struct {
	clientID string
	logger   *slog.Logger

	// validate is swappable for tests.
	validate func(ctx context.Context, token, audience string) (*idtoken.Payload, error)
}

// NewVerifier creates a Google ID token verifier.
func NewVerifier(cfg *config.Config, logger *slog.Logger) (service.OAuthVerifier, error) {
	if cfg.GoogleOAuth == nil || cfg.GoogleOAuth.ClientID == "" {
		return nil, errors.New("google oauth client id must be configured")
	}

	return &Verifier{
		clientID: cfg.GoogleOAuth.ClientID,
		logger:   logger,
		validate: idtoken.Validate,
	}, nil
}

// VerifyIDToken verifies a Google ID token and returns the user information.
func (v *Verifier) VerifyIDToken(ctx context.Context, token string) (*service.OAuthUser, error) {
	payload, err := v.validate(ctx, token, v.clientID)
	if err != nil {
		v.logger.Warn("Google ID token rejected", slog.Any("error", err))

		return nil, errors.Wrap(err, "invalid ID token")
	}

	user := oauthUserFromPayload(payload)
	if user.Email == "" {
		return nil, errors.New("ID token carries no email claim")
	}

	return user, nil
}

// oauthUserFromPayload maps verified token claims to the domain shape.
func oauthUserFromPayload(payload *idtoken.Payload) *service.OAuthUser {
	user := &service.OAuthUser{ID: payload.Subject}

	if email, ok := payload.Claims["email"].(string); ok {
		user.Email = email
	}
	if name, ok := payload.Claims["name"].(string); ok {
		user.Name = name
	}
	if picture, ok := payload.Claims["picture"].(string); ok {
		user.AvatarURL = picture
	}
	if verified, ok := payload.Claims["email_verified"].(bool); ok {
		user.EmailVerified = verified
	}

	return user
}
