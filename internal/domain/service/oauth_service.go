package service

import (
	"context"
)

// OAuthUser represents user information returned by an external identity
// provider after ID token verification.
type OAuthUser struct {
	ID            string // Provider-specific user ID (e.g., Google's 'sub' claim)
	Email         string // User's email address
	Name          string // User's display name
	AvatarURL     string // URL to user's profile picture
	EmailVerified bool   // Whether the email is verified by the provider
}

// OAuthVerifier defines the interface for verifying ID tokens issued by an
// external auth provider. Sign-in with Google sends the ID token directly.
type OAuthVerifier interface {
	// VerifyIDToken verifies an OAuth ID token and returns user information.
	VerifyIDToken(ctx context.Context, idToken string) (*OAuthUser, error)
}
