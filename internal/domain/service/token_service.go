package service

import (
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims defines the custom claims carried by marketplace access tokens.
type Claims struct {
	UserID uuid.UUID
	Roles  []string
	jwt.RegisteredClaims
}

// TokenService defines the interface for issuing and validating bearer
// tokens. This abstracts token mechanics away from the use cases.
type TokenService interface {
	// GenerateToken creates a signed access token for a given user.
	GenerateToken(userID uuid.UUID, roles []string) (string, error)

	// ValidateToken checks a bearer token string and returns its claims.
	ValidateToken(tokenString string) (*Claims, error)
}
