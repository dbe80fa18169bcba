package auth

import (
	"context"
	"time"
)

// AccessTokenType is the "type" claim carried by access tokens.
const AccessTokenType = "access"

// JWTService issues and verifies signed access tokens.
type JWTService interface {
	// GenerateToken creates a signed access token for subject (the user's
	// email) that expires after the configured lifetime.
	GenerateToken(ctx context.Context, subject string) (string, error)

	// ValidateToken checks signature, algorithm, expiry, and token type, and
	// returns the claims of a valid token.
	ValidateToken(ctx context.Context, tokenString string) (*Claims, error)
}

// Claims is the verified content of an access token.
type Claims struct {
	Subject   string    `json:"sub,omitempty"`
	TokenType string    `json:"type,omitempty"`
	IssuedAt  time.Time `json:"iat,omitempty"`
	ExpiresAt time.Time `json:"exp,omitempty"`
	ID        string    `json:"jti,omitempty"`
}
