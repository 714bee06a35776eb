package auth

import (
	"context"
	"time"
)

// RoleClient is the role carried by every token issued to an API client.
const RoleClient = "client"

// JWTService defines operations for managing JWT access tokens.
type JWTService interface {
	// GenerateToken signs a token for the given claims. ClientID is required.
	// Role defaults to RoleClient and Timestamp to the issuance time.
	// IssuedAt, ExpiresAt and ID are always set by the service.
	GenerateToken(ctx context.Context, claims Claims) (string, error)

	// ValidateToken verifies the signature and expiry of tokenString and
	// returns its claims. Expired tokens yield ErrExpiredToken; every other
	// failure yields ErrInvalidToken.
	ValidateToken(ctx context.Context, tokenString string) (*Claims, error)
}

// Claims is the payload of an access token.
type Claims struct {
	// ClientID identifies the API client the token was issued to.
	ClientID string `json:"clientId"`

	// Role is always RoleClient for issued tokens.
	Role string `json:"role"`

	// Timestamp is when the client requested the token.
	Timestamp time.Time `json:"timestamp"`

	// Standard registered JWT claims
	IssuedAt  time.Time `json:"iat,omitempty"`
	ExpiresAt time.Time `json:"exp,omitempty"`
	ID        string    `json:"jti,omitempty"`
}
