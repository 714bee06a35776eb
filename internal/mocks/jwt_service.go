package mocks

import (
	"context"

	"github.com/clinicacaracas/citas-api/internal/service/auth"
)

// MockJWTService stands in for the client token issuer and verifier.
type MockJWTService struct {
	GenerateTokenFn func(ctx context.Context, claims auth.Claims) (string, error)
	ValidateTokenFn func(ctx context.Context, tokenString string) (*auth.Claims, error)

	// Token and Err are returned by GenerateToken, Claims and ValidateErr by
	// ValidateToken, when the matching Fn is nil.
	Token       string
	Err         error
	ValidateErr error
	Claims      *auth.Claims
}

var _ auth.JWTService = (*MockJWTService)(nil)

func (m *MockJWTService) GenerateToken(ctx context.Context, claims auth.Claims) (string, error) {
	if m.GenerateTokenFn != nil {
		return m.GenerateTokenFn(ctx, claims)
	}
	return m.Token, m.Err
}

func (m *MockJWTService) ValidateToken(
	ctx context.Context,
	tokenString string,
) (*auth.Claims, error) {
	if m.ValidateTokenFn != nil {
		return m.ValidateTokenFn(ctx, tokenString)
	}
	return m.Claims, m.ValidateErr
}
