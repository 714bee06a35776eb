package mocks

import (
	"context"

	"github.com/clinicacaracas/citas-api/internal/service/auth"
)

// MockCredentialVerifier implements auth.CredentialVerifier for testing
type MockCredentialVerifier struct {
	VerifyFn func(ctx context.Context, clientID, clientSecret string) error

	// Err is returned when VerifyFn is nil
	Err error
}

var _ auth.CredentialVerifier = (*MockCredentialVerifier)(nil)

// Verify implements the auth.CredentialVerifier interface
func (m *MockCredentialVerifier) Verify(ctx context.Context, clientID, clientSecret string) error {
	if m.VerifyFn != nil {
		return m.VerifyFn(ctx, clientID, clientSecret)
	}
	return m.Err
}
