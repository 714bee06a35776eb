package auth

import (
	"context"
	"crypto/subtle"
	"fmt"
	"strings"

	"github.com/clinicacaracas/citas-api/internal/config"
	"github.com/clinicacaracas/citas-api/internal/platform/logger"
	"golang.org/x/crypto/bcrypt"
)

// PasswordVerifier defines the interface for comparing secrets.
type PasswordVerifier interface {
	// Compare compares a hashed secret with its possible plaintext equivalent.
	// Returns nil on success, or an error on failure (e.g., mismatch).
	Compare(hashedPassword, password string) error
}

// BcryptVerifier implements PasswordVerifier using bcrypt.
type BcryptVerifier struct{}

// NewBcryptVerifier creates a new BcryptVerifier.
func NewBcryptVerifier() *BcryptVerifier {
	return &BcryptVerifier{}
}

// Compare implements the PasswordVerifier interface using bcrypt.
func (v *BcryptVerifier) Compare(hashedPassword, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password))
}

// CredentialVerifier checks a client id and secret before a token is issued.
type CredentialVerifier interface {
	Verify(ctx context.Context, clientID, clientSecret string) error
}

// AllowListVerifier checks credentials against a fixed allow-list. When not
// enforcing, any non-empty pair is accepted.
type AllowListVerifier struct {
	enforce     bool
	credentials []config.ClientCredential
	hasher      PasswordVerifier
}

var _ CredentialVerifier = (*AllowListVerifier)(nil)

// NewAllowListVerifier builds a verifier over creds. Secrets starting with
// "$2" are treated as bcrypt hashes.
func NewAllowListVerifier(
	creds []config.ClientCredential,
	enforce bool,
	hasher PasswordVerifier,
) *AllowListVerifier {
	if hasher == nil {
		hasher = NewBcryptVerifier()
	}
	return &AllowListVerifier{
		enforce:     enforce,
		credentials: append([]config.ClientCredential(nil), creds...),
		hasher:      hasher,
	}
}

// NewCredentialVerifier builds the verifier for cfg. The allow-list is only
// enforced in production.
func NewCredentialVerifier(cfg *config.Config) (*AllowListVerifier, error) {
	creds, err := cfg.Auth.ClientCredentials()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidCredentialConfig, err)
	}
	return NewAllowListVerifier(creds, cfg.IsProduction(), NewBcryptVerifier()), nil
}

// Verify returns ErrMissingCredentials for an empty id or secret and, when
// enforcing, ErrInvalidCredentials for a pair not on the allow-list.
func (v *AllowListVerifier) Verify(ctx context.Context, clientID, clientSecret string) error {
	if clientID == "" || clientSecret == "" {
		return ErrMissingCredentials
	}
	if !v.enforce {
		return nil
	}

	matched := false
	for _, cred := range v.credentials {
		if subtle.ConstantTimeCompare([]byte(cred.ClientID), []byte(clientID)) != 1 {
			continue
		}
		if v.secretMatches(cred.ClientSecret, clientSecret) {
			matched = true
		}
	}

	if !matched {
		logger.FromContext(ctx).Warn("client credential check failed", "client_id", clientID)
		return ErrInvalidCredentials
	}
	return nil
}

func (v *AllowListVerifier) secretMatches(stored, given string) bool {
	if strings.HasPrefix(stored, "$2") {
		return v.hasher.Compare(stored, given) == nil
	}
	return subtle.ConstantTimeCompare([]byte(stored), []byte(given)) == 1
}
