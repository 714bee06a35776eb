package auth

import "errors"

// Token errors.
var (
	// ErrInvalidToken indicates the token is malformed, its signature does not
	// match or its claims are incomplete.
	ErrInvalidToken = errors.New("invalid authentication token")

	// ErrExpiredToken indicates the token has expired.
	ErrExpiredToken = errors.New("authentication token has expired")

	// ErrMissingToken indicates a token was expected but not provided.
	ErrMissingToken = errors.New("authentication token is missing")

	// ErrInvalidClaims is returned by GenerateToken when the claims carry no
	// client id.
	ErrInvalidClaims = errors.New("token claims require a client id")
)

// Configuration errors are server faults and never blamed on the caller.
var (
	// ErrSecretNotConfigured indicates no signing secret is available.
	ErrSecretNotConfigured = errors.New("jwt secret not configured")

	// ErrInvalidCredentialConfig indicates the client credential allow-list
	// could not be parsed.
	ErrInvalidCredentialConfig = errors.New("invalid client credential configuration")
)

// Credential errors.
var (
	// ErrMissingCredentials indicates the client id or secret is empty.
	ErrMissingCredentials = errors.New("client id and secret are required")

	// ErrInvalidCredentials indicates the pair is not on the allow-list.
	ErrInvalidCredentials = errors.New("invalid client credentials")
)
