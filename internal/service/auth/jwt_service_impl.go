package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/clinicacaracas/citas-api/internal/config"
	"github.com/clinicacaracas/citas-api/internal/platform/logger"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// timestampLayout renders the timestamp claim as an ISO-8601 UTC string.
const timestampLayout = "2006-01-02T15:04:05.000Z"

// hmacJWTService is an implementation of JWTService using HMAC-SHA256 signing.
type hmacJWTService struct {
	signingKey    []byte
	tokenLifetime time.Duration
	timeFunc      func() time.Time // Injectable for testing
}

// jwtCustomClaims defines the structure of JWT claims we use
type jwtCustomClaims struct {
	ClientID  string `json:"clientId"`
	Role      string `json:"role"`
	Timestamp string `json:"timestamp"`
	jwt.RegisteredClaims
}

// Ensure hmacJWTService implements JWTService interface
var _ JWTService = (*hmacJWTService)(nil)

// NewJWTService creates a new JWT service using HMAC-SHA256 signing.
// An empty secret is accepted here; GenerateToken and ValidateToken then
// fail with ErrSecretNotConfigured.
func NewJWTService(cfg config.AuthConfig) (JWTService, error) {
	lifetime, err := cfg.Lifetime()
	if err != nil {
		return nil, fmt.Errorf("invalid token lifetime: %w", err)
	}

	return &hmacJWTService{
		signingKey:    []byte(cfg.JWTSecret),
		tokenLifetime: lifetime,
		timeFunc:      time.Now,
	}, nil
}

// NewTestJWTService creates a JWT service with an injected clock.
func NewTestJWTService(secret string, lifetime time.Duration, timeFunc func() time.Time) JWTService {
	return &hmacJWTService{
		signingKey:    []byte(secret),
		tokenLifetime: lifetime,
		timeFunc:      timeFunc,
	}
}

// GenerateToken creates a signed JWT access token for a client.
func (s *hmacJWTService) GenerateToken(ctx context.Context, claims Claims) (string, error) {
	log := logger.FromContext(ctx)

	if len(s.signingKey) == 0 {
		log.Error("cannot sign token: jwt secret not configured")
		return "", ErrSecretNotConfigured
	}
	if claims.ClientID == "" {
		return "", ErrInvalidClaims
	}

	now := s.timeFunc()
	role := claims.Role
	if role == "" {
		role = RoleClient
	}
	timestamp := claims.Timestamp
	if timestamp.IsZero() {
		timestamp = now
	}

	jwtClaims := jwtCustomClaims{
		ClientID:  claims.ClientID,
		Role:      role,
		Timestamp: timestamp.UTC().Format(timestampLayout),
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenLifetime)),
			ID:        uuid.New().String(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwtClaims)
	signedToken, err := token.SignedString(s.signingKey)
	if err != nil {
		log.Error("failed to sign JWT access token",
			"error", err,
			"client_id", claims.ClientID,
			"signing_method", jwt.SigningMethodHS256.Name)
		return "", fmt.Errorf("failed to sign access token with HMAC-SHA256: %w", err)
	}

	return signedToken, nil
}

// ValidateToken validates a JWT access token and returns the claims if valid.
// No leeway is applied to the expiry check.
func (s *hmacJWTService) ValidateToken(ctx context.Context, tokenString string) (*Claims, error) {
	log := logger.FromContext(ctx)

	if len(s.signingKey) == 0 {
		log.Error("cannot validate token: jwt secret not configured")
		return nil, ErrSecretNotConfigured
	}
	if tokenString == "" {
		return nil, ErrMissingToken
	}

	now := s.timeFunc()
	parserOpts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Name}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(func() time.Time {
			return now
		}),
	}

	token, err := jwt.ParseWithClaims(
		tokenString,
		&jwtCustomClaims{},
		func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
			}
			return s.signingKey, nil
		},
		parserOpts...)
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			log.Debug("access token validation failed: token expired", "error", err)
			return nil, ErrExpiredToken
		case errors.Is(err, jwt.ErrTokenMalformed):
			log.Debug("access token validation failed: malformed token", "error", err)
		case errors.Is(err, jwt.ErrTokenSignatureInvalid):
			log.Debug("access token validation failed: invalid signature", "error", err)
		default:
			log.Debug("access token validation failed: other validation error",
				"error", err,
				"error_type", fmt.Sprintf("%T", err))
		}
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*jwtCustomClaims)
	if !ok || !token.Valid || claims.ClientID == "" {
		log.Debug("token validation failed: invalid claims")
		return nil, ErrInvalidToken
	}

	result := &Claims{
		ClientID: claims.ClientID,
		Role:     claims.Role,
		ID:       claims.ID,
	}
	if ts, err := time.Parse(time.RFC3339Nano, claims.Timestamp); err == nil {
		result.Timestamp = ts
	}
	if claims.IssuedAt != nil {
		result.IssuedAt = claims.IssuedAt.Time
	}
	if claims.ExpiresAt != nil {
		result.ExpiresAt = claims.ExpiresAt.Time
	}

	log.Debug("access token validated successfully",
		"client_id", claims.ClientID,
		"token_id", claims.ID,
		"expiry", result.ExpiresAt)

	return result, nil
}
