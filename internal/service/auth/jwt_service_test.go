package auth

import (
	"context"
	"testing"
	"time"

	"github.com/clinicacaracas/citas-api/internal/config"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testSecret  = "test-secret-that-is-long-enough-for-testing"
	wrongSecret = "wrong-secret-that-is-long-enough-for-testing"
)

var fixedTime = time.Date(2025, 1, 15, 12, 0, 0, 0, time.UTC)

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func TestGenerateToken(t *testing.T) {
	t.Parallel()

	tokenLifetime := 24 * time.Hour
	svc := NewTestJWTService(testSecret, tokenLifetime, fixedClock(fixedTime))

	token, err := svc.GenerateToken(context.Background(), Claims{ClientID: "landing-page"})
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.ValidateToken(context.Background(), token)
	require.NoError(t, err)

	assert.Equal(t, "landing-page", claims.ClientID)
	assert.Equal(t, RoleClient, claims.Role)
	assert.True(t, fixedTime.Equal(claims.Timestamp))
	assert.Equal(t, fixedTime.Unix(), claims.IssuedAt.Unix())
	assert.Equal(t, fixedTime.Add(tokenLifetime).Unix(), claims.ExpiresAt.Unix())
	assert.NotEmpty(t, claims.ID)
}

func TestGenerateToken_UniqueIDs(t *testing.T) {
	t.Parallel()

	svc := NewTestJWTService(testSecret, time.Hour, fixedClock(fixedTime))
	a, err := svc.GenerateToken(context.Background(), Claims{ClientID: "c"})
	require.NoError(t, err)
	b, err := svc.GenerateToken(context.Background(), Claims{ClientID: "c"})
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
}

func TestGenerateToken_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		secret  string
		claims  Claims
		wantErr error
	}{
		{name: "secret not configured", secret: "", claims: Claims{ClientID: "c"}, wantErr: ErrSecretNotConfigured},
		{name: "missing client id", secret: testSecret, claims: Claims{}, wantErr: ErrInvalidClaims},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			svc := NewTestJWTService(tt.secret, time.Hour, fixedClock(fixedTime))
			token, err := svc.GenerateToken(context.Background(), tt.claims)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Empty(t, token)
		})
	}
}

func TestValidateToken(t *testing.T) {
	t.Parallel()

	tokenLifetime := 60 * time.Minute
	issue := func(secret string, lifetime time.Duration) string {
		svc := NewTestJWTService(secret, lifetime, fixedClock(fixedTime))
		token, err := svc.GenerateToken(context.Background(), Claims{ClientID: "landing-page"})
		require.NoError(t, err)
		return token
	}

	noneToken, err := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{
		"clientId": "landing-page",
		"exp":      fixedTime.Add(time.Hour).Unix(),
	}).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	noClientToken, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"role": "client",
		"exp":  fixedTime.Add(time.Hour).Unix(),
	}).SignedString([]byte(testSecret))
	require.NoError(t, err)

	noExpToken, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"clientId": "landing-page",
	}).SignedString([]byte(testSecret))
	require.NoError(t, err)

	tests := []struct {
		name      string
		token     string
		secret    string
		validAt   time.Time
		wantErr   error
		wantValid bool
	}{
		{
			name:      "valid token",
			token:     issue(testSecret, tokenLifetime),
			secret:    testSecret,
			validAt:   fixedTime.Add(30 * time.Minute),
			wantValid: true,
		},
		{
			name:    "expired token",
			token:   issue(testSecret, tokenLifetime),
			secret:  testSecret,
			validAt: fixedTime.Add(tokenLifetime + time.Second),
			wantErr: ErrExpiredToken,
		},
		{
			name:    "zero lifetime expires after any delay",
			token:   issue(testSecret, 0),
			secret:  testSecret,
			validAt: fixedTime.Add(time.Millisecond),
			wantErr: ErrExpiredToken,
		},
		{
			name:    "invalid signature",
			token:   issue(testSecret, tokenLifetime),
			secret:  wrongSecret,
			validAt: fixedTime,
			wantErr: ErrInvalidToken,
		},
		{
			name:    "malformed token",
			token:   "this.is.not.a.valid.jwt.token",
			secret:  testSecret,
			validAt: fixedTime,
			wantErr: ErrInvalidToken,
		},
		{
			name:    "none algorithm",
			token:   noneToken,
			secret:  testSecret,
			validAt: fixedTime,
			wantErr: ErrInvalidToken,
		},
		{
			name:    "missing client id",
			token:   noClientToken,
			secret:  testSecret,
			validAt: fixedTime,
			wantErr: ErrInvalidToken,
		},
		{
			name:    "missing expiry",
			token:   noExpToken,
			secret:  testSecret,
			validAt: fixedTime,
			wantErr: ErrInvalidToken,
		},
		{
			name:    "empty token",
			token:   "",
			secret:  testSecret,
			validAt: fixedTime,
			wantErr: ErrMissingToken,
		},
		{
			name:    "secret not configured",
			token:   issue(testSecret, tokenLifetime),
			secret:  "",
			validAt: fixedTime,
			wantErr: ErrSecretNotConfigured,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			svc := NewTestJWTService(tt.secret, tokenLifetime, fixedClock(tt.validAt))

			claims, err := svc.ValidateToken(context.Background(), tt.token)
			if tt.wantValid {
				require.NoError(t, err)
				assert.Equal(t, "landing-page", claims.ClientID)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Nil(t, claims)
		})
	}
}

func TestNewJWTService(t *testing.T) {
	t.Parallel()

	svc, err := NewJWTService(config.AuthConfig{JWTSecret: testSecret, TokenLifetime: "7d"})
	require.NoError(t, err)
	impl, ok := svc.(*hmacJWTService)
	require.True(t, ok)
	assert.Equal(t, 7*24*time.Hour, impl.tokenLifetime)

	_, err = NewJWTService(config.AuthConfig{JWTSecret: testSecret, TokenLifetime: "forever"})
	assert.Error(t, err)
}
