package config

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Environment names recognised by the service.
const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
	EnvTest        = "test"
)

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server    ServerConfig    `mapstructure:"server"     validate:"required"`
	Auth      AuthConfig      `mapstructure:"auth"       validate:"required"`
	Clinic    ClinicConfig    `mapstructure:"clinic"     validate:"required"`
	Mail      MailConfig      `mapstructure:"mail"       validate:"required"`
	RateLimit RateLimitConfig `mapstructure:"rate_limit" validate:"required"`
	CORS      CORSConfig      `mapstructure:"cors"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port        int    `mapstructure:"port"        validate:"required,gt=0,lt=65536"`
	Environment string `mapstructure:"environment" validate:"required,oneof=development production test"`
	LogLevel    string `mapstructure:"log_level"   validate:"required,oneof=debug info warn error"`
	Version     string `mapstructure:"version"`
}

// AuthConfig contains token, credential and encryption settings.
type AuthConfig struct {
	JWTSecret string `mapstructure:"jwt_secret" validate:"required"`
	// TokenLifetime accepts Go durations ("24h", "90m") and whole days ("7d").
	TokenLifetime string `mapstructure:"token_lifetime" validate:"required,lifetime"`
	// EncryptionKey is the passphrase for encrypted client credentials.
	// Empty disables encrypted submission.
	EncryptionKey string `mapstructure:"encryption_key"`
	// ValidClientCredentials is a JSON array of {clientId, clientSecret}.
	// Only consulted in production.
	ValidClientCredentials string   `mapstructure:"valid_client_credentials"`
	APIKeys                []string `mapstructure:"api_keys"`
}

// ClinicConfig is interpolated into notification emails.
type ClinicConfig struct {
	Name    string `mapstructure:"name"    validate:"required"`
	Email   string `mapstructure:"email"   validate:"required,email"`
	Phone   string `mapstructure:"phone"   validate:"required"`
	Address string `mapstructure:"address"`
}

// MailConfig holds the SMTP transport settings.
type MailConfig struct {
	Host     string `mapstructure:"host"     validate:"required,hostname"`
	Port     int    `mapstructure:"port"     validate:"required,gt=0,lt=65536"`
	Username string `mapstructure:"username" validate:"required"`
	Password string `mapstructure:"password" validate:"required"`
	SSL      bool   `mapstructure:"ssl"`
}

// RateLimitConfig sets per-IP request quotas.
type RateLimitConfig struct {
	WindowMS        int `mapstructure:"window_ms"        validate:"required,gt=0"`
	MaxGeneral      int `mapstructure:"max_general"      validate:"required,gt=0"`
	MaxAppointments int `mapstructure:"max_appointments" validate:"required,gt=0"`
}

// Window returns the rate limit window as a duration.
func (c RateLimitConfig) Window() time.Duration {
	return time.Duration(c.WindowMS) * time.Millisecond
}

// CORSConfig lists the browser origins allowed to call the API.
type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// ClientCredential is one entry of the production credential allow-list.
// ClientSecret may be a bcrypt hash.
type ClientCredential struct {
	ClientID     string `json:"clientId"`
	ClientSecret string `json:"clientSecret"`
}

// IsProduction reports whether the service runs in production mode.
func (c *Config) IsProduction() bool {
	return c.Server.Environment == EnvProduction
}

// IsDevelopment reports whether the service runs in development mode.
func (c *Config) IsDevelopment() bool {
	return c.Server.Environment == EnvDevelopment
}

// ClientCredentials parses the JSON allow-list. An empty setting yields an
// empty list and no error.
func (c AuthConfig) ClientCredentials() ([]ClientCredential, error) {
	raw := strings.TrimSpace(c.ValidClientCredentials)
	if raw == "" {
		return nil, nil
	}

	var creds []ClientCredential
	if err := json.Unmarshal([]byte(raw), &creds); err != nil {
		return nil, fmt.Errorf("parse valid client credentials: %w", err)
	}
	return creds, nil
}

// Lifetime returns TokenLifetime as a duration.
func (c AuthConfig) Lifetime() (time.Duration, error) {
	return ParseLifetime(c.TokenLifetime)
}

// ParseLifetime parses a token lifetime such as "24h", "30m" or "7d".
func ParseLifetime(s string) (time.Duration, error) {
	s = strings.TrimSpace(s)
	if days, ok := strings.CutSuffix(s, "d"); ok {
		n, err := strconv.Atoi(days)
		if err != nil || n < 0 {
			return 0, fmt.Errorf("invalid lifetime %q", s)
		}
		return time.Duration(n) * 24 * time.Hour, nil
	}

	d, err := time.ParseDuration(s)
	if err != nil {
		return 0, fmt.Errorf("invalid lifetime %q: %w", s, err)
	}
	if d < 0 {
		return 0, fmt.Errorf("invalid lifetime %q: negative", s)
	}
	return d, nil
}
