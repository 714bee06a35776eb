package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// DefaultEnvFiles are the dotenv files Load reads, in order, when present.
var DefaultEnvFiles = []string{"config.env", ".env"}

// defaultCORSOrigins mirrors the origins the public site is served from.
var defaultCORSOrigins = []string{
	"http://localhost:3000",
	"http://localhost:3001",
	"http://localhost:5173",
	"https://clinicaencaracas.com",
	"https://www.clinicaencaracas.com",
}

// envBindings maps configuration keys to the environment variables the
// deployment already uses. Earlier names take precedence.
var envBindings = map[string][]string{
	"server.port":                   {"PORT"},
	"server.environment":            {"APP_ENV", "NODE_ENV"},
	"server.log_level":              {"LOG_LEVEL"},
	"server.version":                {"APP_VERSION"},
	"auth.jwt_secret":               {"JWT_SECRET"},
	"auth.token_lifetime":           {"JWT_EXPIRES_IN"},
	"auth.encryption_key":           {"ENCRYPTION_KEY"},
	"auth.valid_client_credentials": {"VALID_CLIENT_CREDENTIALS"},
	"auth.api_keys":                 {"API_KEYS"},
	"clinic.name":                   {"CLINIC_NAME"},
	"clinic.email":                  {"CLINIC_EMAIL"},
	"clinic.phone":                  {"CLINIC_PHONE"},
	"clinic.address":                {"CLINIC_ADDRESS"},
	"mail.host":                     {"EMAIL_HOST"},
	"mail.port":                     {"EMAIL_PORT"},
	"mail.username":                 {"EMAIL_USER"},
	"mail.password":                 {"EMAIL_PASS"},
	"mail.ssl":                      {"EMAIL_SSL"},
	"rate_limit.window_ms":          {"RATE_LIMIT_WINDOW_MS"},
	"rate_limit.max_general":        {"RATE_LIMIT_MAX_GENERAL"},
	"rate_limit.max_appointments":   {"RATE_LIMIT_MAX_CITAS"},
	"cors.allowed_origins":          {"CORS_ALLOWED_ORIGINS"},
}

// Load reads DefaultEnvFiles (if present) and then builds the configuration
// from environment variables. It returns a validated Config.
func Load() (*Config, error) {
	if err := LoadEnvFiles(DefaultEnvFiles...); err != nil {
		return nil, err
	}
	return FromEnv()
}

// LoadEnvFiles loads each dotenv file that exists. Variables already present
// in the process environment are not overridden.
func LoadEnvFiles(paths ...string) error {
	for _, p := range paths {
		if err := godotenv.Load(p); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return fmt.Errorf("failed to load env file %s: %w", p, err)
		}
	}
	return nil
}

// FromEnv builds and validates a Config from the current environment only.
func FromEnv() (*Config, error) {
	v := viper.New()
	setDefaults(v)

	for key, envs := range envBindings {
		args := append([]string{key}, envs...)
		if err := v.BindEnv(args...); err != nil {
			return nil, fmt.Errorf("failed to bind env for %s: %w", key, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	cfg.Server.Environment = strings.ToLower(strings.TrimSpace(cfg.Server.Environment))
	cfg.Server.LogLevel = strings.ToLower(strings.TrimSpace(cfg.Server.LogLevel))
	cfg.Auth.APIKeys = compact(cfg.Auth.APIKeys)
	cfg.CORS.AllowedOrigins = compact(cfg.CORS.AllowedOrigins)
	if len(cfg.CORS.AllowedOrigins) == 0 {
		cfg.CORS.AllowedOrigins = append([]string(nil), defaultCORSOrigins...)
	}

	if err := Validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 3000)
	v.SetDefault("server.environment", EnvDevelopment)
	v.SetDefault("server.log_level", "info")
	v.SetDefault("server.version", "2.0.0")

	v.SetDefault("auth.token_lifetime", "24h")

	v.SetDefault("clinic.address",
		"Av. Francisco de Miranda, Torre Parque Cristal, Piso 15, Campo Alegre, Caracas")

	v.SetDefault("mail.host", "smtp.gmail.com")
	v.SetDefault("mail.port", 465)
	v.SetDefault("mail.ssl", true)

	v.SetDefault("rate_limit.window_ms", 15*60*1000)
	v.SetDefault("rate_limit.max_general", 100)
	v.SetDefault("rate_limit.max_appointments", 10)
}

// Validate checks field rules and, in production, the stricter secret and
// credential requirements.
func Validate(cfg *Config) error {
	validate := validator.New()
	if err := validate.RegisterValidation("lifetime", validateLifetime); err != nil {
		return fmt.Errorf("failed to register lifetime validation: %w", err)
	}
	validate.RegisterStructValidation(validateProduction, Config{})

	if err := validate.Struct(cfg); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}
	return nil
}

func validateLifetime(fl validator.FieldLevel) bool {
	_, err := ParseLifetime(fl.Field().String())
	return err == nil
}

// MinProductionSecretLength is the shortest JWT secret accepted in production.
const MinProductionSecretLength = 32

// placeholderSecret is the value shipped in the sample env file.
const placeholderSecret = "tu-super-secreto"

func validateProduction(sl validator.StructLevel) {
	cfg := sl.Current().Interface().(Config)
	if cfg.Server.Environment != EnvProduction {
		return
	}

	secret := cfg.Auth.JWTSecret
	if len(secret) < MinProductionSecretLength || strings.Contains(secret, placeholderSecret) {
		sl.ReportError(secret, "Auth.JWTSecret", "JWTSecret", "production_secret", "")
	}

	if cfg.Auth.EncryptionKey == "" {
		sl.ReportError(cfg.Auth.EncryptionKey, "Auth.EncryptionKey", "EncryptionKey", "required_in_production", "")
	}

	creds, err := cfg.Auth.ClientCredentials()
	if err != nil || len(creds) == 0 {
		sl.ReportError(
			cfg.Auth.ValidClientCredentials,
			"Auth.ValidClientCredentials",
			"ValidClientCredentials",
			"nonempty_json_array",
			"",
		)
	}
}

func compact(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}
