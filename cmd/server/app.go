package main

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/clinicacaracas/citas-api/internal/api/middleware"
	"github.com/clinicacaracas/citas-api/internal/config"
	"github.com/clinicacaracas/citas-api/internal/platform/aescrypt"
	"github.com/clinicacaracas/citas-api/internal/platform/mail"
	"github.com/clinicacaracas/citas-api/internal/platform/memory"
	"github.com/clinicacaracas/citas-api/internal/redact"
	"github.com/clinicacaracas/citas-api/internal/service"
	"github.com/clinicacaracas/citas-api/internal/service/auth"
)

// limiterCleanupInterval is how often idle rate limiter entries are dropped.
const limiterCleanupInterval = time.Minute

// application holds all the shared application dependencies to simplify
// management and ensure proper cleanup on shutdown.
type application struct {
	config *config.Config
	logger *slog.Logger

	appointmentStore *memory.AppointmentStore
	notifier         *mail.Notifier

	appointmentService service.AppointmentService
	jwtService         auth.JWTService
	credentialVerifier auth.CredentialVerifier
	cipher             *aescrypt.Cipher

	generalLimiter     *middleware.IPRateLimiter
	appointmentLimiter *middleware.IPRateLimiter
}

// newApplication creates a new application instance with all dependencies
// initialized. The mail transport is injected so tests can replace SMTP.
func newApplication(cfg *config.Config, logger *slog.Logger, transport mail.Transport) (*application, error) {
	app := &application{
		config: cfg,
		logger: logger,
	}

	var err error
	app.jwtService, err = auth.NewJWTService(cfg.Auth)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize JWT service: %w", err)
	}
	logger.Info("JWT authentication service initialized",
		"token_lifetime", cfg.Auth.TokenLifetime)

	app.credentialVerifier, err = auth.NewCredentialVerifier(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize credential verifier: %w", err)
	}

	app.cipher = aescrypt.New(cfg.Auth.EncryptionKey)
	if !app.cipher.Configured() {
		logger.Warn("ENCRYPTION_KEY not set, encrypted client credentials are disabled")
	}

	app.appointmentStore = memory.NewAppointmentStore(logger)

	app.notifier, err = mail.NewNotifier(cfg.Clinic, cfg.Mail.Username, transport, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize notifier: %w", err)
	}

	app.appointmentService, err = service.NewAppointmentService(app.appointmentStore, app.notifier, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize appointment service: %w", err)
	}

	window := cfg.RateLimit.Window()
	app.generalLimiter = middleware.NewIPRateLimiter(
		cfg.RateLimit.MaxGeneral, window, middleware.MsgTooManyRequests)
	app.appointmentLimiter = middleware.NewIPRateLimiter(
		cfg.RateLimit.MaxAppointments, window, middleware.MsgTooManyAppointmentReqs)

	return app, nil
}

// verifyMail checks the SMTP connection once. Failures are logged; the
// server keeps accepting appointments and email delivery is retried on
// every send.
func (app *application) verifyMail(ctx context.Context, timeout time.Duration) {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	if err := app.notifier.Verify(ctx); err != nil {
		app.logger.Warn("email transport verification failed", "error", redact.Error(err))
		return
	}
	app.logger.Info("email transport verified", "host", app.config.Mail.Host)
}

// startBackground runs the rate limiter cleanup loops until ctx is done.
func (app *application) startBackground(ctx context.Context) {
	go app.generalLimiter.RunCleanup(ctx, limiterCleanupInterval)
	go app.appointmentLimiter.RunCleanup(ctx, limiterCleanupInterval)
}
