// Package main implements the entry point for the clinic appointment API,
// which accepts booking requests from the public site, stores them and
// notifies the clinic and the patient by email.
package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/clinicacaracas/citas-api/internal/config"
	"github.com/clinicacaracas/citas-api/internal/platform/logger"
	"github.com/clinicacaracas/citas-api/internal/platform/mail"
)

// mailVerifyTimeout bounds the startup SMTP check.
const mailVerifyTimeout = 15 * time.Second

func main() {
	if err := run(); err != nil {
		log.Fatalf("Failed to run application: %v", err)
	}
}

// run loads configuration, builds the application and serves until SIGINT
// or SIGTERM.
func run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := loadAppConfig()
	if err != nil {
		return err
	}

	appLogger, err := logger.Setup(cfg.Server)
	if err != nil {
		return fmt.Errorf("failed to set up logger: %w", err)
	}

	appLogger.Info("Server configuration loaded",
		"port", cfg.Server.Port,
		"environment", cfg.Server.Environment,
		"log_level", cfg.Server.LogLevel,
		"encryption_enabled", cfg.Auth.EncryptionKey != "",
		"api_keys", len(cfg.Auth.APIKeys))

	app, err := newApplication(cfg, appLogger, mail.NewSMTPTransport(cfg.Mail))
	if err != nil {
		return fmt.Errorf("failed to initialize application: %w", err)
	}

	go app.verifyMail(ctx, mailVerifyTimeout)

	return app.startHTTPServer(ctx, app.setupRouter())
}

// loadAppConfig loads the application configuration from env files and the
// environment. Configuration errors are printed before the logger exists.
func loadAppConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Configuración inválida. Ejecuta validate-env para más detalles.")
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	slog.Debug("Auth configuration", "jwt_secret_present", cfg.Auth.JWTSecret != "")
	return cfg, nil
}
