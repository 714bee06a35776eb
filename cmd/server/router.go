package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/clinicacaracas/citas-api/internal/api"
	"github.com/clinicacaracas/citas-api/internal/api/middleware"
)

// setupRouter creates and configures the application router with all routes
// and middleware.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.WithLogger(app.logger))
	r.Use(middleware.TraceMiddleware)
	r.Use(middleware.RequestLogger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.SecurityHeaders)
	r.Use(middleware.CORS(app.config.CORS.AllowedOrigins))
	r.Use(app.generalLimiter.Middleware)
	r.Use(middleware.APIKey(app.config.Auth.APIKeys))
	r.Use(middleware.LimitBody)

	systemHandler := api.NewSystemHandler(app.config.Server.Environment, app.config.Server.Version)
	authHandler := api.NewAuthHandler(
		app.credentialVerifier,
		app.jwtService,
		app.config.Auth.TokenLifetime,
		app.config.Server.Environment,
	)
	appointmentHandler := api.NewAppointmentHandler(app.appointmentService, app.config.IsDevelopment())
	authMiddleware := middleware.NewAuthMiddleware(app.jwtService)

	r.NotFound(systemHandler.NotFound)
	r.MethodNotAllowed(systemHandler.MethodNotAllowed)

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", systemHandler.Health)
		r.Get("/info", systemHandler.Info)

		r.With(middleware.DecryptCredentials(app.cipher, app.config.IsDevelopment())).
			Post("/auth/token", authHandler.IssueToken)

		// Appointment booking
		r.Group(func(r chi.Router) {
			r.Use(app.appointmentLimiter.Middleware)
			r.Use(authMiddleware.Authenticate)
			r.Use(middleware.ValidateInput)

			r.Post("/citas", appointmentHandler.CreateAppointment)
			r.Post("/appointments", appointmentHandler.CreateAppointment)
		})
	})

	return r
}
