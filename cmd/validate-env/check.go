package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/clinicacaracas/citas-api/internal/config"
)

var requiredVars = []string{
	"EMAIL_USER",
	"EMAIL_PASS",
	"JWT_SECRET",
	"CLINIC_NAME",
	"CLINIC_EMAIL",
	"CLINIC_PHONE",
}

var productionVars = []string{
	"VALID_CLIENT_CREDENTIALS",
	"ENCRYPTION_KEY",
}

var optionalVars = []string{
	"API_KEYS",
	"LOG_LEVEL",
	"RATE_LIMIT_WINDOW_MS",
	"RATE_LIMIT_MAX_GENERAL",
	"RATE_LIMIT_MAX_CITAS",
	"CORS_ALLOWED_ORIGINS",
}

const (
	minEmailPassLength = 8
	placeholderSecret  = "tu-super-secreto"
	rule               = "=================================================="
)

// report writes check results and remembers whether any failed.
type report struct {
	w      io.Writer
	failed bool
}

func (r *report) section(title string) { fmt.Fprintf(r.w, "\n%s:\n", title) }
func (r *report) ok(format string, a ...any) {
	fmt.Fprintf(r.w, "  OK    "+format+"\n", a...)
}
func (r *report) warn(format string, a ...any) {
	fmt.Fprintf(r.w, "  WARN  "+format+"\n", a...)
}
func (r *report) fail(format string, a ...any) {
	r.failed = true
	fmt.Fprintf(r.w, "  ERROR "+format+"\n", a...)
}

// validate checks the variables returned by getenv for environment and
// writes a report to w. It returns true when the configuration is usable.
func validate(w io.Writer, environment string, getenv func(string) string) bool {
	r := &report{w: w}
	production := environment == config.EnvProduction

	fmt.Fprintf(w, "Validando configuración para ambiente: %s\n%s\n", environment, rule)

	r.section("Variables requeridas")
	for _, name := range requiredVars {
		checkPresent(r, name, getenv(name), "FALTANTE")
	}

	if production {
		r.section("Variables específicas de producción")
		for _, name := range productionVars {
			checkPresent(r, name, getenv(name), "FALTANTE (requerida en producción)")
		}
	}

	r.section("Variables opcionales")
	for _, name := range optionalVars {
		if v := getenv(name); v == "" {
			r.warn("%s: No configurada (usando valores por defecto)", name)
		} else {
			r.ok("%s: %s", name, v)
		}
	}

	r.section("Validaciones de seguridad")
	if production {
		checkProductionSecret(r, getenv("JWT_SECRET"))
		checkCredentials(r, getenv("VALID_CLIENT_CREDENTIALS"))
	}
	checkMailAccount(r, getenv("EMAIL_USER"), getenv("EMAIL_PASS"))
	checkCORS(r, getenv("CORS_ALLOWED_ORIGINS"), production)
	if lifetime := getenv("JWT_EXPIRES_IN"); lifetime != "" {
		if _, err := config.ParseLifetime(lifetime); err != nil {
			r.fail("JWT_EXPIRES_IN: Formato inválido (%q)", lifetime)
		} else {
			r.ok("JWT_EXPIRES_IN: %s", lifetime)
		}
	}

	fmt.Fprintf(w, "\n%s\n", rule)
	if r.failed {
		fmt.Fprintln(w, "Configuración INCOMPLETA. Corrige los errores antes de continuar.")
		return false
	}

	fmt.Fprintf(w, "Configuración VÁLIDA para el ambiente: %s\n", environment)
	if production {
		fmt.Fprintln(w, "\nRecordatorios para producción:")
		fmt.Fprintln(w, "- Asegúrate de cambiar todos los valores por defecto")
		fmt.Fprintln(w, "- Usa HTTPS en todos los dominios")
		fmt.Fprintln(w, "- Revisa los logs regularmente")
	}
	return true
}

func checkPresent(r *report, name, value, missing string) {
	if value == "" {
		r.fail("%s: %s", name, missing)
		return
	}
	r.ok("%s: %s", name, mask(name, value))
}

// mask hides values of secret-looking variables, revealing only their
// length up to eight characters.
func mask(name, value string) string {
	if strings.Contains(name, "PASS") || strings.Contains(name, "SECRET") || strings.Contains(name, "KEY") {
		return strings.Repeat("*", min(len(value), 8))
	}
	return value
}

func checkProductionSecret(r *report, secret string) {
	switch {
	case secret == "":
		// already reported as missing
	case len(secret) < config.MinProductionSecretLength:
		r.fail("JWT_SECRET: Demasiado corto para producción (mínimo %d caracteres)", config.MinProductionSecretLength)
	case strings.Contains(secret, placeholderSecret):
		r.fail("JWT_SECRET: Debes cambiar el valor por defecto en producción")
	default:
		r.ok("JWT_SECRET: Configurado correctamente")
	}
}

func checkCredentials(r *report, raw string) {
	if raw == "" {
		return
	}
	var creds []config.ClientCredential
	if err := json.Unmarshal([]byte(raw), &creds); err != nil {
		r.fail("VALID_CLIENT_CREDENTIALS: Formato JSON inválido")
		return
	}
	if len(creds) == 0 {
		r.fail("VALID_CLIENT_CREDENTIALS: Debe ser un array JSON no vacío")
		return
	}
	r.ok("VALID_CLIENT_CREDENTIALS: %d credenciales configuradas", len(creds))
}

func checkMailAccount(r *report, user, pass string) {
	if user == "" || pass == "" {
		return
	}
	if !strings.Contains(user, "@") {
		r.fail("EMAIL_USER: Formato de email inválido")
	} else {
		r.ok("EMAIL_USER: Formato válido")
	}
	if len(pass) < minEmailPassLength {
		r.fail("EMAIL_PASS: Contraseña demasiado corta")
	} else {
		r.ok("EMAIL_PASS: Longitud adecuada")
	}
}

func checkCORS(r *report, raw string, production bool) {
	if raw == "" {
		return
	}
	origins := strings.Split(raw, ",")
	if production {
		https := false
		for _, o := range origins {
			if strings.HasPrefix(strings.TrimSpace(o), "https://") {
				https = true
				break
			}
		}
		if !https {
			r.warn("CORS_ALLOWED_ORIGINS: En producción, se recomienda usar solo HTTPS")
		}
	}
	r.ok("CORS_ALLOWED_ORIGINS: %d orígenes configurados", len(origins))
}
