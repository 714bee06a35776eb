package shared

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/clinicacaracas/citas-api/internal/redact"
)

// ErrorResponse defines the standard error response structure.
type ErrorResponse struct {
	Success    bool   `json:"success"`
	Message    string `json:"message"`
	Details    string `json:"details,omitempty"`
	RetryAfter int    `json:"retryAfter,omitempty"`
	Code       int    `json:"-"` // Not serialized to JSON, used for logging
	TraceID    string `json:"trace_id,omitempty"`
}

// ResponseOption defines a function to customize response behavior.
type ResponseOption func(*responseOptions)

// responseOptions holds configurable options for error responses.
type responseOptions struct {
	elevateLogLevel bool
	details         string
	retryAfter      int
}

// WithElevatedLogLevel returns a ResponseOption that raises 4xx errors to WARN level
// instead of the default DEBUG level. Use for important operational issues like
// repeated auth failures.
func WithElevatedLogLevel() ResponseOption {
	return func(opts *responseOptions) {
		opts.elevateLogLevel = true
	}
}

// WithDetails adds diagnostic detail to the response body. Callers only pass
// it outside production.
func WithDetails(details string) ResponseOption {
	return func(opts *responseOptions) {
		opts.details = details
	}
}

// WithRetryAfter adds the retryAfter field, in seconds.
func WithRetryAfter(seconds int) ResponseOption {
	return func(opts *responseOptions) {
		opts.retryAfter = seconds
	}
}

// RespondWithJSON writes a JSON response with the given status code and data.
func RespondWithJSON(w http.ResponseWriter, r *http.Request, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		slog.Error("failed to encode JSON response", "error", err)
	}
}

// RespondWithError writes a JSON error response with the given status code and message.
// It also sets the TraceID from the request context if available.
func RespondWithError(
	w http.ResponseWriter,
	r *http.Request,
	status int,
	message string,
	opts ...ResponseOption,
) {
	traceID := GetTraceID(r.Context())
	responseOpts := applyOptions(opts)

	slog.Debug("sending error response",
		"status_code", status,
		"message", message,
		"trace_id", traceID,
		"path", r.URL.Path,
		"method", r.Method)

	RespondWithJSON(w, r, status, newErrorResponse(status, message, traceID, responseOpts))
}

// RespondWithErrorAndLog writes a JSON error response and also logs the detailed error.
// The raw error is never written to the response; only WithDetails adds detail.
//
// Log level strategy:
// - 5xx errors: Always logged at ERROR level
// - 4xx errors: By default logged at DEBUG level
// - 429 Too Many Requests: Logged at WARN level (operational concern)
//
// Use WithElevatedLogLevel() to raise other 4xx errors to WARN.
func RespondWithErrorAndLog(
	w http.ResponseWriter,
	r *http.Request,
	status int,
	userMessage string,
	err error,
	opts ...ResponseOption,
) {
	traceID := GetTraceID(r.Context())
	responseOpts := applyOptions(opts)

	logAttrs := []slog.Attr{
		slog.String("trace_id", traceID),
		slog.String("path", r.URL.Path),
		slog.String("method", r.Method),
		slog.Int("status_code", status),
		slog.String("user_message", userMessage),
	}
	if err != nil {
		logAttrs = append(logAttrs,
			slog.String("error", redact.Error(err)),
			slog.String("error_type", fmt.Sprintf("%T", err)))
	}

	logLevel := slog.LevelDebug
	switch {
	case status >= http.StatusInternalServerError:
		logLevel = slog.LevelError
	case status == http.StatusTooManyRequests:
		logLevel = slog.LevelWarn
	case responseOpts.elevateLogLevel && status >= http.StatusBadRequest:
		logLevel = slog.LevelWarn
	}

	slog.LogAttrs(r.Context(), logLevel, "API error response", logAttrs...)

	RespondWithJSON(w, r, status, newErrorResponse(status, userMessage, traceID, responseOpts))
}

func applyOptions(opts []ResponseOption) responseOptions {
	var responseOpts responseOptions
	for _, opt := range opts {
		opt(&responseOpts)
	}
	return responseOpts
}

func newErrorResponse(status int, message, traceID string, opts responseOptions) ErrorResponse {
	return ErrorResponse{
		Success:    false,
		Message:    message,
		Details:    opts.details,
		RetryAfter: opts.retryAfter,
		Code:       status,
		TraceID:    traceID,
	}
}
