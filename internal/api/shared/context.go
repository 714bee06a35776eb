package shared

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"log/slog"
	"strings"

	"github.com/google/uuid"
)

// Key type for context values
type ContextKey string

// Context keys for various values
const (
	// ClientIDContextKey is the context key for the authenticated client id
	ClientIDContextKey ContextKey = "clientID"

	// TraceIDKey is the key for the trace ID in the request context
	TraceIDKey ContextKey = "traceID"

	// TraceIDLength is the number of bytes used to generate the trace ID
	TraceIDLength = 16 // 32 hex characters
)

// SetTraceID adds a trace ID to the context.
// This is useful for correlating logs and error responses.
func SetTraceID(ctx context.Context) context.Context {
	return context.WithValue(ctx, TraceIDKey, generateTraceID())
}

// GetTraceID retrieves the trace ID from the context.
// If no trace ID exists, it returns an empty string.
func GetTraceID(ctx context.Context) string {
	traceID, ok := ctx.Value(TraceIDKey).(string)
	if !ok {
		return ""
	}
	return traceID
}

// WithClientID stores the authenticated client id in the context.
func WithClientID(ctx context.Context, clientID string) context.Context {
	return context.WithValue(ctx, ClientIDContextKey, clientID)
}

// GetClientID returns the authenticated client id, if any.
func GetClientID(ctx context.Context) (string, bool) {
	clientID, ok := ctx.Value(ClientIDContextKey).(string)
	return clientID, ok && clientID != ""
}

// generateTraceID creates a random 32-character hex trace ID. If crypto/rand
// fails it falls back to a time-based UUID, never a static value.
func generateTraceID() string {
	b := make([]byte, TraceIDLength)
	n, err := rand.Read(b)
	if err == nil && n == TraceIDLength {
		return hex.EncodeToString(b)
	}

	slog.Error("failed to generate secure random trace ID",
		"error", err,
		"bytes_read", n,
		"bytes_requested", TraceIDLength,
		"fallback", "time-based uuid")
	return generateFallbackTraceID()
}

// generateFallbackTraceID returns a version 1 UUID without dashes.
func generateFallbackTraceID() string {
	id, err := uuid.NewUUID()
	if err != nil {
		id = uuid.Must(uuid.NewRandom())
	}
	return strings.ReplaceAll(id.String(), "-", "")
}
