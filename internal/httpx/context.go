package httpx

import (
	"context"
	"log/slog"
	"net/http"
)

type contextKey string

const requestIDKey contextKey = "requestID"

// RequestIDFrom retrieves the request ID from the request context.
func RequestIDFrom(r *http.Request) string {
	if v, ok := r.Context().Value(requestIDKey).(string); ok {
		return v
	}
	return ""
}

// ContextWithRequestID returns a new context carrying the request ID.
func ContextWithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey, requestID)
}

// Logger returns the default logger tagged with the request's ID.
func Logger(r *http.Request) *slog.Logger {
	if id := RequestIDFrom(r); id != "" {
		return slog.Default().With("request_id", id)
	}
	return slog.Default()
}
