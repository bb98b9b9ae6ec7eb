package shared

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/kami8ma8810/next-architecture-learning/internal/platform/logger"
	"github.com/kami8ma8810/next-architecture-learning/internal/service/auth"
)

// TraceIDLength is the length of generated trace ids in hex characters.
const TraceIDLength = 32

// SetTraceID adds a new trace ID to the context. Loggers obtained through
// logger.FromContext include it.
func SetTraceID(ctx context.Context) context.Context {
	return logger.WithTraceID(ctx, generateTraceID())
}

// GetTraceID retrieves the trace ID from the context, or "".
func GetTraceID(ctx context.Context) string {
	return logger.TraceID(ctx)
}

// UserIDFromContext returns the id of the authenticated user. The auth
// middleware stores it; it is absent on public routes.
func UserIDFromContext(ctx context.Context) (string, bool) {
	claims, ok := auth.ClaimsFromContext(ctx)
	if !ok || claims.UserID == "" {
		return "", false
	}
	return claims.UserID, true
}

func generateTraceID() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")
}
