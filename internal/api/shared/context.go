package shared

import (
	"context"
	"encoding/hex"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/phrazzld/contacts-api/internal/domain"
)

// ContextKey namespaces values this package stores on a request context.
type ContextKey string

const (
	UserContextKey ContextKey = "user"
	TraceIDKey     ContextKey = "traceID"

	// TraceIDLength is the trace ID size in bytes before hex encoding.
	TraceIDLength = 16
)

// WithUser returns a copy of ctx carrying the authenticated user.
func WithUser(ctx context.Context, user *domain.User) context.Context {
	return context.WithValue(ctx, UserContextKey, user)
}

// UserFromContext returns the authenticated user placed in the context by
// the auth middleware.
func UserFromContext(ctx context.Context) (*domain.User, bool) {
	user, ok := ctx.Value(UserContextKey).(*domain.User)
	if !ok || user == nil {
		return nil, false
	}
	return user, true
}

// SetTraceID attaches a fresh trace ID to ctx.
func SetTraceID(ctx context.Context) context.Context {
	return context.WithValue(ctx, TraceIDKey, generateTraceID())
}

// GetTraceID returns the request's trace ID, or "" outside a traced request.
func GetTraceID(ctx context.Context) string {
	id, _ := ctx.Value(TraceIDKey).(string)
	return id
}

// generateTraceID returns a random UUID as 32 hex characters. If the random
// source fails it derives the ID from the clock instead.
func generateTraceID() string {
	id, err := uuid.NewRandom()
	if err != nil {
		slog.Warn("random trace ID unavailable, using clock", "error", err)
		id = uuid.NewSHA1(uuid.NameSpaceOID, []byte(time.Now().Format(time.RFC3339Nano)))
	}
	return hex.EncodeToString(id[:])
}
