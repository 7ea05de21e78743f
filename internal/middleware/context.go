package middleware

import (
	"context"

	"github.com/mmynk/utilityportal/internal/auth"
)

// contextKey is a custom type for context keys to avoid collisions.
type contextKey string

const (
	// identityKey is the context key for the verified caller.
	identityKey contextKey = "identity"
	// userSinkKey points at a string the logging middleware reads after the handler returns.
	userSinkKey contextKey = "user_sink"
)

// WithIdentity returns a copy of ctx carrying id.
func WithIdentity(ctx context.Context, id auth.Identity) context.Context {
	if sink, ok := ctx.Value(userSinkKey).(*string); ok {
		*sink = id.UserID
	}
	return context.WithValue(ctx, identityKey, id)
}

func withUserSink(ctx context.Context, sink *string) context.Context {
	return context.WithValue(ctx, userSinkKey, sink)
}

// IdentityFrom extracts the verified caller from the context.
func IdentityFrom(ctx context.Context) (auth.Identity, bool) {
	id, ok := ctx.Value(identityKey).(auth.Identity)
	return id, ok && id.UserID != ""
}

// GetUserID returns the verified user ID, or empty string if not authenticated.
func GetUserID(ctx context.Context) string {
	id, _ := IdentityFrom(ctx)
	return id.UserID
}
