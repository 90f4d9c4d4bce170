package auth

import "context"

// contextKey is a custom type for context keys to avoid collisions.
type contextKey string

// sessionContextKey is the context key for storing session claims.
const sessionContextKey contextKey = "session"

// ContextWithSession adds verified session claims to the context.
func ContextWithSession(ctx context.Context, claims *Claims) context.Context {
	return context.WithValue(ctx, sessionContextKey, claims)
}

// SessionFromContext retrieves session claims from the context.
// Returns nil for anonymous requests.
func SessionFromContext(ctx context.Context) *Claims {
	claims, ok := ctx.Value(sessionContextKey).(*Claims)
	if !ok {
		return nil
	}
	return claims
}
