package middleware

import (
	"log/slog"
	"net/http"

	"github.com/nordfolio/nordfolio/internal/auth"
)

// SessionCookieName is the credential carrier: a single HttpOnly cookie
// holding the signed session token.
const SessionCookieName = "nf_session"

// CurrentSession resolves the caller's session from the request cookie.
// Returns nil for anonymous requests: missing cookie, bad signature, or
// expired token all look the same from here. Never fails on attacker input.
func CurrentSession(r *http.Request, codec *auth.TokenCodec) *auth.Claims {
	cookie, err := r.Cookie(SessionCookieName)
	if err != nil {
		return nil
	}

	claims, ok := codec.Verify(cookie.Value)
	if !ok {
		return nil
	}

	return claims
}

// RequireSession returns a middleware that gates protected mutation
// handlers. Requests without a valid session get a generic 401; the
// response never distinguishes missing from expired or tampered tokens.
// This binary check is the only authorization gate - there are no
// per-entity permissions.
func RequireSession(codec *auth.TokenCodec, logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims := CurrentSession(r, codec)
			if claims == nil {
				logger.Warn("unauthorized request",
					slog.String("ip", r.RemoteAddr),
					slog.String("endpoint", r.Method+" "+r.URL.Path),
					slog.String("request_id", GetRequestID(r.Context())),
				)
				writeUnauthorized(w)
				return
			}

			ctx := auth.ContextWithSession(r.Context(), claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// writeUnauthorized writes a 401 response.
// Uses the same message for all auth failures to prevent probing.
func writeUnauthorized(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_, _ = w.Write([]byte(`{"error":"unauthorized"}`))
}
