package middleware

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/nordfolio/nordfolio/internal/auth"
)

const sessionTestSecret = "0123456789abcdef0123456789abcdef"

func newSessionTestCodec(t *testing.T) *auth.TokenCodec {
	t.Helper()
	codec, err := auth.NewTokenCodec(sessionTestSecret, true)
	if err != nil {
		t.Fatalf("NewTokenCodec failed: %v", err)
	}
	return codec
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// signExpiredToken builds a token that expired an hour ago, signed with the
// codec's secret.
func signExpiredToken(t *testing.T) string {
	t.Helper()
	claims := auth.Claims{
		UserID: "user-1",
		Email:  "admin@example.com",
		Role:   "admin",
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-2 * time.Hour)),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(sessionTestSecret))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return token
}

func sessionTestHandler(t *testing.T, wantUserID string) http.Handler {
	t.Helper()
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims := auth.SessionFromContext(r.Context())
		if claims == nil {
			t.Error("claims should be in context for authorized requests")
		} else if claims.UserID != wantUserID {
			t.Errorf("UserID = %q, want %q", claims.UserID, wantUserID)
		}
		w.WriteHeader(http.StatusOK)
	})
}

func TestRequireSession_ValidToken(t *testing.T) {
	t.Parallel()

	codec := newSessionTestCodec(t)
	token, err := codec.Issue("user-1", "admin@example.com", "admin")
	if err != nil {
		t.Fatalf("Issue failed: %v", err)
	}

	mw := RequireSession(codec, discardLogger())
	handler := mw(sessionTestHandler(t, "user-1"))

	req := httptest.NewRequest(http.MethodPost, "/api/v1/projects", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: token})
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", rec.Code)
	}
}

func TestRequireSession_Rejections(t *testing.T) {
	t.Parallel()

	codec := newSessionTestCodec(t)
	otherCodec, err := auth.NewTokenCodec("ffffffffffffffffffffffffffffffff", true)
	if err != nil {
		t.Fatalf("NewTokenCodec failed: %v", err)
	}
	foreignToken, err := otherCodec.Issue("user-1", "admin@example.com", "admin")
	if err != nil {
		t.Fatalf("Issue failed: %v", err)
	}

	tests := []struct {
		name   string
		cookie *http.Cookie
	}{
		{"no cookie", nil},
		{"empty value", &http.Cookie{Name: SessionCookieName, Value: ""}},
		{"garbage value", &http.Cookie{Name: SessionCookieName, Value: "not-a-token"}},
		{"wrong secret", &http.Cookie{Name: SessionCookieName, Value: foreignToken}},
		{"expired token", &http.Cookie{Name: SessionCookieName, Value: signExpiredToken(t)}},
		{"wrong cookie name", &http.Cookie{Name: "session", Value: "anything"}},
	}

	mw := RequireSession(codec, discardLogger())
	handler := mw(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("handler should not run for unauthorized requests")
	}))

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			req := httptest.NewRequest(http.MethodPost, "/api/v1/projects", nil)
			if tt.cookie != nil {
				req.AddCookie(tt.cookie)
			}
			rec := httptest.NewRecorder()

			handler.ServeHTTP(rec, req)

			if rec.Code != http.StatusUnauthorized {
				t.Errorf("status = %d, want 401", rec.Code)
			}

			// Every failure mode must yield the same opaque body so a
			// caller cannot probe whether a token exists or merely expired.
			body := strings.TrimSpace(rec.Body.String())
			if body != `{"error":"unauthorized"}` {
				t.Errorf("body = %q, want generic unauthorized error", body)
			}
		})
	}
}

func TestCurrentSession_Anonymous(t *testing.T) {
	t.Parallel()

	codec := newSessionTestCodec(t)
	req := httptest.NewRequest(http.MethodGet, "/", nil)

	if claims := CurrentSession(req, codec); claims != nil {
		t.Errorf("Anonymous request should have nil session, got %+v", claims)
	}
}
