package handler

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/nordfolio/nordfolio/internal/auth"
	"github.com/nordfolio/nordfolio/internal/middleware"
	"github.com/nordfolio/nordfolio/internal/model"
	"github.com/nordfolio/nordfolio/internal/repository"
)

// dummyHash keeps login timing comparable whether or not the email exists.
const dummyHash = "$2a$12$R9h/cIPz0gi.URNNX3kh2OPST9/PgBkqquzi.Ss7KIUgO2t0jWMUW"

// UserStore is the credential lookup contract used by the login path.
type UserStore interface {
	GetUserByEmail(ctx context.Context, email string) (*model.User, error)
}

// AuthHandler handles login, logout, and session introspection.
type AuthHandler struct {
	users  UserStore
	codec  *auth.TokenCodec
	logger *slog.Logger
	// secureCookies marks the session cookie Secure; disabled only in
	// local development over plain HTTP.
	secureCookies bool
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(users UserStore, codec *auth.TokenCodec, secureCookies bool, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		users:         users,
		codec:         codec,
		logger:        logger,
		secureCookies: secureCookies,
	}
}

// LoginRequest is the login payload.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login handles POST /api/v1/auth/login.
// On success it sets the session cookie; on failure it returns a generic
// 401 that does not reveal whether the email exists.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Email == "" || req.Password == "" {
		writeError(w, http.StatusBadRequest, "email and password are required")
		return
	}

	user, err := h.users.GetUserByEmail(r.Context(), req.Email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			// Burn a verify anyway so unknown emails cost the same.
			auth.VerifyPassword(req.Password, dummyHash)
			h.logger.Warn("login failed",
				slog.String("reason", "unknown_email"),
				slog.String("ip", r.RemoteAddr),
				slog.String("request_id", middleware.GetRequestID(r.Context())),
			)
			writeError(w, http.StatusUnauthorized, "invalid credentials")
			return
		}
		h.logger.Error("login lookup failed", "error", err)
		writeError(w, http.StatusInternalServerError, "an internal error occurred")
		return
	}

	if !auth.VerifyPassword(req.Password, user.PasswordHash) {
		h.logger.Warn("login failed",
			slog.String("reason", "bad_password"),
			slog.String("user_id", user.ID),
			slog.String("ip", r.RemoteAddr),
			slog.String("request_id", middleware.GetRequestID(r.Context())),
		)
		writeError(w, http.StatusUnauthorized, "invalid credentials")
		return
	}

	token, err := h.codec.Issue(user.ID, user.Email, user.Role)
	if err != nil {
		h.logger.Error("token issue failed", "error", err)
		writeError(w, http.StatusInternalServerError, "an internal error occurred")
		return
	}

	http.SetCookie(w, h.sessionCookie(token, int(h.codec.TTL().Seconds())))

	h.logger.Info("login succeeded",
		slog.String("user_id", user.ID),
		slog.String("request_id", middleware.GetRequestID(r.Context())),
	)

	writeJSON(w, http.StatusOK, map[string]any{"ok": true, "user": user})
}

// Logout handles POST /api/v1/auth/logout.
// Sessions are stateless, so logout is purely deleting the client cookie;
// an already-captured token stays valid until its natural expiry.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, h.sessionCookie("", -1))
	writeJSON(w, http.StatusOK, map[string]any{"ok": true})
}

// Me handles GET /api/v1/auth/me. Requires a valid session.
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	claims := auth.SessionFromContext(r.Context())
	if claims == nil {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{
		"userId": claims.UserID,
		"email":  claims.Email,
		"role":   claims.Role,
	})
}

func (h *AuthHandler) sessionCookie(value string, maxAge int) *http.Cookie {
	return &http.Cookie{
		Name:     middleware.SessionCookieName,
		Value:    value,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   h.secureCookies,
		SameSite: http.SameSiteLaxMode,
	}
}
