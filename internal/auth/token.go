package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenTTL is the fixed expiry horizon for session tokens. There is no
// server-side session table: a token is valid until it expires, and logout
// only deletes the client cookie. Revocation before natural expiry is a
// known, accepted limitation of the stateless design.
const TokenTTL = 7 * 24 * time.Hour

// minSecretLen is the minimum signing secret length accepted in production.
const minSecretLen = 32

// ErrWeakSecret indicates the signing secret is unset or too short.
// Fatal at startup; the codec must never fall back to a guessable default.
var ErrWeakSecret = errors.New("session secret is unset or too short")

// Claims are the identity assertions embedded in a session token.
type Claims struct {
	UserID string `json:"userId"`
	Email  string `json:"email"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// TokenCodec signs and verifies stateless session tokens (HS256 JWT).
type TokenCodec struct {
	secret []byte
	ttl    time.Duration
}

// NewTokenCodec creates a codec with the given signing secret.
// Returns ErrWeakSecret if the secret is empty, or too short when strict
// (production) validation is requested.
func NewTokenCodec(secret string, strict bool) (*TokenCodec, error) {
	if secret == "" {
		return nil, ErrWeakSecret
	}
	if strict && len(secret) < minSecretLen {
		return nil, fmt.Errorf("%w: need at least %d bytes", ErrWeakSecret, minSecretLen)
	}

	return &TokenCodec{
		secret: []byte(secret),
		ttl:    TokenTTL,
	}, nil
}

// Issue serializes the identity into a signed, expiring token string.
func (c *TokenCodec) Issue(userID, email, role string) (string, error) {
	now := time.Now()
	claims := Claims{
		UserID: userID,
		Email:  email,
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(c.ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(c.secret)
}

// Verify checks signature and expiry and returns the embedded claims.
// Any malformed, tampered, or expired token yields (nil, false). This
// boundary runs on every request with attacker-supplied input, so it
// reports invalidity instead of returning errors.
func (c *TokenCodec) Verify(tokenString string) (*Claims, bool) {
	if tokenString == "" {
		return nil, false
	}

	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return c.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, false
	}
	if claims.UserID == "" {
		return nil, false
	}

	return claims, true
}

// TTL returns the token lifetime, used to size the session cookie Max-Age.
func (c *TokenCodec) TTL() time.Duration {
	return c.ttl
}
