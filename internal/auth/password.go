// Package auth provides password hashing and the session token codec.
package auth

import "golang.org/x/crypto/bcrypt"

// bcryptCost is deliberately above the library default to keep offline
// brute force expensive on current hardware.
const bcryptCost = 12

// HashPassword creates a salted bcrypt hash of the password. The salt and
// cost factor are embedded in the result, so verification needs no side
// channel.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// VerifyPassword reports whether the password matches the stored hash.
// Comparison is constant-time inside bcrypt. Malformed hashes verify as
// false rather than returning an error; this runs on attacker-reachable
// input and must never blow up.
func VerifyPassword(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
