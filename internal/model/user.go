package model

import "time"

// Admin role. The authorization model is binary: an authenticated admin
// can mutate content, everyone else reads the public rendering.
const RoleAdmin = "admin"

// User is a persisted credential record. Users are created at provisioning
// time by the seed script and never deleted in normal operation.
type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	DisplayName  string    `json:"displayName"`
	Role         string    `json:"role"`
	CreatedAt    time.Time `json:"createdAt"`
}
