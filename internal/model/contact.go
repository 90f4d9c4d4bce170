package model

import "time"

// ContactSubmission is an append-only inbox record created by the public
// contact form. Content is never edited; only the read/archived flags flip,
// and records can be deleted.
type ContactSubmission struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Subject   string    `json:"subject,omitempty"`
	Message   string    `json:"message"`
	Read      bool      `json:"read"`
	Archived  bool      `json:"archived"`
	CreatedAt time.Time `json:"createdAt"`
}
