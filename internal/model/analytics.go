package model

import "time"

// AnalyticsEvent is a write-once page view or interaction record.
type AnalyticsEvent struct {
	ID        string    `json:"id"`
	Page      string    `json:"page"`
	Event     string    `json:"event"`
	Data      string    `json:"data,omitempty"`
	IP        string    `json:"ip,omitempty"`
	UserAgent string    `json:"userAgent,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}
