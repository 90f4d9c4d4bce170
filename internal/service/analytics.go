package service

import (
	"context"
	"strings"
	"time"

	"github.com/nordfolio/nordfolio/internal/model"
)

// Analytics event limits.
const (
	defaultEvent     = "pageview"
	maxEventDataLen  = 2048
	defaultListLimit = 100
	maxListLimit     = 500
)

// AnalyticsStore is the persistence contract for analytics events.
type AnalyticsStore interface {
	CreateEvent(ctx context.Context, e *model.AnalyticsEvent) error
	ListEvents(ctx context.Context, limit int) ([]*model.AnalyticsEvent, error)
}

// Analytics appends write-once page events and serves the admin view.
type Analytics struct {
	store AnalyticsStore
}

// NewAnalytics creates the analytics service.
func NewAnalytics(store AnalyticsStore) *Analytics {
	return &Analytics{store: store}
}

// RecordInput is the public analytics beacon payload plus request metadata.
type RecordInput struct {
	Page      string
	Event     string
	Data      string
	IP        string
	UserAgent string
}

// Record appends an event. Events with no page are dropped silently;
// the beacon endpoint is fire-and-forget.
func (s *Analytics) Record(ctx context.Context, input RecordInput) error {
	page := strings.TrimSpace(input.Page)
	if page == "" {
		return nil
	}

	event := input.Event
	if event == "" {
		event = defaultEvent
	}

	data := input.Data
	if len(data) > maxEventDataLen {
		data = data[:maxEventDataLen]
	}

	record := &model.AnalyticsEvent{
		ID:        generateULID(),
		Page:      page,
		Event:     event,
		Data:      data,
		IP:        input.IP,
		UserAgent: input.UserAgent,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.store.CreateEvent(ctx, record); err != nil {
		return wrapStoreErr("create event", err)
	}

	return nil
}

// List returns recent events, newest first. Limit is clamped to sane bounds.
func (s *Analytics) List(ctx context.Context, limit int) ([]*model.AnalyticsEvent, error) {
	if limit <= 0 {
		limit = defaultListLimit
	}
	if limit > maxListLimit {
		limit = maxListLimit
	}

	events, err := s.store.ListEvents(ctx, limit)
	if err != nil {
		return nil, wrapStoreErr("list events", err)
	}

	return events, nil
}
