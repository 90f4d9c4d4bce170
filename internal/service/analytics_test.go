package service

import (
	"context"
	"strings"
	"testing"

	"github.com/nordfolio/nordfolio/internal/model"
)

type fakeAnalyticsStore struct {
	events    []*model.AnalyticsEvent
	lastLimit int
}

func (f *fakeAnalyticsStore) CreateEvent(_ context.Context, e *model.AnalyticsEvent) error {
	f.events = append(f.events, e)
	return nil
}

func (f *fakeAnalyticsStore) ListEvents(_ context.Context, limit int) ([]*model.AnalyticsEvent, error) {
	f.lastLimit = limit
	return f.events, nil
}

func TestAnalyticsRecord_Defaults(t *testing.T) {
	t.Parallel()

	store := &fakeAnalyticsStore{}
	svc := NewAnalytics(store)

	err := svc.Record(context.Background(), RecordInput{Page: "/", IP: "203.0.113.9", UserAgent: "test"})
	if err != nil {
		t.Fatalf("Record failed: %v", err)
	}

	if len(store.events) != 1 {
		t.Fatalf("events = %d, want 1", len(store.events))
	}
	e := store.events[0]
	if e.Event != "pageview" {
		t.Errorf("Event = %q, want pageview default", e.Event)
	}
	if e.ID == "" || e.CreatedAt.IsZero() {
		t.Error("Record should assign ID and timestamp")
	}
}

func TestAnalyticsRecord_EmptyPageDropped(t *testing.T) {
	t.Parallel()

	store := &fakeAnalyticsStore{}
	svc := NewAnalytics(store)

	// The beacon is fire-and-forget; a useless event is dropped, not an error.
	if err := svc.Record(context.Background(), RecordInput{Page: "   "}); err != nil {
		t.Fatalf("Record failed: %v", err)
	}
	if len(store.events) != 0 {
		t.Error("event without a page should be dropped")
	}
}

func TestAnalyticsRecord_TruncatesData(t *testing.T) {
	t.Parallel()

	store := &fakeAnalyticsStore{}
	svc := NewAnalytics(store)

	err := svc.Record(context.Background(), RecordInput{
		Page: "/",
		Data: strings.Repeat("x", 5000),
	})
	if err != nil {
		t.Fatalf("Record failed: %v", err)
	}
	if got := len(store.events[0].Data); got != 2048 {
		t.Errorf("data length = %d, want truncation to 2048", got)
	}
}

func TestAnalyticsList_ClampsLimit(t *testing.T) {
	t.Parallel()

	store := &fakeAnalyticsStore{}
	svc := NewAnalytics(store)
	ctx := context.Background()

	tests := []struct {
		limit int
		want  int
	}{
		{0, 100},
		{-5, 100},
		{50, 50},
		{9999, 500},
	}

	for _, tt := range tests {
		if _, err := svc.List(ctx, tt.limit); err != nil {
			t.Fatalf("List failed: %v", err)
		}
		if store.lastLimit != tt.want {
			t.Errorf("List(%d) passed limit %d, want %d", tt.limit, store.lastLimit, tt.want)
		}
	}
}
