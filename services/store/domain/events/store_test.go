package events_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/ghuser/stockroom/services/store/domain/events"
)

func TestUserCreatedEvent_JSONRoundTrip(t *testing.T) {
	original := events.UserCreatedEvent{
		EventID:    uuid.MustParse("550e8400-e29b-41d4-a716-446655440001"),
		Version:    1,
		UserID:     uuid.MustParse("550e8400-e29b-41d4-a716-446655440000"),
		Username:   "marisol_v",
		OccurredAt: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
	}

	data, err := json.Marshal(original)
	if err != nil {
		t.Fatalf("json.Marshal failed: %v", err)
	}

	var decoded events.UserCreatedEvent
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("json.Unmarshal failed: %v", err)
	}

	if decoded.EventID != original.EventID {
		t.Errorf("EventID: got %v, want %v", decoded.EventID, original.EventID)
	}
	if decoded.UserID != original.UserID {
		t.Errorf("UserID: got %v, want %v", decoded.UserID, original.UserID)
	}
	if decoded.Username != original.Username {
		t.Errorf("Username: got %q, want %q", decoded.Username, original.Username)
	}
	if !decoded.OccurredAt.Equal(original.OccurredAt) {
		t.Errorf("OccurredAt: got %v, want %v", decoded.OccurredAt, original.OccurredAt)
	}
}

func TestUserDeletedEvent_JSONFieldNames(t *testing.T) {
	evt := events.UserDeletedEvent{
		EventID:      uuid.New(),
		Version:      1,
		UserID:       uuid.New(),
		Username:     "marisol_v",
		ItemIDs:      []uuid.UUID{uuid.New(), uuid.New()},
		ItemsDeleted: 2,
		OccurredAt:   time.Now().UTC(),
	}

	data, err := json.Marshal(evt)
	if err != nil {
		t.Fatalf("json.Marshal failed: %v", err)
	}

	var raw map[string]interface{}
	if err := json.Unmarshal(data, &raw); err != nil {
		t.Fatalf("unmarshal to map failed: %v", err)
	}

	for _, field := range []string{"event_id", "version", "user_id", "username", "item_ids", "items_deleted", "occurred_at"} {
		if _, ok := raw[field]; !ok {
			t.Errorf("expected JSON field %q not found in: %s", field, data)
		}
	}
}

func TestTopics_Values(t *testing.T) {
	if events.TopicUserCreated != "store.user.created" {
		t.Errorf("expected %q, got %q", "store.user.created", events.TopicUserCreated)
	}
	if events.TopicUserDeleted != "store.user.deleted" {
		t.Errorf("expected %q, got %q", "store.user.deleted", events.TopicUserDeleted)
	}
	if events.TopicSeeded != "store.seeded" {
		t.Errorf("expected %q, got %q", "store.seeded", events.TopicSeeded)
	}
}
