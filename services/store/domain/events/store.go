package events

import (
	"time"

	"github.com/google/uuid"
)

// Watermill topics published by the store bounded context.
const (
	TopicUserCreated = "store.user.created"
	TopicUserDeleted = "store.user.deleted"
	TopicSeeded      = "store.seeded"
)

// UserCreatedEvent is published after a new User is persisted.
// Consumers subscribe via EventBus.Subscribe(ctx, events.TopicUserCreated).
type UserCreatedEvent struct {
	EventID    uuid.UUID `json:"event_id"` // Unique publish-time identifier for deduplication
	Version    int       `json:"version"`  // Schema version; increment on breaking changes
	UserID     uuid.UUID `json:"user_id"`
	Username   string    `json:"username"`
	OccurredAt time.Time `json:"occurred_at"`
}

// UserDeletedEvent is published after a User and all of its items are
// removed in one transaction. ItemsDeleted carries the cascade count.
type UserDeletedEvent struct {
	EventID      uuid.UUID   `json:"event_id"`
	Version      int         `json:"version"`
	UserID       uuid.UUID   `json:"user_id"`
	Username     string      `json:"username"`
	ItemIDs      []uuid.UUID `json:"item_ids"`
	ItemsDeleted int         `json:"items_deleted"`
	OccurredAt   time.Time   `json:"occurred_at"`
}

// SeededEvent is published after the populate operation replaced the entire
// schema contents with synthetic data.
type SeededEvent struct {
	EventID    uuid.UUID `json:"event_id"`
	Version    int       `json:"version"`
	Users      int       `json:"users"`
	Items      int       `json:"items"`
	OccurredAt time.Time `json:"occurred_at"`
}
