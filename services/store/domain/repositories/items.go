package repositories

import (
	"context"

	"github.com/google/uuid"

	"github.com/ghuser/stockroom/services/store/domain/models"
)

// ItemRepository is the persistence interface for Item records.
type ItemRepository interface {
	// GetByID retrieves an Item by ID. Returns ErrItemNotFound if absent.
	GetByID(ctx context.Context, id uuid.UUID) (*models.Item, error)

	// FindByUserID verifies the user exists and returns all items it owns,
	// in a stable order. Returns ErrUserNotFound when the user is absent;
	// a user with no items yields an empty slice.
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]*models.Item, error)

	// Update applies a full replacement of all mutable fields within one
	// transaction, after verifying that the item exists (ErrItemNotFound)
	// and that the new UserID references an existing user (ErrUserNotFound).
	// On any failure the stored row is left untouched.
	Update(ctx context.Context, item *models.Item) error
}
