package repositories

import (
	"context"

	"github.com/google/uuid"

	"github.com/ghuser/stockroom/services/store/domain/models"
)

// DeletedUser reports the outcome of a cascade delete.
type DeletedUser struct {
	Username     string
	ItemIDs      []uuid.UUID // ids of the items removed in the same transaction
	ItemsDeleted int
}

// UserRepository is the persistence interface for the User aggregate.
// The domain layer owns this interface; infrastructure implements it.
type UserRepository interface {
	// Create persists a new User.
	// Returns ErrUsernameTaken on unique constraint violations.
	Create(ctx context.Context, user *models.User) error

	// GetByID retrieves a User by ID. Returns ErrUserNotFound if absent.
	GetByID(ctx context.Context, id uuid.UUID) (*models.User, error)

	// Exists reports whether a user with the given ID exists.
	Exists(ctx context.Context, id uuid.UUID) (bool, error)

	// DeleteCascade removes the user and every item it owns within a single
	// transaction: either all rows go or none do. Returns ErrUserNotFound
	// (with nothing deleted) when the user does not exist.
	DeleteCascade(ctx context.Context, id uuid.UUID) (*DeletedUser, error)
}
