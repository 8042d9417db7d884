package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/ghuser/stockroom/pkg/database"
	"github.com/ghuser/stockroom/services/store/domain/models"
)

// Schema statements for the destructive reset. The populate operation fully
// replaces prior schema contents, so tables are dropped and recreated rather
// than truncated. Kept in sync with migrations/store.
const (
	dropItemsTable = `DROP TABLE IF EXISTS items`
	dropUsersTable = `DROP TABLE IF EXISTS users`

	createUsersTable = `
CREATE TABLE users (
    id       UUID PRIMARY KEY,
    username TEXT NOT NULL UNIQUE
)`

	createItemsTable = `
CREATE TABLE items (
    id          UUID PRIMARY KEY,
    name        TEXT NOT NULL,
    description TEXT,
    price       DOUBLE PRECISION NOT NULL CHECK (price >= 0),
    quantity    INTEGER NOT NULL CHECK (quantity >= 0),
    user_id     UUID NOT NULL REFERENCES users (id)
)`

	createItemsUserIndex = `CREATE INDEX items_user_id_idx ON items (user_id)`
)

// SeedRepository implements repositories.SeedRepository against PostgreSQL.
type SeedRepository struct {
	db *database.Database
}

// NewSeedRepository returns a SeedRepository backed by the given database.
func NewSeedRepository(db *database.Database) *SeedRepository {
	return &SeedRepository{db: db}
}

// Replace drops and recreates both entity tables, then bulk-loads the given
// rows with COPY, all inside one transaction, so a failure at any point
// leaves the previous contents in place.
func (r *SeedRepository) Replace(ctx context.Context, users []*models.User, items []*models.Item) error {
	return r.db.WithTx(ctx, func(tx pgx.Tx) error {
		for _, stmt := range []string{
			dropItemsTable, dropUsersTable,
			createUsersTable, createItemsTable, createItemsUserIndex,
		} {
			if _, err := tx.Exec(ctx, stmt); err != nil {
				return fmt.Errorf("reset schema: %w", classify(err))
			}
		}

		if _, err := tx.CopyFrom(ctx,
			pgx.Identifier{"users"},
			[]string{"id", "username"},
			pgx.CopyFromSlice(len(users), func(i int) ([]any, error) {
				return []any{users[i].ID, users[i].Username.String()}, nil
			}),
		); err != nil {
			return fmt.Errorf("copy users: %w", classify(err))
		}

		if _, err := tx.CopyFrom(ctx,
			pgx.Identifier{"items"},
			[]string{"id", "name", "description", "price", "quantity", "user_id"},
			pgx.CopyFromSlice(len(items), func(i int) ([]any, error) {
				it := items[i]
				return []any{it.ID, it.Name, it.Description, it.Price, it.Quantity, it.UserID}, nil
			}),
		); err != nil {
			return fmt.Errorf("copy items: %w", classify(err))
		}

		return nil
	})
}

// Counts returns the number of stored users and items.
func (r *SeedRepository) Counts(ctx context.Context) (int64, int64, error) {
	var users, items int64
	if err := r.db.Pool().QueryRow(ctx, `SELECT COUNT(*) FROM users`).Scan(&users); err != nil {
		return 0, 0, fmt.Errorf("count users: %w", classify(err))
	}
	if err := r.db.Pool().QueryRow(ctx, `SELECT COUNT(*) FROM items`).Scan(&items); err != nil {
		return 0, 0, fmt.Errorf("count items: %w", classify(err))
	}
	return users, items, nil
}
