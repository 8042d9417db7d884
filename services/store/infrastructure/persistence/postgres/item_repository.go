package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/ghuser/stockroom/pkg/database"
	storedomain "github.com/ghuser/stockroom/services/store/domain"
	"github.com/ghuser/stockroom/services/store/domain/models"
)

const itemColumns = `id, name, COALESCE(description, ''), price, quantity, user_id`

// ItemRepository implements repositories.ItemRepository against PostgreSQL.
type ItemRepository struct {
	db *database.Database
}

// NewItemRepository returns an ItemRepository backed by the given database.
func NewItemRepository(db *database.Database) *ItemRepository {
	return &ItemRepository{db: db}
}

// GetByID retrieves an Item by ID. Returns ErrItemNotFound if not found.
func (r *ItemRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Item, error) {
	q := `SELECT ` + itemColumns + ` FROM items WHERE id = $1`
	item, err := scanItem(r.db.Pool().QueryRow(ctx, q, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, storedomain.ErrItemNotFound
		}
		return nil, fmt.Errorf("query item: %w", classify(err))
	}
	return item, nil
}

// FindByUserID verifies the user exists and returns all of its items ordered
// by id, within one transaction so the check and the listing see the same
// snapshot. Returns ErrUserNotFound when the user is absent.
func (r *ItemRepository) FindByUserID(ctx context.Context, userID uuid.UUID) ([]*models.Item, error) {
	items := make([]*models.Item, 0)

	err := r.db.WithTx(ctx, func(tx pgx.Tx) error {
		const userExists = `SELECT EXISTS (SELECT 1 FROM users WHERE id = $1)`
		var exists bool
		if err := tx.QueryRow(ctx, userExists, userID).Scan(&exists); err != nil {
			return fmt.Errorf("check user exists: %w", classify(err))
		}
		if !exists {
			return storedomain.ErrUserNotFound
		}

		q := `SELECT ` + itemColumns + ` FROM items WHERE user_id = $1 ORDER BY id`
		rows, err := tx.Query(ctx, q, userID)
		if err != nil {
			return fmt.Errorf("query items: %w", classify(err))
		}
		defer rows.Close()

		for rows.Next() {
			item, err := scanItem(rows)
			if err != nil {
				return fmt.Errorf("scan item: %w", err)
			}
			items = append(items, item)
		}
		if err := rows.Err(); err != nil {
			return fmt.Errorf("iterate items: %w", classify(err))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return items, nil
}

// Update applies a full replacement of all mutable fields in one transaction.
// The item must exist (ErrItemNotFound) and the new UserID must reference an
// existing user (ErrUserNotFound); on any failure the stored row is unchanged.
func (r *ItemRepository) Update(ctx context.Context, item *models.Item) error {
	return r.db.WithTx(ctx, func(tx pgx.Tx) error {
		const lockItem = `SELECT 1 FROM items WHERE id = $1 FOR UPDATE`
		var one int
		if err := tx.QueryRow(ctx, lockItem, item.ID).Scan(&one); err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return storedomain.ErrItemNotFound
			}
			return fmt.Errorf("lock item: %w", classify(err))
		}

		const userExists = `SELECT EXISTS (SELECT 1 FROM users WHERE id = $1)`
		var exists bool
		if err := tx.QueryRow(ctx, userExists, item.UserID).Scan(&exists); err != nil {
			return fmt.Errorf("check user exists: %w", classify(err))
		}
		if !exists {
			return storedomain.ErrUserNotFound
		}

		const update = `
UPDATE items SET name = $2, description = $3, price = $4, quantity = $5, user_id = $6
WHERE id = $1`
		if _, err := tx.Exec(ctx, update,
			item.ID, item.Name, item.Description, item.Price, item.Quantity, item.UserID,
		); err != nil {
			return fmt.Errorf("update item: %w", classify(err))
		}
		return nil
	})
}

// rowScanner is satisfied by both pgx.Row and pgx.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanItem(row rowScanner) (*models.Item, error) {
	var item models.Item
	if err := row.Scan(
		&item.ID, &item.Name, &item.Description, &item.Price, &item.Quantity, &item.UserID,
	); err != nil {
		return nil, err
	}
	return &item, nil
}
