package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/ghuser/stockroom/pkg/database"
	storedomain "github.com/ghuser/stockroom/services/store/domain"
	"github.com/ghuser/stockroom/services/store/domain/models"
	"github.com/ghuser/stockroom/services/store/domain/repositories"
)

// UserRepository implements repositories.UserRepository against PostgreSQL.
type UserRepository struct {
	db *database.Database
}

// NewUserRepository returns a UserRepository backed by the given database.
func NewUserRepository(db *database.Database) *UserRepository {
	return &UserRepository{db: db}
}

// Create persists a new User. Returns ErrUsernameTaken on unique constraint violations.
func (r *UserRepository) Create(ctx context.Context, user *models.User) error {
	const q = `INSERT INTO users (id, username) VALUES ($1, $2)`
	if _, err := r.db.Pool().Exec(ctx, q, user.ID, user.Username.String()); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == codeUniqueViolation {
			return storedomain.ErrUsernameTaken
		}
		return fmt.Errorf("insert user: %w", classify(err))
	}
	return nil
}

// GetByID retrieves a User by ID. Returns ErrUserNotFound if not found.
func (r *UserRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	const q = `SELECT id, username FROM users WHERE id = $1`
	var (
		u        models.User
		username string
	)
	if err := r.db.Pool().QueryRow(ctx, q, id).Scan(&u.ID, &username); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, storedomain.ErrUserNotFound
		}
		return nil, fmt.Errorf("query user: %w", classify(err))
	}
	u.Username = models.Username(username)
	return &u, nil
}

// Exists reports whether a user with the given ID exists.
func (r *UserRepository) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	const q = `SELECT EXISTS (SELECT 1 FROM users WHERE id = $1)`
	var exists bool
	if err := r.db.Pool().QueryRow(ctx, q, id).Scan(&exists); err != nil {
		return false, fmt.Errorf("check user exists: %w", classify(err))
	}
	return exists, nil
}

// DeleteCascade removes the user and all of its items in one transaction.
// Either N items + 1 user rows go, or zero rows change.
func (r *UserRepository) DeleteCascade(ctx context.Context, id uuid.UUID) (*repositories.DeletedUser, error) {
	var out repositories.DeletedUser

	err := r.db.WithTx(ctx, func(tx pgx.Tx) error {
		const lockUser = `SELECT username FROM users WHERE id = $1 FOR UPDATE`
		if err := tx.QueryRow(ctx, lockUser, id).Scan(&out.Username); err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return storedomain.ErrUserNotFound
			}
			return fmt.Errorf("lock user: %w", classify(err))
		}

		const listItems = `SELECT id FROM items WHERE user_id = $1 ORDER BY id`
		rows, err := tx.Query(ctx, listItems, id)
		if err != nil {
			return fmt.Errorf("list user items: %w", classify(err))
		}
		for rows.Next() {
			var itemID uuid.UUID
			if err := rows.Scan(&itemID); err != nil {
				rows.Close()
				return fmt.Errorf("scan item id: %w", err)
			}
			out.ItemIDs = append(out.ItemIDs, itemID)
		}
		rows.Close()
		if err := rows.Err(); err != nil {
			return fmt.Errorf("iterate item ids: %w", classify(err))
		}

		const deleteItems = `DELETE FROM items WHERE user_id = $1`
		tag, err := tx.Exec(ctx, deleteItems, id)
		if err != nil {
			return fmt.Errorf("delete user items: %w", classify(err))
		}
		out.ItemsDeleted = int(tag.RowsAffected())

		const deleteUser = `DELETE FROM users WHERE id = $1`
		if _, err := tx.Exec(ctx, deleteUser, id); err != nil {
			return fmt.Errorf("delete user: %w", classify(err))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}
