package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/ghuser/stockroom/pkg/database"
	storedomain "github.com/ghuser/stockroom/services/store/domain"
	"github.com/ghuser/stockroom/services/store/domain/repositories"
)

// ReportRepository implements repositories.ReportRepository against PostgreSQL.
type ReportRepository struct {
	db *database.Database
}

// NewReportRepository returns a ReportRepository backed by the given database.
func NewReportRepository(db *database.Database) *ReportRepository {
	return &ReportRepository{db: db}
}

// SumPriceByUser verifies the user exists and sums price over its items.
// COALESCE keeps the zero-items case at 0 rather than null.
func (r *ReportRepository) SumPriceByUser(ctx context.Context, userID uuid.UUID) (float64, error) {
	var total float64

	err := r.db.WithTx(ctx, func(tx pgx.Tx) error {
		const userExists = `SELECT EXISTS (SELECT 1 FROM users WHERE id = $1)`
		var exists bool
		if err := tx.QueryRow(ctx, userExists, userID).Scan(&exists); err != nil {
			return fmt.Errorf("check user exists: %w", classify(err))
		}
		if !exists {
			return storedomain.ErrUserNotFound
		}

		const sum = `SELECT COALESCE(SUM(price), 0) FROM items WHERE user_id = $1`
		if err := tx.QueryRow(ctx, sum, userID).Scan(&total); err != nil {
			return fmt.Errorf("sum item prices: %w", classify(err))
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return total, nil
}

// TopSpenders returns up to limit (username, total price) rows ordered by
// total descending. Username ascending breaks ties so repeated calls over
// unchanged data return the same order.
func (r *ReportRepository) TopSpenders(ctx context.Context, limit int) ([]repositories.SpendTotal, error) {
	const q = `
SELECT u.username, SUM(i.price) AS total_price
FROM items i
JOIN users u ON i.user_id = u.id
GROUP BY u.username
ORDER BY total_price DESC, u.username ASC
LIMIT $1`

	rows, err := r.db.Pool().Query(ctx, q, limit)
	if err != nil {
		return nil, fmt.Errorf("query top spenders: %w", classify(err))
	}
	defer rows.Close()

	totals := make([]repositories.SpendTotal, 0, limit)
	for rows.Next() {
		var t repositories.SpendTotal
		if err := rows.Scan(&t.Username, &t.TotalPrice); err != nil {
			return nil, fmt.Errorf("scan spend total: %w", err)
		}
		totals = append(totals, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate top spenders: %w", classify(err))
	}
	return totals, nil
}
