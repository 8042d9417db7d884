package repositories

import (
	"context"

	"github.com/google/uuid"

	"github.com/ghuser/stockroom/services/store/domain/models"
)

// SpendTotal is one row of the top-spenders report.
type SpendTotal struct {
	Username   string
	TotalPrice float64
}

// ReportRepository serves the aggregation endpoints.
type ReportRepository interface {
	// SumPriceByUser verifies the user exists and returns the sum of price
	// over its items. A user with no items yields 0, never null.
	// Returns ErrUserNotFound when the user is absent.
	SumPriceByUser(ctx context.Context, userID uuid.UUID) (float64, error)

	// TopSpenders joins items to users, groups by username and sums price,
	// ordered by total descending with username ascending as tie-break,
	// truncated to limit rows.
	TopSpenders(ctx context.Context, limit int) ([]SpendTotal, error)
}

// SeedRepository backs the destructive populate operation.
type SeedRepository interface {
	// Replace drops and recreates both entity tables, then bulk-inserts the
	// given users and items, all within a single transaction.
	Replace(ctx context.Context, users []*models.User, items []*models.Item) error

	// Counts returns the number of stored users and items.
	Counts(ctx context.Context) (users int64, items int64, err error)
}
