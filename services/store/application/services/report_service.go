package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/ghuser/stockroom/services/store/domain/repositories"
)

// TopSpendersLimit caps the top-spenders report at ten rows.
const TopSpendersLimit = 10

// ReportService serves the aggregation endpoints.
type ReportService struct {
	repo repositories.ReportRepository
}

// NewReportService returns a ReportService backed by the given repository.
func NewReportService(repo repositories.ReportRepository) *ReportService {
	return &ReportService{repo: repo}
}

// SumPriceByUser returns the sum of item prices for a user. A user with no
// items yields 0. Returns ErrUserNotFound when the user does not exist.
func (s *ReportService) SumPriceByUser(ctx context.Context, userID uuid.UUID) (float64, error) {
	total, err := s.repo.SumPriceByUser(ctx, userID)
	if err != nil {
		return 0, fmt.Errorf("sum item prices: %w", err)
	}
	return total, nil
}

// TopSpenders returns up to TopSpendersLimit users ranked by the total price
// of their items, highest first. Users with no items never appear.
func (s *ReportService) TopSpenders(ctx context.Context) ([]repositories.SpendTotal, error) {
	rows, err := s.repo.TopSpenders(ctx, TopSpendersLimit)
	if err != nil {
		return nil, fmt.Errorf("top spenders: %w", err)
	}
	return rows, nil
}
