package services

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	storedomain "github.com/ghuser/stockroom/services/store/domain"
	"github.com/ghuser/stockroom/services/store/domain/repositories"
)

type stubReportRepo struct {
	total      float64
	sumErr     error
	rows       []repositories.SpendTotal
	topErr     error
	gotLimit   int
	gotSumUser uuid.UUID
}

func (s *stubReportRepo) SumPriceByUser(_ context.Context, userID uuid.UUID) (float64, error) {
	s.gotSumUser = userID
	return s.total, s.sumErr
}

func (s *stubReportRepo) TopSpenders(_ context.Context, limit int) ([]repositories.SpendTotal, error) {
	s.gotLimit = limit
	return s.rows, s.topErr
}

func TestReportService_SumPriceByUser(t *testing.T) {
	repo := &stubReportRepo{total: 389.97}
	svc := NewReportService(repo)

	id := uuid.New()
	total, err := svc.SumPriceByUser(context.Background(), id)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if total != 389.97 {
		t.Errorf("unexpected total: %v", total)
	}
	if repo.gotSumUser != id {
		t.Errorf("repository received %v, want %v", repo.gotSumUser, id)
	}
}

func TestReportService_SumPriceByUser_UserMissing(t *testing.T) {
	svc := NewReportService(&stubReportRepo{sumErr: storedomain.ErrUserNotFound})

	_, err := svc.SumPriceByUser(context.Background(), uuid.New())
	if !errors.Is(err, storedomain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestReportService_TopSpenders_UsesLimit(t *testing.T) {
	repo := &stubReportRepo{rows: []repositories.SpendTotal{
		{Username: "ada", TotalPrice: 100},
	}}
	svc := NewReportService(repo)

	rows, err := svc.TopSpenders(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if repo.gotLimit != TopSpendersLimit {
		t.Errorf("expected limit %d, got %d", TopSpendersLimit, repo.gotLimit)
	}
	if len(rows) != 1 || rows[0].Username != "ada" {
		t.Errorf("unexpected rows: %+v", rows)
	}
}

func TestReportService_TopSpenders_Unavailable(t *testing.T) {
	svc := NewReportService(&stubReportRepo{topErr: storedomain.ErrStoreUnavailable})

	_, err := svc.TopSpenders(context.Background())
	if !errors.Is(err, storedomain.ErrStoreUnavailable) {
		t.Fatalf("expected ErrStoreUnavailable, got %v", err)
	}
}
