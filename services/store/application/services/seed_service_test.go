package services

import (
	"context"
	"errors"
	"testing"

	storedomain "github.com/ghuser/stockroom/services/store/domain"
	"github.com/ghuser/stockroom/services/store/domain/models"
)

type stubSeedRepo struct {
	users      []*models.User
	items      []*models.Item
	replaceErr error
}

func (s *stubSeedRepo) Replace(_ context.Context, users []*models.User, items []*models.Item) error {
	s.users = users
	s.items = items
	return s.replaceErr
}

func (s *stubSeedRepo) Counts(_ context.Context) (int64, int64, error) {
	return int64(len(s.users)), int64(len(s.items)), nil
}

func TestSeedService_Populate(t *testing.T) {
	repo := &stubSeedRepo{}
	svc := NewSeedService(repo, nil, nil, testLogger())

	users, items, err := svc.Populate(context.Background(), 50, 200)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if users != 50 || items != 200 {
		t.Fatalf("unexpected counts: users=%d items=%d", users, items)
	}
	if len(repo.users) != 50 || len(repo.items) != 200 {
		t.Fatalf("repository received users=%d items=%d", len(repo.users), len(repo.items))
	}
}

func TestSeedService_Populate_UsernamesUnique(t *testing.T) {
	repo := &stubSeedRepo{}
	svc := NewSeedService(repo, nil, nil, testLogger())

	if _, _, err := svc.Populate(context.Background(), 300, 300); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	seen := make(map[string]struct{}, len(repo.users))
	for _, u := range repo.users {
		name := u.Username.String()
		if _, dup := seen[name]; dup {
			t.Fatalf("duplicate username generated: %q", name)
		}
		seen[name] = struct{}{}
	}
}

func TestSeedService_Populate_ItemBounds(t *testing.T) {
	repo := &stubSeedRepo{}
	svc := NewSeedService(repo, nil, nil, testLogger())

	if _, _, err := svc.Populate(context.Background(), 10, 500); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	owners := make(map[string]struct{}, len(repo.users))
	for _, u := range repo.users {
		owners[u.ID.String()] = struct{}{}
	}

	for _, item := range repo.items {
		if item.Price < 1 || item.Price > 1000 {
			t.Fatalf("price out of range: %v", item.Price)
		}
		if item.Quantity < 1 || item.Quantity > 100 {
			t.Fatalf("quantity out of range: %d", item.Quantity)
		}
		if item.Name == "" {
			t.Fatal("empty item name")
		}
		if len(item.Description) > maxDescriptionLen {
			t.Fatalf("description too long: %d chars", len(item.Description))
		}
		if _, ok := owners[item.UserID.String()]; !ok {
			t.Fatalf("item owned by unknown user %v", item.UserID)
		}
	}
}

func TestSeedService_Populate_NonPositiveCounts(t *testing.T) {
	svc := NewSeedService(&stubSeedRepo{}, nil, nil, testLogger())

	if _, _, err := svc.Populate(context.Background(), 0, 100); err == nil {
		t.Error("expected error for zero user count")
	}
	if _, _, err := svc.Populate(context.Background(), 100, -1); err == nil {
		t.Error("expected error for negative item count")
	}
}

func TestSeedService_Populate_ReplaceFails(t *testing.T) {
	repo := &stubSeedRepo{replaceErr: storedomain.ErrStoreUnavailable}
	svc := NewSeedService(repo, nil, nil, testLogger())

	_, _, err := svc.Populate(context.Background(), 5, 5)
	if !errors.Is(err, storedomain.ErrStoreUnavailable) {
		t.Fatalf("expected ErrStoreUnavailable, got %v", err)
	}
}
