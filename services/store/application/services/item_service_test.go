package services

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	storedomain "github.com/ghuser/stockroom/services/store/domain"
	"github.com/ghuser/stockroom/services/store/domain/models"
)

type stubItemRepo struct {
	item      *models.Item
	getErr    error
	items     []*models.Item
	findErr   error
	updated   *models.Item
	updateErr error
}

func (s *stubItemRepo) GetByID(_ context.Context, _ uuid.UUID) (*models.Item, error) {
	return s.item, s.getErr
}

func (s *stubItemRepo) FindByUserID(_ context.Context, _ uuid.UUID) ([]*models.Item, error) {
	return s.items, s.findErr
}

func (s *stubItemRepo) Update(_ context.Context, item *models.Item) error {
	s.updated = item
	return s.updateErr
}

func validItem() *models.Item {
	return &models.Item{
		ID: uuid.New(), Name: "kettle", Description: "copper",
		Price: 129.99, Quantity: 3, UserID: uuid.New(),
	}
}

func TestItemService_Get(t *testing.T) {
	want := validItem()
	svc := NewItemService(&stubItemRepo{item: want}, nil)

	got, err := svc.Get(context.Background(), want.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != want {
		t.Errorf("got %+v, want %+v", got, want)
	}
}

func TestItemService_Get_NotFound(t *testing.T) {
	svc := NewItemService(&stubItemRepo{getErr: storedomain.ErrItemNotFound}, nil)

	_, err := svc.Get(context.Background(), uuid.New())
	if !errors.Is(err, storedomain.ErrItemNotFound) {
		t.Fatalf("expected ErrItemNotFound, got %v", err)
	}
}

func TestItemService_ListByUser(t *testing.T) {
	items := []*models.Item{validItem(), validItem()}
	svc := NewItemService(&stubItemRepo{items: items}, nil)

	got, err := svc.ListByUser(context.Background(), uuid.New())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 2 {
		t.Errorf("expected 2 items, got %d", len(got))
	}
}

func TestItemService_ListByUser_UserMissing(t *testing.T) {
	svc := NewItemService(&stubItemRepo{findErr: storedomain.ErrUserNotFound}, nil)

	_, err := svc.ListByUser(context.Background(), uuid.New())
	if !errors.Is(err, storedomain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestItemService_Update(t *testing.T) {
	repo := &stubItemRepo{}
	svc := NewItemService(repo, nil)
	item := validItem()

	if err := svc.Update(context.Background(), item); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if repo.updated != item {
		t.Error("repository did not receive the item")
	}
}

func TestItemService_Update_InvalidFields(t *testing.T) {
	tests := []struct {
		name string
		item *models.Item
	}{
		{"empty name", &models.Item{ID: uuid.New(), Price: 1, Quantity: 1, UserID: uuid.New()}},
		{"negative price", &models.Item{ID: uuid.New(), Name: "kettle", Price: -1, Quantity: 1, UserID: uuid.New()}},
		{"negative quantity", &models.Item{ID: uuid.New(), Name: "kettle", Price: 1, Quantity: -1, UserID: uuid.New()}},
		{"missing owner", &models.Item{ID: uuid.New(), Name: "kettle", Price: 1, Quantity: 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &stubItemRepo{}
			svc := NewItemService(repo, nil)

			err := svc.Update(context.Background(), tt.item)
			if !errors.Is(err, storedomain.ErrInvalidItem) {
				t.Fatalf("expected ErrInvalidItem, got %v", err)
			}
			if repo.updated != nil {
				t.Error("repository should not have been called")
			}
		})
	}
}

func TestItemService_Update_TargetMissing(t *testing.T) {
	svc := NewItemService(&stubItemRepo{updateErr: storedomain.ErrItemNotFound}, nil)

	err := svc.Update(context.Background(), validItem())
	if !errors.Is(err, storedomain.ErrItemNotFound) {
		t.Fatalf("expected ErrItemNotFound, got %v", err)
	}
}

func TestItemService_Update_NewOwnerMissing(t *testing.T) {
	svc := NewItemService(&stubItemRepo{updateErr: storedomain.ErrUserNotFound}, nil)

	err := svc.Update(context.Background(), validItem())
	if !errors.Is(err, storedomain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}
