package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	pkgcache "github.com/ghuser/stockroom/pkg/cache"
	storedomain "github.com/ghuser/stockroom/services/store/domain"
	"github.com/ghuser/stockroom/services/store/domain/models"
	"github.com/ghuser/stockroom/services/store/domain/repositories"
	domainsvcs "github.com/ghuser/stockroom/services/store/domain/services"
)

// ItemService orchestrates retrieval and full-replacement updates of Items.
// Reads are served from Redis cache when available.
type ItemService struct {
	repo  repositories.ItemRepository
	cache *pkgcache.ItemCache
}

// NewItemService returns an ItemService wired with the given repository and cache.
func NewItemService(repo repositories.ItemRepository, itemCache *pkgcache.ItemCache) *ItemService {
	return &ItemService{repo: repo, cache: itemCache}
}

// Get retrieves an Item using a read-through cache pattern:
//  1. Check Redis cache first.
//  2. On cache miss (or cache error), query Postgres.
//  3. Asynchronously warm the cache with the Postgres result.
func (s *ItemService) Get(ctx context.Context, id uuid.UUID) (*models.Item, error) {
	if s.cache != nil {
		if cached, err := s.cache.Get(ctx, id); err == nil {
			return &models.Item{
				ID:          cached.ID,
				Name:        cached.Name,
				Description: cached.Description,
				Price:       cached.Price,
				Quantity:    cached.Quantity,
				UserID:      cached.UserID,
			}, nil
		} else if !errors.Is(err, redis.Nil) {
			_ = err // cache error; fall through to Postgres
		}
	}

	item, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get item: %w", err)
	}

	if s.cache != nil {
		go func() {
			_ = s.cache.Set(context.Background(), &pkgcache.CachedItem{
				ID:          item.ID,
				Name:        item.Name,
				Description: item.Description,
				Price:       item.Price,
				Quantity:    item.Quantity,
				UserID:      item.UserID,
			})
		}()
	}

	return item, nil
}

// ListByUser returns every item owned by the given user in a stable order.
// Returns ErrUserNotFound when the user does not exist; a user with no
// items yields an empty slice.
func (s *ItemService) ListByUser(ctx context.Context, userID uuid.UUID) ([]*models.Item, error) {
	items, err := s.repo.FindByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	return items, nil
}

// Update replaces every mutable field of a stored item in one transaction.
// Returns ErrInvalidItem for constraint violations, ErrItemNotFound when the
// item is absent, and ErrUserNotFound when the new owner does not exist.
// The cache entry is invalidated after a successful write.
func (s *ItemService) Update(ctx context.Context, item *models.Item) error {
	if err := domainsvcs.ValidateItemForUpdate(item); err != nil {
		return fmt.Errorf("%w: %w", storedomain.ErrInvalidItem, err)
	}

	if err := s.repo.Update(ctx, item); err != nil {
		return fmt.Errorf("update item: %w", err)
	}

	if s.cache != nil {
		_ = s.cache.Delete(context.Background(), item.ID)
	}
	return nil
}
