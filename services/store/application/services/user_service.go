package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	pkgcache "github.com/ghuser/stockroom/pkg/cache"
	pkgevents "github.com/ghuser/stockroom/pkg/events"
	"github.com/ghuser/stockroom/pkg/logger"
	storedomain "github.com/ghuser/stockroom/services/store/domain"
	domainevents "github.com/ghuser/stockroom/services/store/domain/events"
	"github.com/ghuser/stockroom/services/store/domain/models"
	"github.com/ghuser/stockroom/services/store/domain/repositories"
	domainsvcs "github.com/ghuser/stockroom/services/store/domain/services"
)

// UserService orchestrates user creation, retrieval, and cascade deletion.
// Domain events are published after the owning transaction commits.
// Reads are served from Redis cache when available.
type UserService struct {
	repo      repositories.UserRepository
	userCache *pkgcache.UserCache
	itemCache *pkgcache.ItemCache
	bus       *pkgevents.EventBus
	log       logger.Logger
}

// NewUserService returns a UserService wired with the given repository,
// caches, and event bus. Caches and bus may be nil (disabled).
func NewUserService(
	repo repositories.UserRepository,
	userCache *pkgcache.UserCache,
	itemCache *pkgcache.ItemCache,
	bus *pkgevents.EventBus,
	log logger.Logger,
) *UserService {
	return &UserService{repo: repo, userCache: userCache, itemCache: itemCache, bus: bus, log: log}
}

// Create validates and persists a User, then publishes a UserCreatedEvent.
// Returns ErrInvalidUsername for malformed usernames and ErrUsernameTaken
// when the username is already stored.
func (s *UserService) Create(ctx context.Context, username string) (*models.User, error) {
	name, err := models.NewUsername(username)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", storedomain.ErrInvalidUsername, err)
	}

	user, err := models.NewUser(name)
	if err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}

	if err := domainsvcs.ValidateUserForCreation(user); err != nil {
		return nil, fmt.Errorf("%w: %w", storedomain.ErrInvalidUsername, err)
	}

	if err := s.repo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("save user: %w", err)
	}

	s.publish(ctx, domainevents.TopicUserCreated, domainevents.UserCreatedEvent{
		EventID:    uuid.New(),
		Version:    1,
		UserID:     user.ID,
		Username:   user.Username.String(),
		OccurredAt: time.Now().UTC(),
	})

	return user, nil
}

// Get retrieves a User using a read-through cache pattern:
//  1. Check Redis cache first.
//  2. On cache miss (or cache error), query Postgres.
//  3. Asynchronously warm the cache with the Postgres result.
func (s *UserService) Get(ctx context.Context, id uuid.UUID) (*models.User, error) {
	if s.userCache != nil {
		if cached, err := s.userCache.Get(ctx, id); err == nil {
			return &models.User{
				ID:       cached.ID,
				Username: models.Username(cached.Username),
			}, nil
		} else if !errors.Is(err, redis.Nil) {
			s.log.WarnContext(ctx, "user cache read failed", "user_id", id, "error", err)
		}
	}

	user, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}

	if s.userCache != nil {
		go func() {
			_ = s.userCache.Set(context.Background(), &pkgcache.CachedUser{
				ID:       user.ID,
				Username: user.Username.String(),
			})
		}()
	}

	return user, nil
}

// Delete removes the user and every item it owns in one transaction, then
// invalidates the affected cache entries and publishes a UserDeletedEvent.
// Returns ErrUserNotFound if no matching user exists.
func (s *UserService) Delete(ctx context.Context, id uuid.UUID) (*repositories.DeletedUser, error) {
	deleted, err := s.repo.DeleteCascade(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("delete user: %w", err)
	}

	if s.userCache != nil {
		_ = s.userCache.Delete(context.Background(), id)
	}
	if s.itemCache != nil {
		for _, itemID := range deleted.ItemIDs {
			_ = s.itemCache.Delete(context.Background(), itemID)
		}
	}

	s.publish(ctx, domainevents.TopicUserDeleted, domainevents.UserDeletedEvent{
		EventID:      uuid.New(),
		Version:      1,
		UserID:       id,
		Username:     deleted.Username,
		ItemIDs:      deleted.ItemIDs,
		ItemsDeleted: deleted.ItemsDeleted,
		OccurredAt:   time.Now().UTC(),
	})

	return deleted, nil
}

// publish marshals and publishes a domain event. Publish failures are logged,
// never surfaced: the database write has already committed.
func (s *UserService) publish(ctx context.Context, topic string, event any) {
	if s.bus == nil {
		return
	}
	payload, err := json.Marshal(event)
	if err != nil {
		s.log.ErrorContext(ctx, "marshal event", "topic", topic, "error", err)
		return
	}
	msg := message.NewMessage(watermill.NewUUID(), payload)
	msg.Metadata.Set("event_version", "1")
	if err := s.bus.Publish(ctx, topic, msg); err != nil {
		s.log.ErrorContext(ctx, "publish event", "topic", topic, "error", err)
	}
}
