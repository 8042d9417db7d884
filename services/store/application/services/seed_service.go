package services

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/uuid"

	pkgcache "github.com/ghuser/stockroom/pkg/cache"
	pkgevents "github.com/ghuser/stockroom/pkg/events"
	"github.com/ghuser/stockroom/pkg/logger"
	domainevents "github.com/ghuser/stockroom/services/store/domain/events"
	"github.com/ghuser/stockroom/services/store/domain/models"
	"github.com/ghuser/stockroom/services/store/domain/repositories"
)

const maxDescriptionLen = 200

// SeedService replaces the entire dataset with synthetic users and items.
// This is a destructive operation: both tables are dropped and recreated.
type SeedService struct {
	repo  repositories.SeedRepository
	redis *pkgcache.RedisClient
	bus   *pkgevents.EventBus
	log   logger.Logger
}

// NewSeedService returns a SeedService wired with the given repository,
// Redis client (for cache invalidation), and event bus. Redis and bus may
// be nil (disabled).
func NewSeedService(
	repo repositories.SeedRepository,
	redis *pkgcache.RedisClient,
	bus *pkgevents.EventBus,
	log logger.Logger,
) *SeedService {
	return &SeedService{repo: repo, redis: redis, bus: bus, log: log}
}

// Populate drops and recreates the schema, generates userCount users and
// itemCount items with randomized fields, and bulk-inserts them in a single
// transaction. Cached entities are flushed afterwards so stale reads cannot
// survive the reset. Returns the counts actually inserted.
func (s *SeedService) Populate(ctx context.Context, userCount, itemCount int) (users int, items int, err error) {
	if userCount <= 0 || itemCount <= 0 {
		return 0, 0, fmt.Errorf("user and item counts must be positive")
	}

	userModels := generateUsers(userCount)
	itemModels := generateItems(itemCount, userModels)

	if err := s.repo.Replace(ctx, userModels, itemModels); err != nil {
		return 0, 0, fmt.Errorf("replace dataset: %w", err)
	}

	if s.redis != nil {
		if err := pkgcache.FlushEntities(ctx, s.redis); err != nil {
			s.log.WarnContext(ctx, "flush entity caches failed", "error", err)
		}
	}

	s.publishSeeded(ctx, len(userModels), len(itemModels))

	return len(userModels), len(itemModels), nil
}

// generateUsers produces count users with unique randomized usernames.
// Faker collisions are resolved with a numeric suffix.
func generateUsers(count int) []*models.User {
	users := make([]*models.User, 0, count)
	seen := make(map[string]struct{}, count)
	for i := 0; len(users) < count; i++ {
		name := gofakeit.Username()
		if _, dup := seen[name]; dup {
			name = fmt.Sprintf("%s%d", name, i)
			if _, dup := seen[name]; dup {
				continue
			}
		}
		seen[name] = struct{}{}
		users = append(users, &models.User{
			ID:       uuid.New(),
			Username: models.Username(name),
		})
	}
	return users
}

// generateItems produces count items with randomized fields, each owned by
// a random user from the given slice. Prices are uniform in [1, 1000] with
// two decimal places; quantities are uniform in [1, 100].
func generateItems(count int, users []*models.User) []*models.Item {
	items := make([]*models.Item, 0, count)
	for i := 0; i < count; i++ {
		owner := users[gofakeit.Number(0, len(users)-1)]
		description := gofakeit.Sentence(10)
		if len(description) > maxDescriptionLen {
			description = description[:maxDescriptionLen]
		}
		items = append(items, &models.Item{
			ID:          uuid.New(),
			Name:        fmt.Sprintf("%s %s", gofakeit.Word(), gofakeit.Word()),
			Description: description,
			Price:       math.Round(gofakeit.Float64Range(1, 1000)*100) / 100,
			Quantity:    gofakeit.Number(1, 100),
			UserID:      owner.ID,
		})
	}
	return items
}

func (s *SeedService) publishSeeded(ctx context.Context, users, items int) {
	if s.bus == nil {
		return
	}
	event := domainevents.SeededEvent{
		EventID:    uuid.New(),
		Version:    1,
		Users:      users,
		Items:      items,
		OccurredAt: time.Now().UTC(),
	}
	payload, err := json.Marshal(event)
	if err != nil {
		s.log.ErrorContext(ctx, "marshal event", "topic", domainevents.TopicSeeded, "error", err)
		return
	}
	msg := message.NewMessage(watermill.NewUUID(), payload)
	msg.Metadata.Set("event_version", "1")
	if err := s.bus.Publish(ctx, domainevents.TopicSeeded, msg); err != nil {
		s.log.ErrorContext(ctx, "publish event", "topic", domainevents.TopicSeeded, "error", err)
	}
}
