package main

import (
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/ThreeDotsLabs/watermill/message"

	"github.com/ghuser/stockroom/pkg/app"
	"github.com/ghuser/stockroom/pkg/cache"
	"github.com/ghuser/stockroom/pkg/config"
	"github.com/ghuser/stockroom/pkg/database"
	"github.com/ghuser/stockroom/pkg/events"
	"github.com/ghuser/stockroom/pkg/logger"
	"github.com/ghuser/stockroom/pkg/telemetry"
	storeEvents "github.com/ghuser/stockroom/services/store/domain/events"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	if err := config.ValidateForProduction(cfg); err != nil {
		slog.Error("production config validation failed", "error", err)
		os.Exit(1)
	}

	log := logger.New(cfg)

	ctx := context.Background()

	otelShutdown, _, err := telemetry.Setup(ctx, cfg)
	if err != nil {
		log.Error("failed to setup otel", "error", err)
		os.Exit(1)
	}
	defer otelShutdown(ctx) //nolint:errcheck

	if err := telemetry.SetupSentry(cfg); err != nil {
		log.Warn("failed to setup sentry, continuing without crash reporting", "error", err)
	}
	defer telemetry.SentryFlush()

	pool, err := database.NewPool(ctx, cfg.DatabaseURL, log)
	if err != nil {
		log.Error("failed to connect to database", "error", err)
		os.Exit(1) //nolint:gocritic
	}
	defer pool.Close()
	log.Info("database pool connected")

	eventBus, err := events.NewEventBus(cfg, log)
	if err != nil {
		log.Error("failed to setup event bus", "error", err)
		os.Exit(1) //nolint:gocritic
	}
	defer eventBus.Close() //nolint:errcheck

	redisClient, err := cache.NewRedisClient(cfg)
	if err != nil {
		log.Error("failed to connect to redis", "error", err)
		os.Exit(1) //nolint:gocritic
	}
	defer redisClient.Close() //nolint:errcheck
	log.Info("redis connected")

	//temporalClient, err := workflows.NewTemporalClient(ctx, cfg.TemporalHostPort, cfg.TemporalNamespace, log)
	//if err != nil {
	//	log.Error("failed to initialize temporal client", "error", err)
	//	os.Exit(1) //nolint:gocritic
	//}
	//defer temporalClient.Close()

	appConfig := &app.Application{
		Config:   cfg,
		Db:       pool,
		Logger:   log,
		EventBus: eventBus,
		Redis:    redisClient,
		//TemporalClient: temporalClient,
	}

	if err := registerSubscribers(ctx, appConfig); err != nil {
		log.Error("failed to register subscribers", "error", err)
		os.Exit(1) //nolint:gocritic
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down worker...")

	// EventBus.Close() (via defer) waits up to 30s for in-flight handlers.
	log.Info("worker stopped")
}

// registerSubscribers wires all domain event handlers.
// Add new topics here as more services publish events.
func registerSubscribers(ctx context.Context, a *app.Application) error {
	topics := map[string]func(context.Context, *message.Message) error{
		storeEvents.TopicUserCreated: handleUserCreated(a),
		storeEvents.TopicUserDeleted: handleUserDeleted(a),
		storeEvents.TopicSeeded:      handleSeeded(a),
	}

	names := make([]string, 0, len(topics))
	for topic, handler := range topics {
		errCh, err := a.EventBus.Subscribe(ctx, topic, handler)
		if err != nil {
			return err
		}
		names = append(names, topic)

		// Drain subscriber errors in background so the channel never blocks.
		go func(topic string, errCh <-chan error) {
			for err := range errCh {
				a.Logger.ErrorContext(ctx, "subscriber error", "topic", topic, "error", err)
			}
		}(topic, errCh)
	}

	a.Logger.Info("event subscribers registered", "topics", names)
	return nil
}

// handleUserCreated returns a handler for store.user.created events.
// Handlers must be idempotent: the EventBus retries up to 3x on failure.
// Warms the Redis read-model cache so subsequent user reads are served from cache.
func handleUserCreated(a *app.Application) func(context.Context, *message.Message) error {
	userCache := cache.NewUserCache(a.Redis)
	return func(ctx context.Context, msg *message.Message) error {
		var evt storeEvents.UserCreatedEvent
		if err := json.Unmarshal(msg.Payload, &evt); err != nil {
			return err
		}

		if err := userCache.Set(ctx, &cache.CachedUser{
			ID:       evt.UserID,
			Username: evt.Username,
		}); err != nil {
			// Cache warming is best-effort; log but do not fail the handler.
			a.Logger.WarnContext(ctx, "cache warm failed for user.created",
				"user_id", evt.UserID, "error", err)
		} else {
			a.Logger.InfoContext(ctx, "cache warmed", "user_id", evt.UserID)
		}

		return nil
	}
}

// handleUserDeleted returns a handler for store.user.deleted events.
// Drops the deleted user's cache entry plus every cascaded item entry.
func handleUserDeleted(a *app.Application) func(context.Context, *message.Message) error {
	userCache := cache.NewUserCache(a.Redis)
	itemCache := cache.NewItemCache(a.Redis)
	return func(ctx context.Context, msg *message.Message) error {
		var evt storeEvents.UserDeletedEvent
		if err := json.Unmarshal(msg.Payload, &evt); err != nil {
			return err
		}

		if err := userCache.Delete(ctx, evt.UserID); err != nil {
			a.Logger.WarnContext(ctx, "cache invalidation failed for user.deleted",
				"user_id", evt.UserID, "error", err)
		}
		for _, itemID := range evt.ItemIDs {
			if err := itemCache.Delete(ctx, itemID); err != nil {
				a.Logger.WarnContext(ctx, "cache invalidation failed for cascaded item",
					"item_id", itemID, "error", err)
			}
		}

		a.Logger.InfoContext(ctx, "caches invalidated",
			"user_id", evt.UserID, "items_deleted", evt.ItemsDeleted)
		return nil
	}
}

// handleSeeded returns a handler for store.seeded events.
// The populate run already flushed the entity caches; flushing again here
// keeps replicas consistent when multiple API instances share Redis.
func handleSeeded(a *app.Application) func(context.Context, *message.Message) error {
	return func(ctx context.Context, msg *message.Message) error {
		var evt storeEvents.SeededEvent
		if err := json.Unmarshal(msg.Payload, &evt); err != nil {
			return err
		}

		if err := cache.FlushEntities(ctx, a.Redis); err != nil {
			a.Logger.WarnContext(ctx, "entity cache flush failed for store.seeded", "error", err)
		}

		a.Logger.InfoContext(ctx, "dataset reseeded",
			"users", evt.Users, "items", evt.Items)
		return nil
	}
}
