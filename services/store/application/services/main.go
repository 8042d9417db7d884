package services

import (
	"github.com/ghuser/stockroom/pkg/app"
	"github.com/ghuser/stockroom/pkg/cache"
	"github.com/ghuser/stockroom/services/store/infrastructure/persistence/postgres"
)

// Services is the application-layer service container for this bounded context.
// It wires domain services with their infrastructure implementations.
type Services struct {
	Users   *UserService
	Items   *ItemService
	Reports *ReportService
	Seed    *SeedService
}

// New wires all store application services with infrastructure from the Application container.
func New(a *app.Application) *Services {
	users := postgres.NewUserRepository(a.Db)
	items := postgres.NewItemRepository(a.Db)
	reports := postgres.NewReportRepository(a.Db)
	seed := postgres.NewSeedRepository(a.Db)

	var userCache *cache.UserCache
	var itemCache *cache.ItemCache
	if a.Redis != nil {
		userCache = cache.NewUserCache(a.Redis)
		itemCache = cache.NewItemCache(a.Redis)
	}

	return &Services{
		Users:   NewUserService(users, userCache, itemCache, a.EventBus, a.Logger),
		Items:   NewItemService(items, itemCache),
		Reports: NewReportService(reports),
		Seed:    NewSeedService(seed, a.Redis, a.EventBus, a.Logger),
	}
}
