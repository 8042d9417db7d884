package api

import (
	"github.com/go-chi/chi/v5"

	"github.com/ghuser/stockroom/pkg/app"
	"github.com/ghuser/stockroom/services/store/application/handlers"
	appsvcs "github.com/ghuser/stockroom/services/store/application/services"
)

// StoreRoutes registers store endpoints on the provided chi router.
func StoreRoutes(r chi.Router, a *app.Application) {
	svcs := appsvcs.New(a)
	r.Group(func(r chi.Router) {
		r.Route("/users", func(r chi.Router) {
			r.Post("/", handlers.NewCreateUserHandler(svcs).Execute)
			r.Get("/{id}", handlers.NewGetUserHandler(svcs).Execute)
			r.Delete("/{id}", handlers.NewDeleteUserHandler(svcs).Execute)
			r.Get("/{id}/items", handlers.NewGetUserItemsHandler(svcs).Execute)
			r.Get("/{id}/items/total", handlers.NewGetUserItemsTotalHandler(svcs).Execute)
		})
		r.Get("/users-total", handlers.NewGetTopSpendersHandler(svcs).Execute)
		r.Route("/items", func(r chi.Router) {
			r.Get("/{id}", handlers.NewGetItemHandler(svcs).Execute)
			r.Patch("/", handlers.NewPatchItemHandler(svcs).Execute)
		})
		r.Put("/database", handlers.NewPutDatabaseHandler(
			svcs, a.Config.SeedUserCount, a.Config.SeedItemCount,
		).Execute)
	})
}
