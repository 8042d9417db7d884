package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/ghuser/stockroom/pkg/errhttp"
	"github.com/ghuser/stockroom/pkg/httpx"
	appsvcs "github.com/ghuser/stockroom/services/store/application/services"
)

// PutDatabaseRequest optionally overrides the seed counts. An empty request
// body uses the configured defaults.
type PutDatabaseRequest struct {
	UserCount int `json:"user_count" example:"500"`
	ItemCount int `json:"item_count" example:"20000"`
} // @name PutDatabaseRequest

// PutDatabaseResponse reports how many records the populate run inserted.
type PutDatabaseResponse struct {
	Message      string `json:"message"       example:"Database populated successfully"`
	UsersCreated int    `json:"users_created" example:"500"`
	ItemsCreated int    `json:"items_created" example:"20000"`
} // @name PutDatabaseResponse

// PutDatabaseHandler handles PUT /database requests.
type PutDatabaseHandler struct {
	svc          *appsvcs.Services
	defaultUsers int
	defaultItems int
}

// NewPutDatabaseHandler returns a PutDatabaseHandler backed by the given
// services, with seed-count defaults applied when the request omits them.
func NewPutDatabaseHandler(svc *appsvcs.Services, defaultUsers, defaultItems int) *PutDatabaseHandler {
	return &PutDatabaseHandler{svc: svc, defaultUsers: defaultUsers, defaultItems: defaultItems}
}

// Execute drops and recreates the schema, then fills it with synthetic data.
//
//	@Summary		Populate database
//	@Description	Destructively replaces all stored data with synthetic users and items
//	@Tags			admin
//	@Accept			json
//	@Produce		json
//	@Param			request	body		PutDatabaseRequest	false	"Seed count overrides"
//	@Success		200		{object}	PutDatabaseResponse
//	@Failure		400		{object}	ErrorResponse
//	@Failure		422		{object}	ErrorResponse
//	@Failure		503		{object}	ErrorResponse
//	@Router			/database [put]
func (h *PutDatabaseHandler) Execute(w http.ResponseWriter, r *http.Request) {
	req := PutDatabaseRequest{UserCount: h.defaultUsers, ItemCount: h.defaultItems}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		httpx.JSONError(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	if req.UserCount <= 0 || req.ItemCount <= 0 {
		httpx.JSONError(w, http.StatusUnprocessableEntity, "user_count and item_count must be positive")
		return
	}

	users, items, err := h.svc.Seed.Populate(r.Context(), req.UserCount, req.ItemCount)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusOK, PutDatabaseResponse{
		Message:      "Database populated successfully",
		UsersCreated: users,
		ItemsCreated: items,
	})
}
