package handlers

import (
	"net/http"

	"github.com/ghuser/stockroom/pkg/errhttp"
	"github.com/ghuser/stockroom/pkg/httpx"
	appsvcs "github.com/ghuser/stockroom/services/store/application/services"
)

// GetUserItemsHandler handles GET /users/{id}/items requests.
type GetUserItemsHandler struct {
	svc *appsvcs.Services
}

// NewGetUserItemsHandler returns a GetUserItemsHandler backed by the given services.
func NewGetUserItemsHandler(svc *appsvcs.Services) *GetUserItemsHandler {
	return &GetUserItemsHandler{svc: svc}
}

// Execute lists every item owned by a user.
//
//	@Summary		List user items
//	@Description	Returns all items owned by the given user
//	@Tags			items
//	@Produce		json
//	@Param			id	path		string	true	"User ID"	format(uuid)
//	@Success		200	{array}		ItemResponse
//	@Failure		404	{object}	ErrorResponse
//	@Failure		422	{object}	ErrorResponse
//	@Router			/users/{id}/items [get]
func (h *GetUserItemsHandler) Execute(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	items, err := h.svc.Items.ListByUser(r.Context(), id)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	out := make([]ItemResponse, 0, len(items))
	for _, item := range items {
		out = append(out, itemToResponse(item))
	}
	httpx.JSON(w, http.StatusOK, out)
}
