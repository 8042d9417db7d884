package handlers

import (
	"net/http"

	"github.com/ghuser/stockroom/pkg/errhttp"
	"github.com/ghuser/stockroom/pkg/httpx"
	appsvcs "github.com/ghuser/stockroom/services/store/application/services"
)

// UserItemsTotalResponse carries the summed price of a user's items.
type UserItemsTotalResponse struct {
	TotalPrice float64 `json:"total_price" example:"389.97"`
} // @name UserItemsTotalResponse

// GetUserItemsTotalHandler handles GET /users/{id}/items/total requests.
type GetUserItemsTotalHandler struct {
	svc *appsvcs.Services
}

// NewGetUserItemsTotalHandler returns a GetUserItemsTotalHandler backed by the given services.
func NewGetUserItemsTotalHandler(svc *appsvcs.Services) *GetUserItemsTotalHandler {
	return &GetUserItemsTotalHandler{svc: svc}
}

// Execute returns the sum of item prices for a user. A user with no items
// yields zero.
//
//	@Summary		Sum user item prices
//	@Description	Returns the total price of all items owned by the given user
//	@Tags			items
//	@Produce		json
//	@Param			id	path		string	true	"User ID"	format(uuid)
//	@Success		200	{object}	UserItemsTotalResponse
//	@Failure		404	{object}	ErrorResponse
//	@Failure		422	{object}	ErrorResponse
//	@Router			/users/{id}/items/total [get]
func (h *GetUserItemsTotalHandler) Execute(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	total, err := h.svc.Reports.SumPriceByUser(r.Context(), id)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusOK, UserItemsTotalResponse{TotalPrice: total})
}
