package handlers

import (
	"net/http"

	"github.com/ghuser/stockroom/pkg/errhttp"
	"github.com/ghuser/stockroom/pkg/httpx"
	appsvcs "github.com/ghuser/stockroom/services/store/application/services"
)

// SpendTotalEntry is one row of the top-spenders report.
type SpendTotalEntry struct {
	Username   string  `json:"username"    example:"ada_lovelace"`
	TotalPrice float64 `json:"total_price" example:"1543.20"`
} // @name SpendTotalEntry

// TopSpendersResponse lists users ranked by total item price.
type TopSpendersResponse struct {
	TotalPrices []SpendTotalEntry `json:"total_prices"`
} // @name TopSpendersResponse

// GetTopSpendersHandler handles GET /users-total requests.
type GetTopSpendersHandler struct {
	svc *appsvcs.Services
}

// NewGetTopSpendersHandler returns a GetTopSpendersHandler backed by the given services.
func NewGetTopSpendersHandler(svc *appsvcs.Services) *GetTopSpendersHandler {
	return &GetTopSpendersHandler{svc: svc}
}

// Execute returns up to ten users ranked by the total price of their items.
//
//	@Summary		Top spenders
//	@Description	Returns the ten users with the highest total item price
//	@Tags			users
//	@Produce		json
//	@Success		200	{object}	TopSpendersResponse
//	@Failure		503	{object}	ErrorResponse
//	@Router			/users-total [get]
func (h *GetTopSpendersHandler) Execute(w http.ResponseWriter, r *http.Request) {
	rows, err := h.svc.Reports.TopSpenders(r.Context())
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	out := TopSpendersResponse{TotalPrices: make([]SpendTotalEntry, 0, len(rows))}
	for _, row := range rows {
		out.TotalPrices = append(out.TotalPrices, SpendTotalEntry{
			Username:   row.Username,
			TotalPrice: row.TotalPrice,
		})
	}
	httpx.JSON(w, http.StatusOK, out)
}
