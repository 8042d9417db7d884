package handlers

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/ghuser/stockroom/pkg/errhttp"
	"github.com/ghuser/stockroom/pkg/httpx"
	pkgvalidator "github.com/ghuser/stockroom/pkg/validator"
	appsvcs "github.com/ghuser/stockroom/services/store/application/services"
	"github.com/ghuser/stockroom/services/store/domain/models"
)

// PatchItemRequest is the request body for PATCH /items. Every field of the
// stored item is replaced, so all of them are required. Price and quantity
// use pointers to tell an explicit zero apart from a missing field.
type PatchItemRequest struct {
	ID          uuid.UUID `json:"id"          validate:"required"            example:"123e4567-e89b-12d3-a456-426614174000"`
	Name        string    `json:"name"        validate:"required,max=255"    example:"copper kettle"`
	Description string    `json:"description" validate:"max=200"             example:"A well-kept copper kettle."`
	Price       *float64  `json:"price"       validate:"required,gte=0"      example:"129.99"`
	Quantity    *int      `json:"quantity"    validate:"required,gte=0"      example:"3"`
	UserID      uuid.UUID `json:"user_id"     validate:"required"            example:"550e8400-e29b-41d4-a716-446655440000"`
} // @name PatchItemRequest

// PatchItemHandler handles PATCH /items requests.
type PatchItemHandler struct {
	svc *appsvcs.Services
}

// NewPatchItemHandler returns a PatchItemHandler backed by the given services.
func NewPatchItemHandler(svc *appsvcs.Services) *PatchItemHandler {
	return &PatchItemHandler{svc: svc}
}

// Execute replaces every mutable field of a stored item.
//
//	@Summary		Edit item
//	@Description	Replaces all fields of the item identified by the body's id
//	@Tags			items
//	@Accept			json
//	@Produce		json
//	@Param			request	body		PatchItemRequest	true	"Full item replacement"
//	@Success		200		{object}	ItemResponse
//	@Failure		400		{object}	ErrorResponse
//	@Failure		404		{object}	ErrorResponse
//	@Failure		422		{object}	ErrorResponse
//	@Router			/items [patch]
func (h *PatchItemHandler) Execute(w http.ResponseWriter, r *http.Request) {
	req, ok := pkgvalidator.ValidateRequest[PatchItemRequest](w, r)
	if !ok {
		return
	}

	item := &models.Item{
		ID:          req.ID,
		Name:        req.Name,
		Description: req.Description,
		Price:       *req.Price,
		Quantity:    *req.Quantity,
		UserID:      req.UserID,
	}

	if err := h.svc.Items.Update(r.Context(), item); err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusOK, itemToResponse(item))
}
