package handlers

import (
	"net/http"

	"github.com/ghuser/stockroom/pkg/errhttp"
	"github.com/ghuser/stockroom/pkg/httpx"
	appsvcs "github.com/ghuser/stockroom/services/store/application/services"
)

// GetUserHandler handles GET /users/{id} requests.
type GetUserHandler struct {
	svc *appsvcs.Services
}

// NewGetUserHandler returns a GetUserHandler backed by the given services.
func NewGetUserHandler(svc *appsvcs.Services) *GetUserHandler {
	return &GetUserHandler{svc: svc}
}

// Execute returns a single user by ID.
//
//	@Summary		Get user
//	@Description	Returns the user with the given ID
//	@Tags			users
//	@Produce		json
//	@Param			id	path		string	true	"User ID"	format(uuid)
//	@Success		200	{object}	UserResponse
//	@Failure		404	{object}	ErrorResponse
//	@Failure		422	{object}	ErrorResponse
//	@Router			/users/{id} [get]
func (h *GetUserHandler) Execute(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	user, err := h.svc.Users.Get(r.Context(), id)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusOK, userToResponse(user))
}
