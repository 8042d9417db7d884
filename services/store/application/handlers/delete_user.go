package handlers

import (
	"fmt"
	"net/http"

	"github.com/ghuser/stockroom/pkg/errhttp"
	"github.com/ghuser/stockroom/pkg/httpx"
	appsvcs "github.com/ghuser/stockroom/services/store/application/services"
)

// DeleteUserResponse is returned after a successful cascade delete.
type DeleteUserResponse struct {
	Message      string `json:"message"       example:"User ada_lovelace and 3 item(s) deleted successfully"`
	Username     string `json:"username"      example:"ada_lovelace"`
	ItemsDeleted int    `json:"items_deleted" example:"3"`
} // @name DeleteUserResponse

// DeleteUserHandler handles DELETE /users/{id} requests.
type DeleteUserHandler struct {
	svc *appsvcs.Services
}

// NewDeleteUserHandler returns a DeleteUserHandler backed by the given services.
func NewDeleteUserHandler(svc *appsvcs.Services) *DeleteUserHandler {
	return &DeleteUserHandler{svc: svc}
}

// Execute deletes a user and every item it owns in one transaction.
//
//	@Summary		Delete user
//	@Description	Deletes the user and all of its items atomically
//	@Tags			users
//	@Produce		json
//	@Param			id	path		string	true	"User ID"	format(uuid)
//	@Success		200	{object}	DeleteUserResponse
//	@Failure		404	{object}	ErrorResponse
//	@Failure		422	{object}	ErrorResponse
//	@Router			/users/{id} [delete]
func (h *DeleteUserHandler) Execute(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	deleted, err := h.svc.Users.Delete(r.Context(), id)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusOK, DeleteUserResponse{
		Message: fmt.Sprintf(
			"User %s and %d item(s) deleted successfully",
			deleted.Username, deleted.ItemsDeleted,
		),
		Username:     deleted.Username,
		ItemsDeleted: deleted.ItemsDeleted,
	})
}
