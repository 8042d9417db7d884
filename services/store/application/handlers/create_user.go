package handlers

import (
	"net/http"

	"github.com/ghuser/stockroom/pkg/errhttp"
	"github.com/ghuser/stockroom/pkg/httpx"
	pkgvalidator "github.com/ghuser/stockroom/pkg/validator"
	appsvcs "github.com/ghuser/stockroom/services/store/application/services"
)

// CreateUserRequest is the request body for POST /users.
type CreateUserRequest struct {
	Username string `json:"username" validate:"required,min=1,max=255" example:"ada_lovelace"`
} // @name CreateUserRequest

// CreateUserHandler handles POST /users requests.
type CreateUserHandler struct {
	svc *appsvcs.Services
}

// NewCreateUserHandler returns a CreateUserHandler backed by the given services.
func NewCreateUserHandler(svc *appsvcs.Services) *CreateUserHandler {
	return &CreateUserHandler{svc: svc}
}

// Execute creates a new user.
//
//	@Summary		Create user
//	@Description	Creates a new user with a unique username
//	@Tags			users
//	@Accept			json
//	@Produce		json
//	@Param			request	body		CreateUserRequest	true	"User creation request"
//	@Success		201		{object}	UserResponse
//	@Failure		400		{object}	ErrorResponse
//	@Failure		409		{object}	ErrorResponse
//	@Failure		422		{object}	ErrorResponse
//	@Router			/users [post]
func (h *CreateUserHandler) Execute(w http.ResponseWriter, r *http.Request) {
	req, ok := pkgvalidator.ValidateRequest[CreateUserRequest](w, r)
	if !ok {
		return
	}

	user, err := h.svc.Users.Create(r.Context(), req.Username)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusCreated, userToResponse(user))
}
