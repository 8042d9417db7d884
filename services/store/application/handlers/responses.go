package handlers

import (
	"github.com/google/uuid"

	"github.com/ghuser/stockroom/services/store/domain/models"
)

// ErrorResponse is returned on all error responses.
type ErrorResponse struct {
	Detail string `json:"detail" example:"User not found"`
} // @name ErrorResponse

// UserResponse is the wire representation of a User.
type UserResponse struct {
	ID       uuid.UUID `json:"id"       example:"550e8400-e29b-41d4-a716-446655440000"`
	Username string    `json:"username" example:"ada_lovelace"`
} // @name UserResponse

// ItemResponse is the wire representation of an Item.
type ItemResponse struct {
	ID          uuid.UUID `json:"id"          example:"123e4567-e89b-12d3-a456-426614174000"`
	Name        string    `json:"name"        example:"copper kettle"`
	Description string    `json:"description" example:"A well-kept copper kettle."`
	Price       float64   `json:"price"       example:"129.99"`
	Quantity    int       `json:"quantity"    example:"3"`
	UserID      uuid.UUID `json:"user_id"     example:"550e8400-e29b-41d4-a716-446655440000"`
} // @name ItemResponse

func userToResponse(u *models.User) UserResponse {
	return UserResponse{ID: u.ID, Username: u.Username.String()}
}

func itemToResponse(i *models.Item) ItemResponse {
	return ItemResponse{
		ID:          i.ID,
		Name:        i.Name,
		Description: i.Description,
		Price:       i.Price,
		Quantity:    i.Quantity,
		UserID:      i.UserID,
	}
}
