package models

import (
	"fmt"

	"github.com/google/uuid"
)

// Item is a record owned by exactly one User. Every item's UserID must
// reference an existing user at all times.
type Item struct {
	ID          uuid.UUID
	Name        string
	Description string
	Price       float64
	Quantity    int
	UserID      uuid.UUID
}

// NewItem constructs a valid Item with a generated ID, or returns an error
// if field constraints are violated.
func NewItem(name, description string, price float64, quantity int, userID uuid.UUID) (*Item, error) {
	item := &Item{
		ID:          uuid.New(),
		Name:        name,
		Description: description,
		Price:       price,
		Quantity:    quantity,
		UserID:      userID,
	}
	if err := item.Validate(); err != nil {
		return nil, err
	}
	return item, nil
}

// Validate checks field constraints: name required, price and quantity
// non-negative, user reference set.
func (i *Item) Validate() error {
	if i.Name == "" {
		return fmt.Errorf("item name is required")
	}
	if i.Price < 0 {
		return fmt.Errorf("price must not be negative")
	}
	if i.Quantity < 0 {
		return fmt.Errorf("quantity must not be negative")
	}
	if i.UserID == uuid.Nil {
		return fmt.Errorf("user_id is required")
	}
	return nil
}
