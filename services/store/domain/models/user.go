package models

import (
	"github.com/google/uuid"
)

// User is the owning aggregate for items. Deleting a User cascades to all
// of its items within one transaction.
type User struct {
	ID       uuid.UUID
	Username Username
}

// NewUser constructs a valid User aggregate with a generated ID.
func NewUser(username Username) (*User, error) {
	return &User{
		ID:       uuid.New(),
		Username: username,
	}, nil
}
