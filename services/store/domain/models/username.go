package models

import "fmt"

// Username is a value object representing a valid, globally unique username.
// Uniqueness is enforced by the store; this type encapsulates the structural
// rules: 1 <= len(username) <= 255.
type Username string

const (
	minUsernameLength = 1
	maxUsernameLength = 255
)

// NewUsername constructs a valid Username or returns an error if constraints are violated.
func NewUsername(s string) (Username, error) {
	if len(s) < minUsernameLength {
		return "", fmt.Errorf("username must be at least %d character", minUsernameLength)
	}
	if len(s) > maxUsernameLength {
		return "", fmt.Errorf("username must not exceed %d characters", maxUsernameLength)
	}
	return Username(s), nil
}

// String returns the underlying string value.
func (u Username) String() string {
	return string(u)
}
