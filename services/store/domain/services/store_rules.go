// Package services contains stateless domain services for the store bounded context.
// Domain services enforce business rules that operate purely on domain types
// and have zero external dependencies beyond stdlib and the domain layer.
package services

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/google/uuid"

	"github.com/ghuser/stockroom/services/store/domain/models"
)

// ValidateUsername enforces business rules for Username beyond the structural
// constraints enforced by the Username constructor (length 1–255).
//
// Business rules:
//   - No leading or trailing whitespace
//   - No control characters (Unicode category Cc)
//   - Must not be only whitespace characters
func ValidateUsername(username models.Username) error {
	s := username.String()

	if s != strings.TrimSpace(s) {
		return fmt.Errorf("username must not have leading or trailing whitespace")
	}

	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("username must not be only whitespace")
	}

	for _, r := range s {
		if unicode.IsControl(r) {
			return fmt.Errorf("username must not contain control characters")
		}
	}

	return nil
}

// ValidateUserForCreation performs validation on a fully-constructed User
// aggregate before it is persisted.
func ValidateUserForCreation(user *models.User) error {
	if user == nil {
		return fmt.Errorf("user cannot be nil")
	}

	if err := ValidateUsername(user.Username); err != nil {
		return fmt.Errorf("invalid username: %w", err)
	}

	if user.ID == uuid.Nil {
		return fmt.Errorf("id must be set")
	}

	return nil
}

// ValidateItemForUpdate performs cross-field validation on an Item before an
// edit is applied. Structural constraints (non-empty name, non-negative price
// and quantity) are rechecked here because edits arrive as full replacements.
func ValidateItemForUpdate(item *models.Item) error {
	if item == nil {
		return fmt.Errorf("item cannot be nil")
	}

	if item.ID == uuid.Nil {
		return fmt.Errorf("id must be set")
	}

	return item.Validate()
}
