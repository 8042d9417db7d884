package services

import (
	"testing"

	"github.com/google/uuid"

	"github.com/ghuser/stockroom/services/store/domain/models"
)

func TestValidateUsername(t *testing.T) {
	tests := []struct {
		name     string
		username string
		wantErr  bool
	}{
		{"plain", "ada_lovelace", false},
		{"with digits", "user42", false},
		{"unicode letters", "こんにちは", false},
		{"leading space", " ada", true},
		{"trailing space", "ada ", true},
		{"only whitespace", "   ", true},
		{"control character", "ada\x00lovelace", true},
		{"newline", "ada\nlovelace", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateUsername(models.Username(tt.username))
			if (err != nil) != tt.wantErr {
				t.Fatalf("ValidateUsername(%q) error = %v, wantErr %v", tt.username, err, tt.wantErr)
			}
		})
	}
}

func TestValidateUserForCreation(t *testing.T) {
	valid := &models.User{ID: uuid.New(), Username: "grace"}
	if err := ValidateUserForCreation(valid); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := ValidateUserForCreation(nil); err == nil {
		t.Error("expected error for nil user")
	}
	if err := ValidateUserForCreation(&models.User{Username: "grace"}); err == nil {
		t.Error("expected error for missing ID")
	}
	if err := ValidateUserForCreation(&models.User{ID: uuid.New(), Username: " grace"}); err == nil {
		t.Error("expected error for invalid username")
	}
}

func TestValidateItemForUpdate(t *testing.T) {
	valid := &models.Item{ID: uuid.New(), Name: "kettle", Price: 1, Quantity: 1, UserID: uuid.New()}
	if err := ValidateItemForUpdate(valid); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := ValidateItemForUpdate(nil); err == nil {
		t.Error("expected error for nil item")
	}
	if err := ValidateItemForUpdate(&models.Item{Name: "kettle", Price: 1, Quantity: 1, UserID: uuid.New()}); err == nil {
		t.Error("expected error for missing ID")
	}
	if err := ValidateItemForUpdate(&models.Item{ID: uuid.New(), Price: 1, Quantity: 1, UserID: uuid.New()}); err == nil {
		t.Error("expected error for empty name")
	}
}
