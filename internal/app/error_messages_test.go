package app

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MKhiriev/go-shortage-keeper/internal/service"
	"github.com/MKhiriev/go-shortage-keeper/internal/validators"
	"github.com/MKhiriev/go-shortage-keeper/models"
)

func TestErrorMessage(t *testing.T) {
	_, shortageErr := models.NewShortage("Milk", "Alice", "garage", models.CategoryFood, 3, models.Today())

	tests := []struct {
		name string
		err  error
		want string
	}{
		{name: "nil", err: nil, want: ""},
		{name: "duplicate account", err: &service.AccountExistsError{Name: "Alice"}, want: "User 'Alice' already exists"},
		{name: "wrapped duplicate account", err: fmt.Errorf("register: %w", &service.AccountExistsError{Name: "Bob"}), want: "User 'Bob' already exists"},
		{name: "unknown account", err: service.ErrAccountNotFound, want: "User does not exist"},
		{name: "wrong password", err: service.ErrWrongPassword, want: "Password does not match"},
		{name: "blank account name", err: fmt.Errorf("%w: %w", service.ErrInvalidDataProvided, validators.ErrEmptyAccountName), want: "Name cannot be empty"},
		{name: "blank password", err: fmt.Errorf("%w: %w", service.ErrInvalidDataProvided, validators.ErrEmptyPassword), want: "Password cannot be empty"},
		{name: "invalid room", err: shortageErr, want: "Room can either be: kitchen, meeting room, bathroom"},
		{name: "bare invalid data", err: service.ErrInvalidDataProvided, want: "Invalid data provided"},
		{name: "priority not a number", err: fmt.Errorf("%w: \"high\"", ErrInvalidPriority), want: "Invalid priority. Please enter a number between 1 and 10."},
		{name: "bare validation", err: models.ErrValidation, want: "Invalid data provided"},
		{name: "unexpected", err: errors.New("disk full"), want: MsgInternalError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ErrorMessage(tt.err))
		})
	}
}
