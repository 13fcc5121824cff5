package validators

import (
	"context"
	"strings"

	"github.com/MKhiriev/go-shortage-keeper/models"
)

// Account field names.
const (
	FieldAccountName = "account_name"
	FieldPassword    = "password"
)

// AccountValidator implements [Validator] for [models.Credentials].
type AccountValidator struct{}

// NewAccountValidator constructs a new AccountValidator.
func NewAccountValidator() Validator {
	return &AccountValidator{}
}

// Validate rejects blank names and passwords.
func (v *AccountValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Credentials:
		return v.validateCredentials(ctx, value, fields...)
	case *models.Credentials:
		if value == nil {
			return ErrUnsupportedType
		}
		return v.validateCredentials(ctx, *value, fields...)
	default:
		return ErrUnsupportedType
	}
}

func (v *AccountValidator) validateCredentials(_ context.Context, credentials models.Credentials, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldAccountName, FieldPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldAccountName:
			if strings.TrimSpace(credentials.Name) == "" {
				return ErrEmptyAccountName
			}
		case FieldPassword:
			if strings.TrimSpace(credentials.Password) == "" {
				return ErrEmptyPassword
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
