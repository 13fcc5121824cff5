package validators

import (
	"context"

	"github.com/MKhiriev/go-shortage-keeper/models"
)

// Field name constants used to restrict validation to a subset of fields.
const (
	FieldTitle     = models.ShortageFieldTitle
	FieldReporter  = models.ShortageFieldReporter
	FieldRoom      = models.ShortageFieldRoom
	FieldCategory  = models.ShortageFieldCategory
	FieldPriority  = models.ShortageFieldPriority
	FieldCreatedOn = models.ShortageFieldCreatedOn
)

// ShortageValidator implements [Validator] for [models.Shortage].
// Value and pointer forms are both accepted. The field rules themselves
// live on [models.Shortage], so a record accepted by [models.NewShortage]
// is accepted here too.
type ShortageValidator struct{}

// NewShortageValidator constructs a new ShortageValidator.
func NewShortageValidator() Validator {
	return &ShortageValidator{}
}

// Validate checks the named fields of a shortage, or all of them when no
// field is named.
func (v *ShortageValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Shortage:
		return v.validateShortage(ctx, value, fields...)
	case *models.Shortage:
		if value == nil {
			return ErrUnsupportedType
		}
		return v.validateShortage(ctx, *value, fields...)
	default:
		return ErrUnsupportedType
	}
}

func (v *ShortageValidator) validateShortage(_ context.Context, shortage models.Shortage, fields ...string) error {
	if len(fields) == 0 {
		return shortage.Validate()
	}

	for _, f := range fields {
		if err := shortage.ValidateField(f); err != nil {
			return err
		}
	}

	return nil
}
