package validators

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/go-shortage-keeper/models"
)

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = models.ErrUnknownField
)

// Field errors. Every one of them matches [models.ErrValidation] with errors.Is.
var (
	ErrEmptyTitle       = models.ErrEmptyTitle
	ErrEmptyReporter    = models.ErrEmptyReporter
	ErrInvalidRoom      = models.ErrInvalidRoom
	ErrInvalidCategory  = models.ErrInvalidCategory
	ErrInvalidPriority  = models.ErrInvalidPriority
	ErrEmptyCreatedOn   = models.ErrEmptyCreatedOn
	ErrEmptyAccountName = fmt.Errorf("%w: name cannot be empty", models.ErrValidation)
	ErrEmptyPassword    = fmt.Errorf("%w: password cannot be empty", models.ErrValidation)
)
