package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-shortage-keeper/internal/validators"
	"github.com/MKhiriev/go-shortage-keeper/models"
)

// ShortageValidationService rejects shortages that bypassed
// [models.NewShortage] before they reach the wrapped service.
type ShortageValidationService struct {
	inner     ShortageService
	validator validators.Validator
}

func NewShortageValidationService() ShortageServiceWrapper {
	return &ShortageValidationService{
		validator: validators.NewShortageValidator(),
	}
}

func (v *ShortageValidationService) Add(ctx context.Context, shortage models.Shortage) (models.AddOutcome, error) {
	if err := v.validator.Validate(ctx, shortage); err != nil {
		return 0, fmt.Errorf("error during shortage validation before saving: %w", err)
	}

	return v.inner.Add(ctx, shortage)
}

func (v *ShortageValidationService) Remove(ctx context.Context, title string, room models.Room, actor models.Account) (models.RemoveOutcome, error) {
	return v.inner.Remove(ctx, title, room, actor)
}

func (v *ShortageValidationService) List(ctx context.Context, actor models.Account) []models.Shortage {
	return v.inner.List(ctx, actor)
}

func (v *ShortageValidationService) ListFiltered(ctx context.Context, actor models.Account, filter models.ShortageFilter) []models.Shortage {
	return v.inner.ListFiltered(ctx, actor, filter)
}

func (v *ShortageValidationService) Wrap(wrapped ShortageService) ShortageService {
	v.inner = wrapped
	return v
}
