package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-shortage-keeper/internal/config"
	"github.com/MKhiriev/go-shortage-keeper/internal/logger"
	"github.com/MKhiriev/go-shortage-keeper/internal/store"
	"github.com/MKhiriev/go-shortage-keeper/internal/utils"
	"github.com/MKhiriev/go-shortage-keeper/models"
)

// Services groups the core services consumed by the shell.
type Services struct {
	AccountService  AccountService
	ShortageService ShortageService
	AppInfoService  AppInfoService
}

// NewServices loads both stores from storages. The shortage service is
// wrapped with validation.
func NewServices(ctx context.Context, storages *store.Storages, cfg config.App, buildInfo models.AppBuildInfo, logger *logger.Logger) (*Services, error) {
	hasher, err := utils.NewPasswordHasher(cfg.PasswordHashScheme, cfg.BcryptCost)
	if err != nil {
		return nil, fmt.Errorf("error creating password hasher: %w", err)
	}

	accountService, err := NewAccountService(ctx, storages.Accounts, hasher, logger)
	if err != nil {
		return nil, err
	}

	shortageService, err := NewShortageService(ctx, storages.Shortages, logger)
	if err != nil {
		return nil, err
	}

	appInfoService, err := NewAppInfoService(buildInfo, logger)
	if err != nil {
		return nil, err
	}

	return &Services{
		AccountService:  accountService,
		ShortageService: NewShortageValidationService().Wrap(shortageService),
		AppInfoService:  appInfoService,
	}, nil
}
