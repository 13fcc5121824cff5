package service

import (
	"context"

	"github.com/MKhiriev/go-shortage-keeper/models"
)

// AccountService owns registered accounts: registration and credential
// verification. Accounts are never updated or deleted.
type AccountService interface {
	// Register creates an account and persists the account store.
	Register(ctx context.Context, name, password string, isAdmin bool) (models.Account, error)
	// Authenticate returns the account whose password matches.
	Authenticate(ctx context.Context, name, password string) (models.Account, error)
	// Exists reports whether name is registered.
	Exists(ctx context.Context, name string) bool
}

// ShortageService owns shortage records: create-or-upgrade, ownership-gated
// deletion and scoped listing.
type ShortageService interface {
	Add(ctx context.Context, shortage models.Shortage) (models.AddOutcome, error)
	Remove(ctx context.Context, title string, room models.Room, actor models.Account) (models.RemoveOutcome, error)
	List(ctx context.Context, actor models.Account) []models.Shortage
	ListFiltered(ctx context.Context, actor models.Account, filter models.ShortageFilter) []models.Shortage
}

// ShortageServiceWrapper defines middleware composition for ShortageService.
//
// Implementations decorate an inner ShortageService and return a new
// ShortageService (e.g. for validation).
type ShortageServiceWrapper interface {
	ShortageService
	Wrap(ShortageService) ShortageService
}

// AppInfoService exposes build metadata of the running binary.
type AppInfoService interface {
	GetBuildInfo(ctx context.Context) models.AppBuildInfo
}
