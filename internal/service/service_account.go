// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"maps"
	"sync"

	"github.com/MKhiriev/go-shortage-keeper/internal/logger"
	"github.com/MKhiriev/go-shortage-keeper/internal/store"
	"github.com/MKhiriev/go-shortage-keeper/internal/utils"
	"github.com/MKhiriev/go-shortage-keeper/internal/validators"
	"github.com/MKhiriev/go-shortage-keeper/models"
)

// accountService is the concrete implementation of AccountService.
// It keeps all accounts in memory and writes the whole map through to
// storage after every registration.
type accountService struct {
	// mu guards accounts and the write-through to storage.
	mu       sync.RWMutex
	accounts map[string]models.Account

	storage   store.AccountStorage
	hasher    *utils.PasswordHasher
	validator validators.Validator

	logger *logger.Logger
}

// NewAccountService loads the persisted accounts and returns a service
// over them. A corrupt account store is returned as an error.
func NewAccountService(ctx context.Context, storage store.AccountStorage, hasher *utils.PasswordHasher, log *logger.Logger) (AccountService, error) {
	accounts, err := storage.Load(ctx)
	if err != nil {
		log.Err(err).Str("func", "NewAccountService").Msg("error loading accounts")
		return nil, fmt.Errorf("error loading accounts: %w", err)
	}

	log.Debug().Int("accounts", len(accounts)).Msg("account store loaded")

	return &accountService{
		accounts:  accounts,
		storage:   storage,
		hasher:    hasher,
		validator: validators.NewAccountValidator(),
		logger:    log,
	}, nil
}

// Register creates a new account.
//
// Returns the stored account or:
//   - ErrInvalidDataProvided if name or password is blank.
//   - *AccountExistsError (matching ErrAccountAlreadyExists) if name is taken.
//   - A wrapped storage error if the account store cannot be written; the
//     account is not kept in that case.
func (a *accountService) Register(ctx context.Context, name, password string, isAdmin bool) (models.Account, error) {
	log := logger.FromContext(ctx)

	if err := a.validator.Validate(ctx, models.Credentials{Name: name, Password: password, IsAdmin: isAdmin}); err != nil {
		log.Error().Str("name", name).Msg("invalid account data provided")
		return models.Account{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	if _, ok := a.accounts[name]; ok {
		log.Info().Str("name", name).Msg("account already exists")
		return models.Account{}, &AccountExistsError{Name: name}
	}

	hashed, err := a.hasher.Hash(password)
	if err != nil {
		log.Err(err).Str("name", name).Msg("error hashing password")
		return models.Account{}, fmt.Errorf("error hashing password: %w", err)
	}

	account := models.Account{
		Name:           name,
		IsAdmin:        isAdmin,
		HashedPassword: hashed,
	}

	a.accounts[name] = account
	if err = a.storage.Save(ctx, maps.Clone(a.accounts)); err != nil {
		delete(a.accounts, name)
		log.Err(err).Str("name", name).Msg("error saving accounts")
		return models.Account{}, fmt.Errorf("error saving accounts: %w", err)
	}

	log.Info().Str("name", name).Bool("is_admin", isAdmin).Str("scheme", a.hasher.Scheme()).Msg("account registered")
	return account, nil
}

// Authenticate verifies a name/password pair.
//
// Returns the stored account or:
//   - ErrAccountNotFound if name is not registered.
//   - ErrWrongPassword if the password does not match the stored hash.
func (a *accountService) Authenticate(ctx context.Context, name, password string) (models.Account, error) {
	log := logger.FromContext(ctx)

	a.mu.RLock()
	account, ok := a.accounts[name]
	a.mu.RUnlock()

	if !ok {
		log.Info().Str("name", name).Msg("account not found")
		return models.Account{}, ErrAccountNotFound
	}

	if !a.hasher.Check(account.HashedPassword, password) {
		log.Info().Str("name", name).Msg("wrong password")
		return models.Account{}, ErrWrongPassword
	}

	return account, nil
}

func (a *accountService) Exists(_ context.Context, name string) bool {
	a.mu.RLock()
	defer a.mu.RUnlock()

	_, ok := a.accounts[name]
	return ok
}
