// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/MKhiriev/go-shortage-keeper/internal/utils"
)

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Returns nil if the configuration is valid, or one of the ErrInvalid*
// sentinels wrapped with a description otherwise.
func (cfg *StructuredConfig) validate() error {
	switch cfg.Storage.Backend {
	case BackendJSON:
		if cfg.Storage.Files.AccountsPath == "" || cfg.Storage.Files.ShortagesPath == "" {
			return fmt.Errorf("%w: both store file paths are required", ErrInvalidStorageConfigs)
		}
		if cfg.Storage.Files.AccountsPath == cfg.Storage.Files.ShortagesPath {
			return fmt.Errorf("%w: accounts and shortages must use different files", ErrInvalidStorageConfigs)
		}
	case BackendSQLite:
		if cfg.Storage.DB.DSN == "" {
			return fmt.Errorf("%w: empty DSN", ErrInvalidStorageConfigs)
		}
	default:
		return fmt.Errorf("%w: unknown backend %q", ErrInvalidStorageConfigs, cfg.Storage.Backend)
	}

	switch cfg.App.PasswordHashScheme {
	case utils.HashSchemeSHA256, utils.HashSchemeBcrypt:
	default:
		return fmt.Errorf("%w: unknown password hash scheme %q", ErrInvalidAppConfigs, cfg.App.PasswordHashScheme)
	}

	if cfg.App.BcryptCost != 0 && (cfg.App.BcryptCost < bcrypt.MinCost || cfg.App.BcryptCost > bcrypt.MaxCost) {
		return fmt.Errorf("%w: bcrypt cost %d out of range", ErrInvalidAppConfigs, cfg.App.BcryptCost)
	}

	if cfg.Log.FilePath == "" {
		return fmt.Errorf("%w: empty log file path", ErrInvalidLogConfigs)
	}

	if _, err := zerolog.ParseLevel(cfg.Log.Level); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidLogConfigs, err)
	}

	return nil
}
