package store

import (
	"context"
	"fmt"
	"io"

	"github.com/MKhiriev/go-shortage-keeper/internal/config"
	"github.com/MKhiriev/go-shortage-keeper/internal/logger"
	"github.com/MKhiriev/go-shortage-keeper/models"
)

// Storages groups the record storages of both stores so they can be handed
// to the service layer as one value.
type Storages struct {
	// Accounts persists registered accounts.
	Accounts AccountStorage
	// Shortages persists shortage records.
	Shortages ShortageStorage

	closer io.Closer
}

// NewStorages initialises the storage layer selected by cfg.Backend:
//   - "json": one JSON file per store at cfg.Files.
//   - "sqlite": one SQLite database at cfg.DB.DSN, migrated on open, with
//     one collection per store.
//
// Callers must Close the returned value.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	log.Info().Str("backend", cfg.Backend).Msg("creating new storages...")

	switch cfg.Backend {
	case config.BackendJSON:
		return &Storages{
			Accounts:  NewJSONFileStorage[models.Account](cfg.Files.AccountsPath, log),
			Shortages: NewJSONFileStorage[models.Shortage](cfg.Files.ShortagesPath, log),
		}, nil

	case config.BackendSQLite:
		db, err := NewConnectSQLite(ctx, cfg.DB, log)
		if err != nil {
			return nil, fmt.Errorf("sqlite connection error: %w", err)
		}

		if err = db.Migrate(); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("migration failed: %w", err)
		}

		return &Storages{
			Accounts:  NewSQLiteRecordStorage[models.Account](db, AccountsCollection, log),
			Shortages: NewSQLiteRecordStorage[models.Shortage](db, ShortagesCollection, log),
			closer:    db,
		}, nil

	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, cfg.Backend)
	}
}

// Close releases the database connection, if any.
func (s *Storages) Close() error {
	if s.closer == nil {
		return nil
	}
	return s.closer.Close()
}
