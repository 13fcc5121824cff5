//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock
package store

import (
	"context"

	"github.com/MKhiriev/go-shortage-keeper/models"
)

// Record is a value a [RecordStorage] can persist. Key is the identity the
// record is stored under; Validate reports whether a loaded record is sound.
type Record interface {
	Key() string
	Validate() error
}

// RecordStorage mirrors one in-memory record map to durable storage.
//
// Load is called once when a store is constructed; Save rewrites the whole
// mapping after every mutation. There is no incremental persistence.
type RecordStorage[T Record] interface {
	// Load returns the persisted mapping. A missing or empty source yields an
	// empty map; malformed content yields an error wrapping
	// [ErrPersistenceCorrupt].
	Load(ctx context.Context) (map[string]T, error)
	// Save replaces the persisted mapping with records.
	Save(ctx context.Context, records map[string]T) error
}

// AccountStorage persists registered accounts keyed by name.
type AccountStorage = RecordStorage[models.Account]

// ShortageStorage persists shortages keyed by [models.ShortageKey].
type ShortageStorage = RecordStorage[models.Shortage]
