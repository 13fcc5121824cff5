package store

import (
	"fmt"
	"slices"
)

// checkRecords verifies every loaded record against its own invariants and
// against the key it was stored under.
func checkRecords[T Record](records map[string]T) error {
	for key, record := range records {
		if err := record.Validate(); err != nil {
			return fmt.Errorf("%w: record %q: %w", ErrPersistenceCorrupt, key, err)
		}
		if record.Key() != key {
			return fmt.Errorf("%w: record %q is stored under key %q", ErrPersistenceCorrupt, record.Key(), key)
		}
	}
	return nil
}

func sortedKeys[T any](records map[string]T) []string {
	keys := make([]string, 0, len(records))
	for key := range records {
		keys = append(keys, key)
	}
	slices.Sort(keys)
	return keys
}
