// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/MKhiriev/go-shortage-keeper/internal/logger"
)

// sqliteRecordStorage keeps a record map as one collection of the records
// table. Each row holds the JSON document of a single record.
type sqliteRecordStorage[T Record] struct {
	db         *DB
	collection string
	logger     *logger.Logger
}

// NewSQLiteRecordStorage returns a [RecordStorage] over the given collection
// of db. The schema must already be migrated.
func NewSQLiteRecordStorage[T Record](db *DB, collection string, log *logger.Logger) RecordStorage[T] {
	log.Debug().Str("func", "NewSQLiteRecordStorage").Str("collection", collection).Msg("creating sqlite record storage")
	return &sqliteRecordStorage[T]{
		db:         db,
		collection: collection,
		logger:     log,
	}
}

func (s *sqliteRecordStorage[T]) Load(ctx context.Context) (map[string]T, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectCollectionQuery(s.collection)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*sqliteRecordStorage.Load").Str("collection", s.collection).Msg("error querying records")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	records := make(map[string]T)
	for rows.Next() {
		var (
			key     string
			payload string
		)
		if err = rows.Scan(&key, &payload); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}

		var record T
		if err = json.Unmarshal([]byte(payload), &record); err != nil {
			log.Err(err).Str("func", "*sqliteRecordStorage.Load").Str("key", key).Msg("error decoding record payload")
			return nil, fmt.Errorf("%w: decode record %q: %w", ErrPersistenceCorrupt, key, err)
		}
		records[key] = record
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	if err = checkRecords(records); err != nil {
		log.Err(err).Str("func", "*sqliteRecordStorage.Load").Str("collection", s.collection).Msg("invalid record in collection")
		return nil, err
	}

	return records, nil
}

// Save replaces the whole collection inside one transaction.
func (s *sqliteRecordStorage[T]) Save(ctx context.Context, records map[string]T) (err error) {
	log := logger.FromContext(ctx)

	keys := sortedKeys(records)
	payloads := make([][]byte, 0, len(keys))
	for _, key := range keys {
		payload, marshalErr := json.Marshal(records[key])
		if marshalErr != nil {
			return fmt.Errorf("encode record %q: %w", key, marshalErr)
		}
		payloads = append(payloads, payload)
	}

	deleteQuery, deleteArgs, err := buildDeleteCollectionQuery(s.collection)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "*sqliteRecordStorage.Save").Msg("error beginning transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	if _, err = tx.ExecContext(ctx, deleteQuery, deleteArgs...); err != nil {
		log.Err(err).Str("func", "*sqliteRecordStorage.Save").Str("collection", s.collection).Msg("error clearing collection")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	for start := 0; start < len(keys); start += maxRecordsPerInsert {
		end := min(start+maxRecordsPerInsert, len(keys))

		insertQuery, insertArgs, buildErr := buildInsertRecordsQuery(s.collection, keys[start:end], payloads[start:end])
		if buildErr != nil {
			return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, buildErr)
		}

		if _, err = tx.ExecContext(ctx, insertQuery, insertArgs...); err != nil {
			log.Err(err).Str("func", "*sqliteRecordStorage.Save").Str("collection", s.collection).Int("offset", start).Msg("error inserting records")
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).Str("func", "*sqliteRecordStorage.Save").Msg("error committing transaction")
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	log.Debug().Str("func", "*sqliteRecordStorage.Save").Str("collection", s.collection).Int("records", len(keys)).Msg("collection saved")
	return nil
}
