// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/MKhiriev/go-shortage-keeper/internal/logger"
)

// jsonFileStorage keeps a record map in one pretty-printed JSON object
// whose keys are the record keys.
type jsonFileStorage[T Record] struct {
	path string

	mu     sync.RWMutex
	logger *logger.Logger
}

// NewJSONFileStorage returns a [RecordStorage] backed by the JSON file at path.
// The file is created on the first Save.
func NewJSONFileStorage[T Record](path string, log *logger.Logger) RecordStorage[T] {
	log.Debug().Str("func", "NewJSONFileStorage").Str("path", path).Msg("creating json file storage")
	return &jsonFileStorage[T]{
		path:   path,
		logger: log,
	}
}

func (s *jsonFileStorage[T]) Load(ctx context.Context) (map[string]T, error) {
	log := logger.FromContext(ctx)

	s.mu.RLock()
	defer s.mu.RUnlock()

	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			log.Debug().Str("func", "*jsonFileStorage.Load").Str("path", s.path).Msg("storage file does not exist yet")
			return make(map[string]T), nil
		}
		return nil, fmt.Errorf("read storage file: %w", err)
	}

	if len(bytes.TrimSpace(data)) == 0 {
		return make(map[string]T), nil
	}

	var records map[string]T
	if err = json.Unmarshal(data, &records); err != nil {
		log.Err(err).Str("func", "*jsonFileStorage.Load").Str("path", s.path).Msg("error decoding storage file")
		return nil, fmt.Errorf("%w: decode %s: %w", ErrPersistenceCorrupt, s.path, err)
	}
	if records == nil {
		records = make(map[string]T)
	}

	if err = checkRecords(records); err != nil {
		log.Err(err).Str("func", "*jsonFileStorage.Load").Str("path", s.path).Msg("invalid record in storage file")
		return nil, err
	}

	return records, nil
}

func (s *jsonFileStorage[T]) Save(ctx context.Context, records map[string]T) error {
	log := logger.FromContext(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	dir := filepath.Dir(s.path)
	if dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create storage dir: %w", err)
		}
	}

	if records == nil {
		records = make(map[string]T)
	}

	payload, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("encode storage: %w", err)
	}

	if err = os.WriteFile(s.path, payload, 0o600); err != nil {
		log.Err(err).Str("func", "*jsonFileStorage.Save").Str("path", s.path).Msg("error writing storage file")
		return fmt.Errorf("write storage file: %w", err)
	}

	log.Debug().Str("func", "*jsonFileStorage.Save").Str("path", s.path).Int("records", len(records)).Msg("storage file written")
	return nil
}
