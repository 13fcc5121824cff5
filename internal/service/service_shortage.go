// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"cmp"
	"context"
	"fmt"
	"maps"
	"slices"
	"sync"

	"github.com/MKhiriev/go-shortage-keeper/internal/logger"
	"github.com/MKhiriev/go-shortage-keeper/internal/store"
	"github.com/MKhiriev/go-shortage-keeper/models"
)

// shortageService keeps every shortage in memory, keyed by
// [models.ShortageKey], and writes the whole map through to storage after
// every mutation.
type shortageService struct {
	// mu guards shortages and the write-through to storage.
	mu        sync.RWMutex
	shortages map[string]models.Shortage

	storage store.ShortageStorage
	logger  *logger.Logger
}

// NewShortageService loads the persisted shortages and returns a service
// over them.
func NewShortageService(ctx context.Context, storage store.ShortageStorage, log *logger.Logger) (ShortageService, error) {
	shortages, err := storage.Load(ctx)
	if err != nil {
		log.Err(err).Str("func", "NewShortageService").Msg("error loading shortages")
		return nil, fmt.Errorf("error loading shortages: %w", err)
	}

	log.Debug().Int("shortages", len(shortages)).Msg("shortage store loaded")

	return &shortageService{
		shortages: shortages,
		storage:   storage,
		logger:    log,
	}, nil
}

// Add stores shortage unless a record with the same key and an equal or
// higher priority already exists. A strictly higher priority replaces the
// stored record as a whole, reporter included.
//
// The shortage is assumed to be valid; see [ShortageValidationService].
func (s *shortageService) Add(ctx context.Context, shortage models.Shortage) (models.AddOutcome, error) {
	key := shortage.Key()
	log := logger.FromContext(ctx).With().Str("key", key).Logger()

	s.mu.Lock()
	defer s.mu.Unlock()

	existing, exists := s.shortages[key]

	outcome := models.ShortageAdded
	if exists {
		if shortage.Priority <= existing.Priority {
			log.Info().Int("priority", shortage.Priority).Int("stored_priority", existing.Priority).Msg("shortage rejected")
			return models.ShortageRejected, nil
		}
		outcome = models.ShortageUpgraded
	}

	s.shortages[key] = shortage
	if err := s.storage.Save(ctx, maps.Clone(s.shortages)); err != nil {
		if exists {
			s.shortages[key] = existing
		} else {
			delete(s.shortages, key)
		}
		log.Err(err).Msg("error saving shortages")
		return 0, fmt.Errorf("error saving shortages: %w", err)
	}

	log.Info().Stringer("outcome", outcome).Msg("shortage stored")
	return outcome, nil
}

// Remove deletes the shortage identified by title and room if actor may
// manage it.
func (s *shortageService) Remove(ctx context.Context, title string, room models.Room, actor models.Account) (models.RemoveOutcome, error) {
	key := models.ShortageKey(title, string(room))
	log := logger.FromContext(ctx).With().Str("key", key).Str("actor", actor.Name).Logger()

	s.mu.Lock()
	defer s.mu.Unlock()

	existing, exists := s.shortages[key]
	if !exists {
		log.Info().Msg("shortage to remove not found")
		return models.ShortageNotFound, nil
	}

	if !CanManage(actor, existing) {
		log.Warn().Str("reporter", existing.ReporterName).Msg("shortage removal forbidden")
		return models.ShortageForbidden, nil
	}

	delete(s.shortages, key)
	if err := s.storage.Save(ctx, maps.Clone(s.shortages)); err != nil {
		s.shortages[key] = existing
		log.Err(err).Msg("error saving shortages")
		return 0, fmt.Errorf("error saving shortages: %w", err)
	}

	log.Info().Msg("shortage removed")
	return models.ShortageDeleted, nil
}

// List returns every shortage actor may see, highest priority first.
func (s *shortageService) List(ctx context.Context, actor models.Account) []models.Shortage {
	return s.ListFiltered(ctx, actor, models.ShortageFilter{})
}

// ListFiltered narrows [shortageService.List] to the shortages matching
// every supplied predicate of filter.
func (s *shortageService) ListFiltered(_ context.Context, actor models.Account, filter models.ShortageFilter) []models.Shortage {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]models.Shortage, 0, len(s.shortages))
	for _, shortage := range s.shortages {
		if CanManage(actor, shortage) && filter.Match(shortage) {
			result = append(result, shortage)
		}
	}

	sortByPriority(result)
	return result
}

// sortByPriority orders shortages by descending priority. Equal priorities
// are ordered by key so listings are stable between calls.
func sortByPriority(shortages []models.Shortage) {
	slices.SortFunc(shortages, func(a, b models.Shortage) int {
		if c := cmp.Compare(b.Priority, a.Priority); c != 0 {
			return c
		}
		return cmp.Compare(a.Key(), b.Key())
	})
}
