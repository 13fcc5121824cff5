// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "strings"

// ShortageFilter holds the optional predicates of a filtered listing.
//
// A nil field is a no-op. Blank strings behave like nil, so a form can pass
// its raw input through unchanged. Supplied predicates are combined with AND.
type ShortageFilter struct {
	// Title keeps shortages whose title contains this text, case-insensitively.
	Title *string
	// CreatedFrom is an inclusive lower bound on CreatedOn.
	CreatedFrom *Date
	// CreatedTo is an inclusive upper bound on CreatedOn.
	CreatedTo *Date
	// Category keeps shortages with exactly this category.
	Category *Category
	// Room keeps shortages located in exactly this room.
	Room *Room
}

// Match reports whether s satisfies every supplied predicate of f.
func (f ShortageFilter) Match(s Shortage) bool {
	if !blank(f.Title) {
		if !strings.Contains(strings.ToLower(s.Title), strings.ToLower(*f.Title)) {
			return false
		}
	}
	if f.CreatedFrom != nil && s.CreatedOn.Before(*f.CreatedFrom) {
		return false
	}
	if f.CreatedTo != nil && s.CreatedOn.After(*f.CreatedTo) {
		return false
	}
	if !blank((*string)(f.Category)) && s.Category != *f.Category {
		return false
	}
	if !blank((*string)(f.Room)) && s.Room != *f.Room {
		return false
	}
	return true
}

// IsEmpty reports whether f has no effective predicate.
func (f ShortageFilter) IsEmpty() bool {
	return blank(f.Title) &&
		f.CreatedFrom == nil &&
		f.CreatedTo == nil &&
		blank((*string)(f.Category)) &&
		blank((*string)(f.Room))
}

func blank(s *string) bool {
	return s == nil || strings.TrimSpace(*s) == ""
}
