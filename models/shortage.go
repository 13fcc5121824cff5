// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Room is a shared space where a shortage can be reported.
type Room string

// Supported rooms.
const (
	RoomKitchen     Room = "kitchen"
	RoomMeetingRoom Room = "meeting room"
	RoomBathroom    Room = "bathroom"
)

// Rooms lists every accepted [Room] in display order.
var Rooms = []Room{RoomKitchen, RoomMeetingRoom, RoomBathroom}

// Valid reports whether r is one of the supported rooms. Matching is exact.
func (r Room) Valid() bool {
	for _, room := range Rooms {
		if r == room {
			return true
		}
	}
	return false
}

// Category classifies what kind of item is missing.
type Category string

// Supported categories.
const (
	CategoryElectronics Category = "Electronics"
	CategoryFood        Category = "Food"
	CategoryOther       Category = "Other"
)

// Categories lists every accepted [Category] in display order.
var Categories = []Category{CategoryElectronics, CategoryFood, CategoryOther}

// Valid reports whether c is one of the supported categories. Matching is exact.
func (c Category) Valid() bool {
	for _, category := range Categories {
		if c == category {
			return true
		}
	}
	return false
}

// Priority bounds, inclusive.
const (
	MinPriority = 1
	MaxPriority = 10
)

// Shortage is a report about an item missing from a shared room.
//
// Two shortages with the same [Shortage.Key] describe the same logical
// shortage; a store keeps at most one of them.
type Shortage struct {
	Title        string   `json:"title"`
	ReporterName string   `json:"reporterName"`
	Room         Room     `json:"room"`
	Category     Category `json:"category"`
	Priority     int      `json:"priority"`
	CreatedOn    Date     `json:"createdOn"`
}

// NewShortage builds a validated [Shortage]. Any invalid field yields an
// error wrapping [ErrValidation] and a zero Shortage.
func NewShortage(title, reporterName string, room Room, category Category, priority int, createdOn Date) (Shortage, error) {
	s := Shortage{
		Title:        title,
		ReporterName: reporterName,
		Room:         room,
		Category:     category,
		Priority:     priority,
		CreatedOn:    createdOn,
	}

	if err := s.Validate(); err != nil {
		return Shortage{}, err
	}

	return s, nil
}

// Shortage field names accepted by [Shortage.ValidateField].
const (
	ShortageFieldTitle     = "title"
	ShortageFieldReporter  = "reporter"
	ShortageFieldRoom      = "room"
	ShortageFieldCategory  = "category"
	ShortageFieldPriority  = "priority"
	ShortageFieldCreatedOn = "created_on"
)

// ShortageFields lists every field in the order [Shortage.Validate] checks them.
var ShortageFields = []string{
	ShortageFieldTitle,
	ShortageFieldReporter,
	ShortageFieldRoom,
	ShortageFieldCategory,
	ShortageFieldPriority,
	ShortageFieldCreatedOn,
}

// Validate checks every field invariant of s and returns the first failure.
func (s Shortage) Validate() error {
	for _, field := range ShortageFields {
		if err := s.ValidateField(field); err != nil {
			return err
		}
	}
	return nil
}

// ValidateField checks a single named field of s.
func (s Shortage) ValidateField(field string) error {
	switch field {
	case ShortageFieldTitle:
		if strings.TrimSpace(s.Title) == "" {
			return ErrEmptyTitle
		}
	case ShortageFieldReporter:
		if strings.TrimSpace(s.ReporterName) == "" {
			return ErrEmptyReporter
		}
	case ShortageFieldRoom:
		if !s.Room.Valid() {
			return ErrInvalidRoom
		}
	case ShortageFieldCategory:
		if !s.Category.Valid() {
			return ErrInvalidCategory
		}
	case ShortageFieldPriority:
		if s.Priority < MinPriority || s.Priority > MaxPriority {
			return ErrInvalidPriority
		}
	case ShortageFieldCreatedOn:
		if s.CreatedOn.IsZero() {
			return ErrEmptyCreatedOn
		}
	default:
		return fmt.Errorf("%w: %q", ErrUnknownField, field)
	}
	return nil
}

// Key returns the composite identity key of s.
func (s Shortage) Key() string {
	return ShortageKey(s.Title, string(s.Room))
}

// ShortageKey derives the composite identity key from a title and a room:
// lower(title) + "-" + lower(room). Insertion and deletion must both go
// through this function.
func ShortageKey(title, room string) string {
	return strings.ToLower(title + "-" + room)
}

// UnmarshalJSON decodes a shortage, also accepting documents written by the
// earlier console tool, which stored the reporter under "Name".
func (s *Shortage) UnmarshalJSON(b []byte) error {
	type plain Shortage
	var doc struct {
		plain
		LegacyName string `json:"name"`
	}

	if err := json.Unmarshal(b, &doc); err != nil {
		return err
	}

	*s = Shortage(doc.plain)
	if s.ReporterName == "" {
		s.ReporterName = doc.LegacyName
	}

	return nil
}

func joinRooms() string {
	names := make([]string, 0, len(Rooms))
	for _, r := range Rooms {
		names = append(names, string(r))
	}
	return strings.Join(names, ", ")
}

func joinCategories() string {
	names := make([]string, 0, len(Categories))
	for _, c := range Categories {
		names = append(names, string(c))
	}
	return strings.Join(names, ", ")
}
