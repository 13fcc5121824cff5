// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"errors"
	"fmt"
)

// ErrValidation is wrapped by every error returned from [NewShortage] and
// [Shortage.Validate]. Callers match it with [errors.Is]; the wrapping error
// text describes which field was rejected.
var ErrValidation = errors.New("validation error")

// ErrUnknownField is returned when a field name passed to
// [Shortage.ValidateField] does not name a shortage field.
var ErrUnknownField = errors.New("unknown field for validation")

// Shortage field errors. Each wraps [ErrValidation].
var (
	ErrEmptyTitle      = fmt.Errorf("%w: title cannot be empty", ErrValidation)
	ErrEmptyReporter   = fmt.Errorf("%w: name cannot be empty", ErrValidation)
	ErrInvalidRoom     = fmt.Errorf("%w: room can either be: %s", ErrValidation, joinRooms())
	ErrInvalidCategory = fmt.Errorf("%w: category can either be: %s", ErrValidation, joinCategories())
	ErrInvalidPriority = fmt.Errorf("%w: priority is a number from %d to %d", ErrValidation, MinPriority, MaxPriority)
	ErrEmptyCreatedOn  = fmt.Errorf("%w: creation date is required", ErrValidation)
)
