// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// AddOutcome is the result of submitting a shortage to the store.
type AddOutcome int

const (
	// ShortageAdded means no shortage existed under the key and the new one was stored.
	ShortageAdded AddOutcome = iota + 1
	// ShortageUpgraded means the stored shortage was replaced by one with a strictly higher priority.
	ShortageUpgraded
	// ShortageRejected means a shortage with an equal or higher priority already exists.
	ShortageRejected
)

// String returns the user-facing message for the outcome.
func (o AddOutcome) String() string {
	switch o {
	case ShortageAdded:
		return "Shortage added successfully"
	case ShortageUpgraded:
		return "Shortage updated with higher priority"
	case ShortageRejected:
		return "Shortage already exists with equal or higher priority"
	default:
		return "unknown outcome"
	}
}

// RemoveOutcome is the result of a delete request.
type RemoveOutcome int

const (
	// ShortageDeleted means the shortage was removed and the change persisted.
	ShortageDeleted RemoveOutcome = iota + 1
	// ShortageNotFound means nothing is stored under the derived key.
	ShortageNotFound
	// ShortageForbidden means the actor is neither the reporter nor an admin.
	ShortageForbidden
)

// String returns the user-facing message for the outcome.
func (o RemoveOutcome) String() string {
	switch o {
	case ShortageDeleted:
		return "Shortage deleted successfully"
	case ShortageNotFound:
		return "Shortage not found"
	case ShortageForbidden:
		return "You do not have permission to delete this shortage"
	default:
		return "unknown outcome"
	}
}
