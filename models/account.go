// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"fmt"
	"strings"
)

// Account represents a registered user of the shortage tracker.
// Accounts are created once at registration and are never mutated afterwards.
type Account struct {
	// Name is the unique, case-sensitive account identifier.
	// It is also the key under which the account is persisted.
	Name string `json:"name"`

	// IsAdmin grants unrestricted read and delete access to every shortage.
	IsAdmin bool `json:"isAdmin"`

	// HashedPassword stores the one-way digest of the account password.
	// It MUST never contain the plaintext password.
	HashedPassword string `json:"hashedPassword"`
}

// Key returns the identity under which a is stored.
func (a Account) Key() string {
	return a.Name
}

// Validate checks the invariants of a persisted account.
func (a Account) Validate() error {
	if strings.TrimSpace(a.Name) == "" {
		return fmt.Errorf("%w: name cannot be empty", ErrValidation)
	}
	if a.HashedPassword == "" {
		return fmt.Errorf("%w: password hash cannot be empty", ErrValidation)
	}
	return nil
}
