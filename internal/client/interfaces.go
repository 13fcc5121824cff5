// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"

	"github.com/MKhiriev/go-shortage-keeper/models"
)

// Client defines the minimal lifecycle contract for runnable client
// applications.
type Client interface {
	// Run starts the client application and blocks until exit.
	Run(ctx context.Context) error
}

// UI is the interactive front end driven by [App].
type UI interface {
	// LoginFlow blocks until an account is authenticated.
	LoginFlow(ctx context.Context) (models.Account, error)
	// MainLoop serves one login session. logout reports whether the user
	// asked to switch accounts instead of exiting.
	MainLoop(ctx context.Context, account models.Account) (logout bool, err error)
}
