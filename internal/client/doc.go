// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the interactive application runtime.
//
// It alternates the login flow and the shortage main loop until the user
// exits, and tags every log entry of a login session with a session id.
package client
