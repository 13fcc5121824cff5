// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"

	"github.com/rs/zerolog"
)

// Storage backend names accepted by [Storage.Backend].
const (
	// BackendJSON keeps each store in its own pretty-printed JSON file.
	BackendJSON = "json"
	// BackendSQLite keeps both stores in one SQLite database.
	BackendSQLite = "sqlite"
)

// StructuredConfig is the top-level configuration container for the
// shortage-keeper application. It aggregates all sub-configurations and is
// populated by merging defaults, environment variables, command-line flags,
// and an optional JSON or TOML file.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds account security settings.
	App App `envPrefix:"APP_"`

	// Storage selects the persistence backend and its locations.
	Storage Storage `envPrefix:"STORAGE_"`

	// Log holds the client log file settings.
	Log Log `envPrefix:"LOG_"`

	// ConfigFilePath is the optional path to a JSON or TOML configuration
	// file. The format is chosen by extension (".toml" means TOML, anything
	// else is read as JSON).
	// Populated via the CONFIG environment variable or the -c / -config flag.
	ConfigFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values that control how account
// passwords are hashed.
type App struct {
	// PasswordHashScheme selects the digest used for new registrations:
	// "sha256" (default, compatible with existing account files) or "bcrypt".
	// Env: APP_PASSWORD_HASH_SCHEME
	PasswordHashScheme string `env:"PASSWORD_HASH_SCHEME"`

	// BcryptCost is the bcrypt work factor; zero selects the library default.
	// Env: APP_BCRYPT_COST
	BcryptCost int `env:"BCRYPT_COST"`
}

// Storage groups the configuration for the persistence backends.
type Storage struct {
	// Backend is either "json" or "sqlite".
	// Env: STORAGE_BACKEND
	Backend string `env:"BACKEND"`

	// Files holds the JSON file locations used by the json backend.
	Files Files `envPrefix:"FILES_"`

	// DB holds the SQLite settings used by the sqlite backend.
	DB DB `envPrefix:"DB_"`
}

// Files holds the locations of the JSON store files.
type Files struct {
	// AccountsPath is the file holding the account map.
	// Env: STORAGE_FILES_ACCOUNTS_PATH
	AccountsPath string `env:"ACCOUNTS_PATH"`

	// ShortagesPath is the file holding the shortage map.
	// Env: STORAGE_FILES_SHORTAGES_PATH
	ShortagesPath string `env:"SHORTAGES_PATH"`
}

// DB holds connection settings for the SQLite backend.
type DB struct {
	// DSN is the SQLite database path or URI (e.g. "shortages.db").
	// Env: STORAGE_DB_DSN
	DSN string `env:"DSN"`
}

// Log holds settings of the client log file.
type Log struct {
	// FilePath is where log entries are appended.
	// Env: LOG_FILE_PATH
	FilePath string `env:"FILE_PATH"`

	// Level is a zerolog level name ("debug", "info", "warn", ...).
	// Env: LOG_LEVEL
	Level string `env:"LEVEL"`
}

// ZerologLevel returns the parsed log level. An unparseable value yields
// zerolog.InfoLevel; [StructuredConfig.validate] rejects such values earlier.
func (l Log) ZerologLevel() zerolog.Level {
	level, err := zerolog.ParseLevel(l.Level)
	if err != nil {
		return zerolog.InfoLevel
	}
	return level
}

// defaultConfig returns the values used when no other source sets a field.
func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			PasswordHashScheme: "sha256",
		},
		Storage: Storage{
			Backend: BackendJSON,
			Files: Files{
				AccountsPath:  "users.json",
				ShortagesPath: "shortages.json",
			},
			DB: DB{
				DSN: "shortages.db",
			},
		},
		Log: Log{
			FilePath: "shortages.log",
			Level:    "info",
		},
	}
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (later sources override earlier non-zero fields):
//  1. Built-in defaults
//  2. Environment variables
//  3. Command-line flags
//  4. JSON or TOML file (path resolved from sources 2 and 3)
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig() (*StructuredConfig, error) {
	return getStructuredConfig(os.Args[1:])
}

func getStructuredConfig(args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withDefaults().
		withEnv().
		withFlags(args).
		withFile().
		build()
}
