package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidStorageConfigs indicates invalid storage settings
	// (for example, an unknown backend or an empty DSN).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidAppConfigs indicates invalid password hashing settings.
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidLogConfigs indicates an unusable log file path or level.
	ErrInvalidLogConfigs = errors.New("invalid log configuration")
)
