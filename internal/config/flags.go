package config

import (
	"flag"
	"fmt"
	"io"
)

// parseFlags parses the command-line configuration flags in args.
//
// Flags:
//
//	-storage storage backend: json or sqlite
//	-accounts-file accounts JSON file path
//	-shortages-file shortages JSON file path
//	-d SQLite database DSN
//	-hash-scheme password hash scheme: sha256 or bcrypt
//	-bcrypt-cost bcrypt work factor
//	-log-file log file path
//	-log-level log level (debug, info, warn, error)
//	-c/-config JSON or TOML file path with configs
func parseFlags(args []string) (*StructuredConfig, error) {
	var cfg StructuredConfig

	fs := flag.NewFlagSet("shortages", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&cfg.Storage.Backend, "storage", "", "Storage backend: json or sqlite")
	fs.StringVar(&cfg.Storage.Files.AccountsPath, "accounts-file", "", "Accounts JSON file path")
	fs.StringVar(&cfg.Storage.Files.ShortagesPath, "shortages-file", "", "Shortages JSON file path")
	fs.StringVar(&cfg.Storage.DB.DSN, "d", "", "SQLite database DSN")
	fs.StringVar(&cfg.App.PasswordHashScheme, "hash-scheme", "", "Password hash scheme: sha256 or bcrypt")
	fs.IntVar(&cfg.App.BcryptCost, "bcrypt-cost", 0, "Bcrypt work factor")
	fs.StringVar(&cfg.Log.FilePath, "log-file", "", "Log file path")
	fs.StringVar(&cfg.Log.Level, "log-level", "", "Log level")
	fs.StringVar(&cfg.ConfigFilePath, "c", "", "JSON or TOML config file path")
	fs.StringVar(&cfg.ConfigFilePath, "config", "", "JSON or TOML config file path (alias)")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &cfg, nil
}
