package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, name, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(p, []byte(body), 0o600))
	return p
}

func TestParseJSON_Success(t *testing.T) {
	// Arrange
	p := writeConfigFile(t, "config.json", `{
		"app": { "password_hash_scheme": "bcrypt", "bcrypt_cost": 10 },
		"storage": {
			"backend": "sqlite",
			"files": { "accounts_path": "u.json", "shortages_path": "s.json" },
			"db": { "dsn": "/tmp/s.db" }
		},
		"log": { "file_path": "app.log", "level": "warn" }
	}`)

	// Act
	cfg, err := parseConfigFile(p)

	// Assert
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "bcrypt", cfg.App.PasswordHashScheme)
	assert.Equal(t, 10, cfg.App.BcryptCost)
	assert.Equal(t, "sqlite", cfg.Storage.Backend)
	assert.Equal(t, "u.json", cfg.Storage.Files.AccountsPath)
	assert.Equal(t, "s.json", cfg.Storage.Files.ShortagesPath)
	assert.Equal(t, "/tmp/s.db", cfg.Storage.DB.DSN)
	assert.Equal(t, "app.log", cfg.Log.FilePath)
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Empty(t, cfg.ConfigFilePath)
}

func TestParseTOML_Success(t *testing.T) {
	// Arrange
	p := writeConfigFile(t, "config.toml", `
[app]
password_hash_scheme = "sha256"

[storage]
backend = "json"

[storage.files]
accounts_path = "people.json"
shortages_path = "needs.json"

[log]
level = "debug"
`)

	// Act
	cfg, err := parseConfigFile(p)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "sha256", cfg.App.PasswordHashScheme)
	assert.Equal(t, "json", cfg.Storage.Backend)
	assert.Equal(t, "people.json", cfg.Storage.Files.AccountsPath)
	assert.Equal(t, "needs.json", cfg.Storage.Files.ShortagesPath)
	assert.Empty(t, cfg.Storage.DB.DSN)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestParseConfigFile_Errors(t *testing.T) {
	tests := []struct {
		name    string
		path    func(t *testing.T) string
		wantMsg string
	}{
		{
			name:    "json not found",
			path:    func(*testing.T) string { return "definitely-does-not-exist.json" },
			wantMsg: "error reading a json file",
		},
		{
			name:    "toml not found",
			path:    func(*testing.T) string { return "definitely-does-not-exist.toml" },
			wantMsg: "error reading a toml file",
		},
		{
			name:    "invalid json",
			path:    func(t *testing.T) string { return writeConfigFile(t, "bad.json", `{ this is not json }`) },
			wantMsg: "error decoding json configs",
		},
		{
			name:    "invalid toml",
			path:    func(t *testing.T) string { return writeConfigFile(t, "bad.TOML", "[log\nlevel=") },
			wantMsg: "error decoding toml configs",
		},
		{
			name:    "wrong type",
			path:    func(t *testing.T) string { return writeConfigFile(t, "type.json", `{"app":{"bcrypt_cost":"ten"}}`) },
			wantMsg: "error decoding json configs",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := parseConfigFile(tt.path(t))
			require.Error(t, err)
			assert.Nil(t, cfg)
			assert.Contains(t, err.Error(), tt.wantMsg)
		})
	}
}

func TestParseJSON_EmptyObject(t *testing.T) {
	p := writeConfigFile(t, "empty.json", `{}`)

	cfg, err := parseConfigFile(p)

	require.NoError(t, err)
	assert.Equal(t, StructuredConfig{}, *cfg)
}
