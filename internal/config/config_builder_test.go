package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── helpers ───────────────────────────────────────────────────────────────────

func writeTempJSONConfig(t *testing.T, v any) string {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	f, err := os.CreateTemp(t.TempDir(), "config-*.json")
	require.NoError(t, err)
	_, err = f.Write(data)
	require.NoError(t, err)
	require.NoError(t, f.Close())
	return f.Name()
}

// ── newConfigBuilder ──────────────────────────────────────────────────────────

func TestNewConfigBuilder_InitialState(t *testing.T) {
	b := newConfigBuilder()
	require.NotNil(t, b)
	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
}

// ── build ─────────────────────────────────────────────────────────────────────

// TestBuild_EmptyBuilder verifies that a config with no sources fails
// validation because no backend is selected.
func TestBuild_EmptyBuilder(t *testing.T) {
	cfg, err := newConfigBuilder().build()
	assert.Nil(t, cfg)
	assert.ErrorIs(t, err, ErrInvalidStorageConfigs)
}

func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

func TestBuild_DefaultsOnly(t *testing.T) {
	cfg, err := newConfigBuilder().withDefaults().build()
	require.NoError(t, err)
	assert.Equal(t, defaultConfig(), cfg)
}

// TestBuild_LaterSourcesOverride verifies that non-zero fields of later
// configs override earlier ones while zero fields keep earlier values.
func TestBuild_LaterSourcesOverride(t *testing.T) {
	b := newConfigBuilder().withDefaults()
	b.configs = append(b.configs,
		&StructuredConfig{Storage: Storage{Files: Files{AccountsPath: "first.json"}}},
		&StructuredConfig{Storage: Storage{Files: Files{AccountsPath: "second.json"}}, Log: Log{Level: "debug"}},
	)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "second.json", cfg.Storage.Files.AccountsPath)
	assert.Equal(t, "shortages.json", cfg.Storage.Files.ShortagesPath)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, BackendJSON, cfg.Storage.Backend)
}

func TestBuild_ReturnsValidationError(t *testing.T) {
	b := newConfigBuilder().withDefaults()
	b.configs = append(b.configs, &StructuredConfig{App: App{PasswordHashScheme: "md5"}})

	cfg, err := b.build()
	assert.Nil(t, cfg)
	assert.ErrorIs(t, err, ErrInvalidAppConfigs)
}

// ── withEnv ───────────────────────────────────────────────────────────────────

func TestWithEnv_ReturnsBuilder(t *testing.T) {
	b := newConfigBuilder()
	assert.Same(t, b, b.withEnv())
}

func TestWithEnv_ReadsEnvVars(t *testing.T) {
	t.Setenv("STORAGE_BACKEND", "sqlite")
	t.Setenv("LOG_LEVEL", "warn")

	b := newConfigBuilder()
	b.withEnv()

	require.Len(t, b.configs, 1)
	assert.Equal(t, "sqlite", b.configs[0].Storage.Backend)
	assert.Equal(t, "warn", b.configs[0].Log.Level)
}

func TestWithEnv_SetsErrorOnBadValue(t *testing.T) {
	t.Setenv("APP_BCRYPT_COST", "twelve")

	b := newConfigBuilder()
	b.withEnv()

	assert.Error(t, b.err)
	assert.Empty(t, b.configs)
}

// ── withFlags ─────────────────────────────────────────────────────────────────

func TestWithFlags_ReturnsBuilder(t *testing.T) {
	b := newConfigBuilder()
	assert.Same(t, b, b.withFlags(nil))
}

func TestWithFlags_SetsErrorOnUnknownFlag(t *testing.T) {
	b := newConfigBuilder()
	b.withFlags([]string{"-no-such-flag"})

	assert.Error(t, b.err)
	assert.Empty(t, b.configs)
}

// ── withFile ──────────────────────────────────────────────────────────────────

func TestWithFile_NoOp_WhenNoPathSet(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{})
	b.withFile()

	assert.Len(t, b.configs, 1)
	assert.NoError(t, b.err)
}

func TestWithFile_AppendsConfig_WhenValidJSON(t *testing.T) {
	payload := StructuredFileConfig{}
	payload.Storage.Backend = "sqlite"
	payload.Storage.DB.DSN = "file.db"
	path := writeTempJSONConfig(t, payload)

	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{ConfigFilePath: path})
	b.withFile()

	require.NoError(t, b.err)
	require.Len(t, b.configs, 2)
	assert.Equal(t, "sqlite", b.configs[1].Storage.Backend)
	assert.Equal(t, "file.db", b.configs[1].Storage.DB.DSN)
}

func TestWithFile_AppendsConfig_WhenValidTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[log]\nlevel = \"error\"\n"), 0o600))

	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{ConfigFilePath: path})
	b.withFile()

	require.NoError(t, b.err)
	require.Len(t, b.configs, 2)
	assert.Equal(t, "error", b.configs[1].Log.Level)
}

func TestWithFile_SetsError_WhenFileNotFound(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{
		ConfigFilePath: "/nonexistent/config.json",
	})
	b.withFile()

	assert.Error(t, b.err)
}

// TestWithFile_UsesLastPath verifies that when multiple configs have a
// ConfigFilePath, the last non-empty one wins.
func TestWithFile_UsesLastPath(t *testing.T) {
	first := StructuredFileConfig{}
	first.Log.Level = "debug"
	last := StructuredFileConfig{}
	last.Log.Level = "warn"

	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{ConfigFilePath: writeTempJSONConfig(t, first)},
		&StructuredConfig{ConfigFilePath: writeTempJSONConfig(t, last)},
	)
	b.withFile()

	require.NoError(t, b.err)
	require.Len(t, b.configs, 3)
	assert.Equal(t, "warn", b.configs[2].Log.Level)
}

// ── getStructuredConfig ───────────────────────────────────────────────────────

// TestGetStructuredConfig_Priority verifies defaults < env < flags < file.
func TestGetStructuredConfig_Priority(t *testing.T) {
	payload := StructuredFileConfig{}
	payload.Log.Level = "error"
	path := writeTempJSONConfig(t, payload)

	t.Setenv("STORAGE_FILES_ACCOUNTS_PATH", "env-users.json")
	t.Setenv("STORAGE_FILES_SHORTAGES_PATH", "env-shortages.json")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := getStructuredConfig([]string{"-shortages-file", "flag-shortages.json", "-c", path})
	require.NoError(t, err)

	assert.Equal(t, "env-users.json", cfg.Storage.Files.AccountsPath)
	assert.Equal(t, "flag-shortages.json", cfg.Storage.Files.ShortagesPath)
	assert.Equal(t, "error", cfg.Log.Level)
	assert.Equal(t, "shortages.log", cfg.Log.FilePath)
	assert.Equal(t, path, cfg.ConfigFilePath)
}
