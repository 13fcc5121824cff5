package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// StructuredFileConfig mirrors [StructuredConfig] for file-based
// configuration. The same document shape is accepted as JSON or TOML.
type StructuredFileConfig struct {
	App struct {
		PasswordHashScheme string `json:"password_hash_scheme" toml:"password_hash_scheme"`
		BcryptCost         int    `json:"bcrypt_cost" toml:"bcrypt_cost"`
	} `json:"app,omitempty" toml:"app"`

	Storage struct {
		Backend string `json:"backend" toml:"backend"`

		Files struct {
			AccountsPath  string `json:"accounts_path" toml:"accounts_path"`
			ShortagesPath string `json:"shortages_path" toml:"shortages_path"`
		} `json:"files,omitempty" toml:"files"`

		DB struct {
			DSN string `json:"dsn" toml:"dsn"`
		} `json:"db,omitempty" toml:"db"`
	} `json:"storage,omitempty" toml:"storage"`

	Log struct {
		FilePath string `json:"file_path" toml:"file_path"`
		Level    string `json:"level" toml:"level"`
	} `json:"log,omitempty" toml:"log"`
}

// parseConfigFile reads path as TOML when it has a ".toml" extension and as
// JSON otherwise.
func parseConfigFile(path string) (*StructuredConfig, error) {
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		return parseTOML(path)
	}
	return parseJSON(path)
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var fileCfg StructuredFileConfig
	if err := json.NewDecoder(jsonFile).Decode(&fileCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	return fileCfg.toStructured(), nil
}

func parseTOML(tomlFilePath string) (*StructuredConfig, error) {
	tomlFile, err := os.Open(tomlFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a toml file: %w", err)
	}
	defer tomlFile.Close()

	var fileCfg StructuredFileConfig
	if err := toml.NewDecoder(tomlFile).Decode(&fileCfg); err != nil {
		return nil, fmt.Errorf("error decoding toml configs: %w", err)
	}

	return fileCfg.toStructured(), nil
}

func (f *StructuredFileConfig) toStructured() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			PasswordHashScheme: f.App.PasswordHashScheme,
			BcryptCost:         f.App.BcryptCost,
		},
		Storage: Storage{
			Backend: f.Storage.Backend,
			Files: Files{
				AccountsPath:  f.Storage.Files.AccountsPath,
				ShortagesPath: f.Storage.Files.ShortagesPath,
			},
			DB: DB{
				DSN: f.Storage.DB.DSN,
			},
		},
		Log: Log{
			FilePath: f.Log.FilePath,
			Level:    f.Log.Level,
		},
	}
}
