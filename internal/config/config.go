package config

import (
	"fmt"
	"path/filepath"
	"strings"
)

const (
	BackendSQLite = "sqlite"
	BackendFile   = "file"

	IDsUUID     = "uuid"
	IDsSequence = "sequence"
)

// Config is the full ticklist configuration.
type Config struct {
	Storage StorageConfig `mapstructure:"storage"`
	IDs     IDsConfig     `mapstructure:"ids"`
	Log     LogConfig     `mapstructure:"log"`
}

// StorageConfig selects where the list is persisted.
type StorageConfig struct {
	Backend string `mapstructure:"backend"`
	// Path is the database file (sqlite) or slot directory (file).
	// Empty means the backend's default under the ticklist home directory.
	Path string `mapstructure:"path"`
	Slot string `mapstructure:"slot"`
}

// IDsConfig selects how new item ids are minted.
type IDsConfig struct {
	Strategy string `mapstructure:"strategy"`
}

// LogConfig controls diagnostic logging on stderr.
type LogConfig struct {
	Level    string `mapstructure:"level"`
	Format   string `mapstructure:"format"`
	UseCases bool   `mapstructure:"use_cases"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Storage: StorageConfig{
			Backend: BackendSQLite,
			Slot:    "todos",
		},
		IDs: IDsConfig{
			Strategy: IDsUUID,
		},
		Log: LogConfig{
			Level:  "warn",
			Format: "text",
		},
	}
}

// Validate checks enum fields and fills Storage.Path from home when unset.
func (c *Config) Validate(home string) error {
	c.Storage.Backend = strings.ToLower(strings.TrimSpace(c.Storage.Backend))
	switch c.Storage.Backend {
	case BackendSQLite, BackendFile:
	default:
		return fmt.Errorf("storage.backend: unknown backend %q (want %s or %s)", c.Storage.Backend, BackendSQLite, BackendFile)
	}

	if strings.TrimSpace(c.Storage.Slot) == "" {
		return fmt.Errorf("storage.slot: must not be empty")
	}
	if strings.ContainsAny(c.Storage.Slot, `/\`) {
		return fmt.Errorf("storage.slot: %q must not contain path separators", c.Storage.Slot)
	}

	c.IDs.Strategy = strings.ToLower(strings.TrimSpace(c.IDs.Strategy))
	switch c.IDs.Strategy {
	case IDsUUID, IDsSequence:
	default:
		return fmt.Errorf("ids.strategy: unknown strategy %q (want %s or %s)", c.IDs.Strategy, IDsUUID, IDsSequence)
	}

	if _, err := parseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("log.level: %w", err)
	}
	switch strings.ToLower(c.Log.Format) {
	case "text", "json":
	default:
		return fmt.Errorf("log.format: unknown format %q (want text or json)", c.Log.Format)
	}

	if c.Storage.Path == "" {
		c.Storage.Path = DefaultStoragePath(home, c.Storage.Backend)
	}
	return nil
}

// HomeDir returns the ticklist directory under the user's home.
func HomeDir(home string) string {
	return filepath.Join(home, ".ticklist")
}

// DefaultStoragePath returns where a backend keeps its data by default.
func DefaultStoragePath(home, backend string) string {
	if backend == BackendFile {
		return filepath.Join(HomeDir(home), "slots")
	}
	return filepath.Join(HomeDir(home), "ticklist.db")
}
