// Package config loads abook settings.
//
// Settings come from ~/.abook/config.toml when present, then environment
// overrides (ABOOK_DB, ABOOK_LOG_LEVEL, ABOOK_ADDR). Command-line flags are
// applied last by the caller.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config is the complete abook configuration.
type Config struct {
	DBPath      string `toml:"db_path"`
	HistoryFile string `toml:"history_file"`
	LogLevel    string `toml:"log_level"`
	LogPretty   bool   `toml:"log_pretty"`
	ServerAddr  string `toml:"server_addr"`
}

// Dir returns ~/.abook
func Dir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(os.TempDir(), "abook")
	}
	return filepath.Join(home, ".abook")
}

// DefaultPath is where Load looks when no path is given
func DefaultPath() string {
	return filepath.Join(Dir(), "config.toml")
}

// Default returns the built-in settings
func Default() Config {
	dir := Dir()
	return Config{
		DBPath:      filepath.Join(dir, "abook.db"),
		HistoryFile: filepath.Join(dir, "history"),
		LogLevel:    "warn",
		LogPretty:   true,
		ServerAddr:  ":8080",
	}
}

// Load reads the file at path over the defaults. A missing file is not an
// error.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		path = DefaultPath()
	}

	if _, err := toml.DecodeFile(path, &cfg); err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, fmt.Errorf("decode %s: %w", path, err)
	}

	cfg.applyEnv()
	return cfg, cfg.Validate()
}

func (c *Config) applyEnv() {
	if v := os.Getenv("ABOOK_DB"); v != "" {
		c.DBPath = v
	}
	if v := os.Getenv("ABOOK_LOG_LEVEL"); v != "" {
		c.LogLevel = v
	}
	if v := os.Getenv("ABOOK_ADDR"); v != "" {
		c.ServerAddr = v
	}
}

// Validate rejects settings the program cannot run with
func (c Config) Validate() error {
	if c.DBPath == "" {
		return errors.New("db_path must not be empty")
	}
	if c.ServerAddr == "" {
		return errors.New("server_addr must not be empty")
	}
	return nil
}
