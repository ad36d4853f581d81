// Package config assembles the tool's configuration from its layered
// sources: compiled defaults, an optional YAML file, a .env file, and
// RECRUITCRM_* environment variables, later sources winning. Command
// flags are applied by the CLI on top. The record store itself never
// reads configuration.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config holds everything the command shell needs to run.
type Config struct {
	// DBPath is the SQLite database file.
	DBPath string `yaml:"db_path"`

	// LogLevel is debug, info, warn or error.
	LogLevel string `yaml:"log_level"`

	// LogFormat is console or json.
	LogFormat string `yaml:"log_format"`

	// LogFile receives a copy of the log stream when set.
	LogFile string `yaml:"log_file"`
}

// Default returns the built-in configuration. The database sits next to
// the executable, the fixed install-relative location the tool has
// always used.
func Default() Config {
	return Config{
		DBPath:    defaultDBPath(),
		LogLevel:  "info",
		LogFormat: "console",
	}
}

// Load assembles the configuration. explicitPath, when non-empty, names
// a YAML file that must exist; otherwise the per-user config file is
// read when present. A .env file in the working directory fills in
// unset environment variables before the RECRUITCRM_* overrides apply.
func Load(explicitPath string) (Config, error) {
	cfg := Default()

	path := explicitPath
	required := explicitPath != ""
	if path == "" {
		path = userConfigPath()
	}
	if path != "" {
		if err := loadFile(&cfg, path, required); err != nil {
			return Config{}, err
		}
	}

	// Best effort: a missing .env is the normal case. godotenv never
	// overrides variables that are already set, so the real environment
	// keeps precedence.
	_ = godotenv.Load()

	cfg.loadFromEnv()

	return cfg, nil
}

// loadFromEnv applies RECRUITCRM_* overrides for every variable that is
// set and non-empty.
func (c *Config) loadFromEnv() {
	if db := os.Getenv("RECRUITCRM_DB"); db != "" {
		c.DBPath = db
	}
	if level := os.Getenv("RECRUITCRM_LOG_LEVEL"); level != "" {
		c.LogLevel = level
	}
	if format := os.Getenv("RECRUITCRM_LOG_FORMAT"); format != "" {
		c.LogFormat = format
	}
	if file := os.Getenv("RECRUITCRM_LOG_FILE"); file != "" {
		c.LogFile = file
	}
}

func loadFile(cfg *Config, path string, required bool) error {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) && !required {
		return nil
	}
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}
	return nil
}

// userConfigPath is $XDG_CONFIG_HOME/recruitcrm/config.yaml (or the
// platform equivalent).
func userConfigPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "recruitcrm", "config.yaml")
}

func defaultDBPath() string {
	exe, err := os.Executable()
	if err != nil {
		return "recruitcrm.db"
	}
	return filepath.Join(filepath.Dir(exe), "recruitcrm.db")
}
