package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds all settings consumed at startup. There is no runtime reload.
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Database DatabaseConfig `yaml:"database"`
	Staging  StagingConfig  `yaml:"staging"`
	Logging  LoggingConfig  `yaml:"logging"`
}

type ServerConfig struct {
	Host    string `yaml:"host"`
	Port    string `yaml:"port"`
	Version string `yaml:"version"`
}

type DatabaseConfig struct {
	Path string `yaml:"path"`
}

type StagingConfig struct {
	Directory string `yaml:"directory"`
	SweepCron string `yaml:"sweep_cron"`
	MaxAge    string `yaml:"max_age"`
}

type LoggingConfig struct {
	Level string `yaml:"level"`
}

// Address returns the host:port pair the server listens on.
func (c *Config) Address() string {
	return c.Server.Host + ":" + c.Server.Port
}

// StagingMaxAge parses the configured staging retention. Validate guarantees
// the value parses, so callers can ignore the error after Load.
func (c *Config) StagingMaxAge() (time.Duration, error) {
	return time.ParseDuration(c.Staging.MaxAge)
}

// Load reads and validates the YAML settings file at configPath.
func Load(configPath string) (*Config, error) {
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return nil, fmt.Errorf("config file does not exist: %s", configPath)
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	cfg := &Config{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("error parsing config file: %w", err)
	}

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("config validation error: %w", err)
	}

	return cfg, nil
}

// LoadOrDefault loads the settings file at configPath, or returns the
// built-in defaults when no path is given.
func LoadOrDefault(configPath string) (*Config, error) {
	if configPath == "" {
		cfg := &Config{}
		if err := validate(cfg); err != nil {
			return nil, err
		}
		return cfg, nil
	}
	return Load(configPath)
}

func validate(cfg *Config) error {
	if cfg.Server.Port == "" {
		cfg.Server.Port = "3000"
	}
	if cfg.Server.Version == "" {
		cfg.Server.Version = "develop"
	}
	if cfg.Database.Path == "" {
		cfg.Database.Path = "./pixfold.db"
	}
	if cfg.Staging.Directory == "" {
		cfg.Staging.Directory = "./uploads"
	}
	if cfg.Staging.SweepCron == "" {
		cfg.Staging.SweepCron = "@hourly"
	}
	if cfg.Staging.MaxAge == "" {
		cfg.Staging.MaxAge = "1h"
	}
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = "info"
	}

	if _, err := time.ParseDuration(cfg.Staging.MaxAge); err != nil {
		return fmt.Errorf("invalid staging max_age %q: %w", cfg.Staging.MaxAge, err)
	}

	switch cfg.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unsupported log level: %s", cfg.Logging.Level)
	}

	// Ensure the staging directory and database parent directory exist
	dirs := []string{cfg.Staging.Directory, filepath.Dir(cfg.Database.Path)}
	for _, dir := range dirs {
		if dir == "" || dir == "." {
			continue
		}
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}

	return nil
}
