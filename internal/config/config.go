package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"shadowquest/internal/storage"
)

// Environment variables read by Load.
const (
	EnvDBPath   = "SQ_DB_PATH"
	EnvLogLevel = "SQ_LOG_LEVEL"
	EnvTimezone = "SQ_TIMEZONE"
	EnvPlayer   = "SQ_PLAYER"
)

// Config holds all application configuration.
type Config struct {
	// SQLite database file.
	DBPath string

	// debug, info, warn, error
	LogLevel string

	// Timezone defines calendar days for streaks and the ledger.
	// Empty means the system local zone.
	Timezone string
	Location *time.Location

	// Player selects the stored snapshot.
	Player string
}

// Load loads configuration from environment variables.
func Load() (*Config, error) {
	cfg := &Config{
		DBPath:   getEnv(EnvDBPath, ""),
		LogLevel: getEnv(EnvLogLevel, "warn"),
		Timezone: getEnv(EnvTimezone, ""),
		Player:   getEnv(EnvPlayer, storage.MainPlayerKey),
	}

	if cfg.DBPath == "" {
		path, err := storage.DefaultDBPath()
		if err != nil {
			return nil, err
		}
		cfg.DBPath = path
	}

	loc, err := loadLocation(cfg.Timezone)
	if err != nil {
		return nil, err
	}
	cfg.Location = loc

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	var errs []string
	if strings.TrimSpace(c.DBPath) == "" {
		errs = append(errs, EnvDBPath+" is empty")
	}
	if strings.TrimSpace(c.Player) == "" {
		errs = append(errs, EnvPlayer+" is empty")
	}
	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "warning", "error":
	default:
		errs = append(errs, fmt.Sprintf("%s %q is not a log level", EnvLogLevel, c.LogLevel))
	}
	if len(errs) > 0 {
		return fmt.Errorf("config validation failed: %s", strings.Join(errs, "; "))
	}
	return nil
}

func loadLocation(name string) (*time.Location, error) {
	if name == "" || strings.EqualFold(name, "local") {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("load timezone %q: %w", name, err)
	}
	return loc, nil
}

func getEnv(key, defaultVal string) string {
	if val := strings.TrimSpace(os.Getenv(key)); val != "" {
		return val
	}
	return defaultVal
}
