package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

// Config keeps runtime settings for the service.
type Config struct {
	HTTPAddr        string
	LogLevel        logrus.Level
	ShutdownTimeout time.Duration
	Database        Database
}

// Database selects and locates the backing store.
type Database struct {
	Driver string
	// Path is the SQLite database file.
	Path string
	// URL is the PostgreSQL connection string.
	URL   string
	Debug bool
}

// Load reads configuration from the environment, after merging an optional
// .env file from the working directory. Variables already set win over .env.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}

	cfg := Config{
		HTTPAddr:        getEnv("HTTP_ADDR", ":8080"),
		ShutdownTimeout: 10 * time.Second,
		Database: Database{
			Driver: strings.ToLower(getEnv("DB_DRIVER", DriverSQLite)),
			Path:   getEnv("DB_PATH", "db.sqlite"),
			URL:    strings.TrimSpace(os.Getenv("DATABASE_URL")),
		},
	}

	level, err := logrus.ParseLevel(getEnv("LOG_LEVEL", "info"))
	if err != nil {
		return cfg, fmt.Errorf("LOG_LEVEL: %w", err)
	}
	cfg.LogLevel = level

	if raw := os.Getenv("DB_DEBUG"); raw != "" {
		debug, err := strconv.ParseBool(raw)
		if err != nil {
			return cfg, fmt.Errorf("DB_DEBUG: %w", err)
		}
		cfg.Database.Debug = debug
	}

	if raw := os.Getenv("SHUTDOWN_TIMEOUT"); raw != "" {
		timeout, err := time.ParseDuration(raw)
		if err != nil || timeout <= 0 {
			return cfg, fmt.Errorf("SHUTDOWN_TIMEOUT: invalid duration %q", raw)
		}
		cfg.ShutdownTimeout = timeout
	}

	switch cfg.Database.Driver {
	case DriverSQLite:
	case DriverPostgres:
		if cfg.Database.URL == "" {
			return cfg, fmt.Errorf("DATABASE_URL is required for the %s driver", DriverPostgres)
		}
	default:
		return cfg, fmt.Errorf("DB_DRIVER: unsupported driver %q", cfg.Database.Driver)
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}
