package database

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/shopfront/catalog-service/app/config"
	"github.com/shopfront/catalog-service/models"
)

// New opens the configured database, migrates the catalog tables and returns
// the handle with a function that closes it.
func New(cfg config.Database, log logrus.FieldLogger) (*gorm.DB, func(), error) {
	dialector, err := dialectorFor(cfg)
	if err != nil {
		return nil, nil, err
	}

	level := logger.Warn
	if cfg.Debug {
		level = logger.Info
	}
	dbLogger := logger.New(log, logger.Config{
		SlowThreshold:             time.Second,
		LogLevel:                  level,
		IgnoreRecordNotFoundError: true,
		Colorful:                  false,
	})

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger:         dbLogger,
		TranslateError: true,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("open %s db: %w", cfg.Driver, err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, nil, fmt.Errorf("get sql db: %w", err)
	}
	closeFn := func() {
		if err := sqlDB.Close(); err != nil {
			log.WithError(err).Warn("close db")
		}
	}

	if err := models.Migrate(db); err != nil {
		closeFn()
		return nil, nil, err
	}

	return db, closeFn, nil
}

func dialectorFor(cfg config.Database) (gorm.Dialector, error) {
	switch cfg.Driver {
	case config.DriverSQLite, "":
		if err := ensureDirForSQLite(cfg.Path); err != nil {
			return nil, err
		}
		return sqlite.Open(sqliteDSN(cfg.Path)), nil
	case config.DriverPostgres:
		// lib/pq registers itself as the "postgres" database/sql driver; it is
		// imported by models for constraint error codes.
		return postgres.New(postgres.Config{
			DriverName: "postgres",
			DSN:        cfg.URL,
		}), nil
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Driver)
	}
}

// sqliteDSN turns on foreign key enforcement, which SQLite leaves off per
// connection by default.
func sqliteDSN(path string) string {
	if path == "" {
		path = "db.sqlite"
	}
	if strings.Contains(path, "_foreign_keys=") || strings.Contains(path, "_fk=") {
		return path
	}
	sep := "?"
	if strings.Contains(path, "?") {
		sep = "&"
	}
	return path + sep + "_foreign_keys=on"
}

// ensureDirForSQLite creates parent dir for SQLite file if needed.
func ensureDirForSQLite(dsn string) error {
	if strings.Contains(dsn, ":memory:") || strings.Contains(dsn, "mode=memory") {
		return nil
	}
	clean := strings.TrimPrefix(dsn, "file:")
	clean = strings.Split(clean, "?")[0]
	dir := filepath.Dir(clean)
	if dir == "." || dir == "" {
		return nil
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create db dir %q: %w", dir, err)
	}
	return nil
}
