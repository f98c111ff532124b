package database

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/breno-augst/family-relationship-api/config"
	"github.com/breno-augst/family-relationship-api/logger"
	"github.com/breno-augst/family-relationship-api/models"
)

// Options describes how to open the GORM connection.
type Options struct {
	Driver   string // config.DriverSQLite or config.DriverPostgres
	DSN      string
	LogLevel string // silent, error, warn, info
	Logger   zerolog.Logger
}

func gormLogLevel(level string) gormlogger.LogLevel {
	switch strings.ToLower(level) {
	case "silent":
		return gormlogger.Silent
	case "error":
		return gormlogger.Error
	case "info":
		return gormlogger.Info
	default:
		return gormlogger.Warn
	}
}

// sqliteDSN turns on foreign key enforcement so ON DELETE SET NULL applies.
func sqliteDSN(dsn string) string {
	if strings.Contains(dsn, "_foreign_keys") || strings.Contains(dsn, "_fk=") {
		return dsn
	}
	sep := "?"
	if strings.Contains(dsn, "?") {
		sep = "&"
	}
	return dsn + sep + "_foreign_keys=1"
}

// InitGormDB initializes and returns a GORM database instance
func InitGormDB(opts Options) (*gorm.DB, error) {
	gormLogger := gormlogger.New(
		logger.GormWriter{Logger: opts.Logger},
		gormlogger.Config{
			SlowThreshold:             time.Second,
			LogLevel:                  gormLogLevel(opts.LogLevel),
			IgnoreRecordNotFoundError: true,
			Colorful:                  false,
		},
	)

	var dialector gorm.Dialector
	switch opts.Driver {
	case config.DriverPostgres:
		dialector = postgres.Open(opts.DSN)
	case config.DriverSQLite, "":
		dialector = sqlite.Open(sqliteDSN(opts.DSN))
	default:
		return nil, fmt.Errorf("unsupported database driver '%s'", opts.Driver)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger:         gormLogger,
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database using GORM: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB from GORM: %w", err)
	}

	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetConnMaxLifetime(time.Hour)

	if opts.Driver != config.DriverPostgres {
		// enable write-ahead logging for better concurrency
		if err := db.Exec("PRAGMA journal_mode=WAL;").Error; err != nil {
			opts.Logger.Warn().Err(err).Msg("failed to set WAL mode")
		}
	}

	opts.Logger.Info().Str("driver", dialector.Name()).Msg("GORM database initialized")
	return db, nil
}

// AutoMigrateModels creates or updates the parent and child tables.
func AutoMigrateModels(db *gorm.DB) error {
	err := db.AutoMigrate(
		&models.Parent{},
		&models.Child{},
	)
	if err != nil {
		return fmt.Errorf("GORM AutoMigrate failed: %w", err)
	}
	return nil
}

// Ping checks that the database still answers.
func Ping(ctx context.Context, db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB from GORM: %w", err)
	}
	return sqlDB.PingContext(ctx)
}

// Close releases the connection pool.
func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB from GORM: %w", err)
	}
	return sqlDB.Close()
}
