package database

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"banking-client/internal/config"
	"banking-client/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// DB is the relational backing of the persistent mirror
type DB struct {
	*gorm.DB
	config *config.MirrorConfig
}

func New(cfg *config.MirrorConfig) (*DB, error) {
	gormConfig := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	}

	var dialector gorm.Dialector
	switch cfg.Driver {
	case config.MirrorDriverSQLite:
		dialector = sqlite.Open(cfg.DSN)
	case config.MirrorDriverPostgres:
		dialector = postgres.Open(cfg.DSN)
	default:
		return nil, fmt.Errorf("mirror driver %q is not relational", cfg.Driver)
	}

	db, err := gorm.Open(dialector, gormConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mirror database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql.DB: %w", err)
	}

	if cfg.Driver == config.MirrorDriverSQLite {
		// sqlite serialises writers; one connection avoids SQLITE_BUSY
		sqlDB.SetMaxOpenConns(1)
	}

	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping mirror database: %w", err)
	}

	return &DB{
		DB:     db,
		config: cfg,
	}, nil
}

func (db *DB) AutoMigrate() error {
	return db.DB.AutoMigrate(&models.MirrorEntry{})
}

func (db *DB) Close() error {
	sqlDB, err := db.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func (db *DB) HealthCheck(ctx context.Context) error {
	sqlDB, err := db.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

// Initialize opens the mirror database and brings its schema up to date.
// Postgres runs the SQL migrations when enabled and falls back to AutoMigrate
// if they fail; a local sqlite file is always auto-migrated.
func Initialize(ctx context.Context, cfg *config.MirrorConfig, logger *slog.Logger) (*DB, error) {
	db, err := New(cfg)
	if err != nil {
		return nil, err
	}

	if cfg.Driver == config.MirrorDriverPostgres {
		if !cfg.AutoMigrate {
			logger.InfoContext(ctx, "mirror auto-migration disabled")
			return db, nil
		}

		sqlDB, err := db.DB.DB()
		if err != nil {
			return nil, fmt.Errorf("failed to get sql.DB: %w", err)
		}

		runner := NewMigrationRunner(sqlDB, DefaultMigrationsPath, DefaultRetryPolicy(), logger)
		err = runner.Migrate(ctx)
		if err == nil {
			return db, nil
		}
		logger.WarnContext(ctx, "migration runner failed, falling back to AutoMigrate",
			slog.String("error", err.Error()))
	}

	if err := db.AutoMigrate(); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}
	return db, nil
}
