package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
)

const DefaultMigrationsPath = "db/migrations"

var ErrMigrationsNotFound = errors.New("migrations directory not found")

// RetryPolicy bounds how long the runner waits for postgres to accept
// connections
type RetryPolicy struct {
	Attempts int
	Interval time.Duration
}

func DefaultRetryPolicy() RetryPolicy {
	return RetryPolicy{Attempts: 30, Interval: 2 * time.Second}
}

// MigrationRunner applies the SQL migrations of the postgres mirror
type MigrationRunner struct {
	db             *sql.DB
	migrationsPath string
	retry          RetryPolicy
	logger         *slog.Logger
}

func NewMigrationRunner(db *sql.DB, migrationsPath string, retry RetryPolicy, logger *slog.Logger) *MigrationRunner {
	if migrationsPath == "" {
		migrationsPath = DefaultMigrationsPath
	}
	if retry.Attempts <= 0 {
		retry.Attempts = 1
	}
	return &MigrationRunner{
		db:             db,
		migrationsPath: migrationsPath,
		retry:          retry,
		logger:         logger,
	}
}

// WaitForDatabase pings until the database answers, the attempts run out or
// ctx is done
func (mr *MigrationRunner) WaitForDatabase(ctx context.Context) error {
	var lastErr error
	for attempt := 1; attempt <= mr.retry.Attempts; attempt++ {
		if lastErr = mr.db.PingContext(ctx); lastErr == nil {
			return nil
		}

		mr.logger.InfoContext(ctx, "mirror database not ready",
			slog.Int("attempt", attempt),
			slog.Int("attempts", mr.retry.Attempts),
			slog.String("error", lastErr.Error()),
		)
		if attempt == mr.retry.Attempts {
			break
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(mr.retry.Interval):
		}
	}

	return fmt.Errorf("database not ready after %d attempts: %w", mr.retry.Attempts, lastErr)
}

func (mr *MigrationRunner) newMigrate() (*migrate.Migrate, error) {
	if _, err := os.Stat(mr.migrationsPath); os.IsNotExist(err) {
		return nil, ErrMigrationsNotFound
	}

	absPath, err := filepath.Abs(mr.migrationsPath)
	if err != nil {
		return nil, fmt.Errorf("failed to get absolute path for migrations: %w", err)
	}

	driver, err := postgres.WithInstance(mr.db, &postgres.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to create postgres driver: %w", err)
	}

	m, err := migrate.NewWithDatabaseInstance("file://"+absPath, "postgres", driver)
	if err != nil {
		return nil, fmt.Errorf("failed to create migration instance: %w", err)
	}
	return m, nil
}

// Up applies every pending migration. A missing migrations directory is not
// an error; the caller falls back to AutoMigrate.
func (mr *MigrationRunner) Up(ctx context.Context) error {
	m, err := mr.newMigrate()
	if errors.Is(err, ErrMigrationsNotFound) {
		mr.logger.WarnContext(ctx, "migrations directory not found, skipping",
			slog.String("path", mr.migrationsPath))
		return nil
	}
	if err != nil {
		return err
	}

	version, dirty, err := m.Version()
	if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
		return fmt.Errorf("failed to get migration version: %w", err)
	}

	if dirty {
		mr.logger.WarnContext(ctx, "mirror schema is dirty, forcing version", slog.Uint64("version", uint64(version)))
		if err := m.Force(int(version)); err != nil {
			return fmt.Errorf("failed to force version: %w", err)
		}
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("migration failed: %w", err)
	}

	newVersion, _, err := m.Version()
	if err != nil {
		return fmt.Errorf("failed to get new migration version: %w", err)
	}
	mr.logger.InfoContext(ctx, "mirror schema up to date",
		slog.Uint64("from_version", uint64(version)),
		slog.Uint64("version", uint64(newVersion)),
	)
	return nil
}

// Version returns the applied schema version
func (mr *MigrationRunner) Version() (version uint, dirty bool, err error) {
	m, err := mr.newMigrate()
	if err != nil {
		return 0, false, err
	}
	return m.Version()
}

// Migrate waits for the database and applies pending migrations
func (mr *MigrationRunner) Migrate(ctx context.Context) error {
	if err := mr.WaitForDatabase(ctx); err != nil {
		return fmt.Errorf("database readiness check failed: %w", err)
	}
	if err := mr.Up(ctx); err != nil {
		return fmt.Errorf("migration execution failed: %w", err)
	}
	return nil
}
