package database

import (
	"testing"

	"banking-client/internal/config"
	"banking-client/internal/models"
)

// SetupTestDB opens a migrated mirror on in-memory sqlite. New pins sqlite to
// one connection, so the whole test shares a single database.
func SetupTestDB(t *testing.T) *DB {
	t.Helper()

	db, err := New(&config.MirrorConfig{Driver: config.MirrorDriverSQLite, DSN: ":memory:"})
	if err != nil {
		t.Fatalf("open test mirror: %v", err)
	}
	if err := db.AutoMigrate(); err != nil {
		t.Fatalf("migrate test mirror: %v", err)
	}
	return db
}

// CleanupTestDB empties the mirror and closes it
func CleanupTestDB(t *testing.T, db *DB) {
	t.Helper()

	if err := db.Where("1 = 1").Delete(&models.MirrorEntry{}).Error; err != nil {
		t.Logf("clear mirror entries: %v", err)
	}
	if err := db.Close(); err != nil {
		t.Logf("close test mirror: %v", err)
	}
}
