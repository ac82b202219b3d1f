package database

import (
	"context"
	"io"
	"log/slog"
	"path/filepath"
	"testing"

	"banking-client/internal/config"
	"banking-client/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_RejectsNonRelationalDriver(t *testing.T) {
	db, err := New(&config.MirrorConfig{Driver: config.MirrorDriverRedis})

	assert.Nil(t, db)
	assert.ErrorContains(t, err, "not relational")
}

func TestInitialize_SQLiteFile(t *testing.T) {
	cfg := &config.MirrorConfig{
		Driver: config.MirrorDriverSQLite,
		DSN:    filepath.Join(t.TempDir(), "mirror.db"),
	}

	db, err := Initialize(context.Background(), cfg, slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)
	defer db.Close()

	assert.NoError(t, db.HealthCheck(context.Background()))
	assert.True(t, db.Migrator().HasTable(&models.MirrorEntry{}))
}

func TestSetupTestDB_CreatesMirrorTable(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)

	entry := &models.MirrorEntry{Key: models.MirrorKeyAccounts, Value: "[]"}
	require.NoError(t, db.Create(entry).Error)
	assert.False(t, entry.UpdatedAt.IsZero())

	var count int64
	require.NoError(t, db.Model(&models.MirrorEntry{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}
