package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"banking-client/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// MirrorRepository stores mirror entries in a relational table
type MirrorRepository struct {
	db *gorm.DB
}

func NewMirrorRepository(db *gorm.DB) MirrorRepositoryInterface {
	return &MirrorRepository{
		db: db,
	}
}

func (r *MirrorRepository) Get(ctx context.Context, key string) (string, bool, error) {
	var entry models.MirrorEntry

	if err := r.db.WithContext(ctx).Where("entry_key = ?", key).First(&entry).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("failed to read mirror key %s: %w", key, err)
	}

	return entry.Value, true, nil
}

// Set inserts the entry or overwrites the value of an existing key
func (r *MirrorRepository) Set(ctx context.Context, key, value string) error {
	entry := &models.MirrorEntry{
		Key:       key,
		Value:     value,
		UpdatedAt: time.Now().UTC(),
	}

	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "entry_key"}},
		DoUpdates: clause.AssignmentColumns([]string{"entry_value", "updated_at"}),
	}).Create(entry).Error
	if err != nil {
		return fmt.Errorf("failed to write mirror key %s: %w", key, err)
	}

	return nil
}

func (r *MirrorRepository) Delete(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}

	if err := r.db.WithContext(ctx).Where("entry_key IN ?", keys).Delete(&models.MirrorEntry{}).Error; err != nil {
		return fmt.Errorf("failed to delete mirror keys: %w", err)
	}

	return nil
}

func (r *MirrorRepository) Keys(ctx context.Context) ([]string, error) {
	var keys []string

	if err := r.db.WithContext(ctx).Model(&models.MirrorEntry{}).Order("entry_key").Pluck("entry_key", &keys).Error; err != nil {
		return nil, fmt.Errorf("failed to list mirror keys: %w", err)
	}

	return keys, nil
}

func (r *MirrorRepository) Ping(ctx context.Context) error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}
