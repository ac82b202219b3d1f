package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
)

var ErrCorruptSnapshot = errors.New("mirror snapshot cannot be decoded")

// LoadJSON decodes the snapshot stored under key into out. found is false when
// nothing is stored.
func LoadJSON(ctx context.Context, repo MirrorRepositoryInterface, key string, out any) (bool, error) {
	value, found, err := repo.Get(ctx, key)
	if err != nil || !found {
		return false, err
	}

	if err := json.Unmarshal([]byte(value), out); err != nil {
		return false, fmt.Errorf("%w: key %s: %v", ErrCorruptSnapshot, key, err)
	}
	return true, nil
}

// SaveJSON serializes v and stores it under key
func SaveJSON(ctx context.Context, repo MirrorRepositoryInterface, key string, v any) error {
	encoded, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to encode mirror key %s: %w", key, err)
	}
	return repo.Set(ctx, key, string(encoded))
}
