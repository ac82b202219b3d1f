package repositories

import (
	"context"
)

// MirrorRepositoryInterface defines the contract of the persistent key-value
// mirror. Values are opaque serialized text.
type MirrorRepositoryInterface interface {
	// Get returns found=false and no error for an absent key
	Get(ctx context.Context, key string) (value string, found bool, err error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, keys ...string) error
	Keys(ctx context.Context) ([]string, error)
	Ping(ctx context.Context) error
}
