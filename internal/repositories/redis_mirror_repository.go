package repositories

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/redis/go-redis/v9"
)

const scanBatchSize = 100

// RedisMirrorRepository keeps mirror entries as plain redis strings under a
// key prefix. Entries never expire.
type RedisMirrorRepository struct {
	client redis.UniversalClient
	prefix string
}

func NewRedisMirrorRepository(client redis.UniversalClient, prefix string) MirrorRepositoryInterface {
	return &RedisMirrorRepository{
		client: client,
		prefix: prefix,
	}
}

// NewRedisClient parses a redis:// URL into a client
func NewRedisClient(redisURL string) (*redis.Client, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse redis url: %w", err)
	}
	return redis.NewClient(opts), nil
}

func (r *RedisMirrorRepository) key(key string) string {
	return r.prefix + key
}

func (r *RedisMirrorRepository) Get(ctx context.Context, key string) (string, bool, error) {
	value, err := r.client.Get(ctx, r.key(key)).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to read mirror key %s: %w", key, err)
	}
	return value, true, nil
}

func (r *RedisMirrorRepository) Set(ctx context.Context, key, value string) error {
	if err := r.client.Set(ctx, r.key(key), value, 0).Err(); err != nil {
		return fmt.Errorf("failed to write mirror key %s: %w", key, err)
	}
	return nil
}

func (r *RedisMirrorRepository) Delete(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}

	prefixed := make([]string, 0, len(keys))
	for _, k := range keys {
		prefixed = append(prefixed, r.key(k))
	}

	if err := r.client.Del(ctx, prefixed...).Err(); err != nil {
		return fmt.Errorf("failed to delete mirror keys: %w", err)
	}
	return nil
}

func (r *RedisMirrorRepository) Keys(ctx context.Context) ([]string, error) {
	var (
		cursor uint64
		keys   []string
	)

	for {
		batch, next, err := r.client.Scan(ctx, cursor, r.prefix+"*", scanBatchSize).Result()
		if err != nil {
			return nil, fmt.Errorf("failed to list mirror keys: %w", err)
		}
		for _, k := range batch {
			keys = append(keys, strings.TrimPrefix(k, r.prefix))
		}
		if next == 0 {
			break
		}
		cursor = next
	}

	sort.Strings(keys)
	return keys, nil
}

func (r *RedisMirrorRepository) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}
