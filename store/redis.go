package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const defaultRedisPrefix = "teaform:"

// RedisBackend stores state blobs in Redis. Use it when form state
// should survive across hosts or be shared by several processes.
type RedisBackend struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
}

// RedisOption configures a RedisBackend.
type RedisOption func(*RedisBackend)

// WithKeyPrefix overrides the key prefix. Defaults to "teaform:".
func WithKeyPrefix(prefix string) RedisOption {
	return func(b *RedisBackend) {
		b.prefix = prefix
	}
}

// WithTTL expires stored state after d. Zero keeps keys forever.
func WithTTL(d time.Duration) RedisOption {
	return func(b *RedisBackend) {
		b.ttl = d
	}
}

// NewRedisBackend wraps an existing client. The backend does not own
// the client; closing it is the caller's job.
func NewRedisBackend(client *redis.Client, opts ...RedisOption) *RedisBackend {
	b := &RedisBackend{client: client, prefix: defaultRedisPrefix}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Load fetches the blob for key. A missing key is reported as ok=false
// with a nil error.
func (b *RedisBackend) Load(ctx context.Context, key string) ([]byte, bool, error) {
	data, err := b.client.Get(ctx, b.prefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("redis get %s: %w", key, err)
	}
	return data, true, nil
}

// Save stores the blob for key, applying the configured TTL.
func (b *RedisBackend) Save(ctx context.Context, key string, data []byte) error {
	if err := b.client.Set(ctx, b.prefix+key, data, b.ttl).Err(); err != nil {
		return fmt.Errorf("redis set %s: %w", key, err)
	}
	return nil
}
