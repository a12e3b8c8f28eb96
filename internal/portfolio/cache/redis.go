package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Entries live at portfolio:{kind}:{gen}:{variant}; the generation counter
// of a kind at portfolio:{kind}:gen.
const (
	keyNamespace = "portfolio:"
	genSuffix    = "gen"
	defaultTTL   = 5 * time.Minute
)

// Redis caches values as JSON strings with a TTL.
type Redis struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedis(client *redis.Client, ttl time.Duration) *Redis {
	if ttl <= 0 {
		ttl = defaultTTL
	}
	return &Redis{client: client, ttl: ttl}
}

func (r *Redis) Generation(ctx context.Context, prefix string) (int64, error) {
	gen, err := r.client.Get(ctx, keyNamespace+prefix+genSuffix).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("cache generation %s: %w", prefix, err)
	}
	return gen, nil
}

func (r *Redis) Get(ctx context.Context, key string, dst any) (bool, error) {
	data, err := r.client.Get(ctx, keyNamespace+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("cache get %s: %w", key, err)
	}
	if err := json.Unmarshal(data, dst); err != nil {
		return false, fmt.Errorf("cache decode %s: %w", key, err)
	}
	return true, nil
}

func (r *Redis) Set(ctx context.Context, key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("cache encode %s: %w", key, err)
	}
	if err := r.client.Set(ctx, keyNamespace+key, data, r.ttl).Err(); err != nil {
		return fmt.Errorf("cache set %s: %w", key, err)
	}
	return nil
}

// Invalidate bumps the kind's generation. Entries of older generations are
// never read again and age out with their TTL.
func (r *Redis) Invalidate(ctx context.Context, prefix string) error {
	if err := r.client.Incr(ctx, keyNamespace+prefix+genSuffix).Err(); err != nil {
		return fmt.Errorf("cache invalidate %s: %w", prefix, err)
	}
	return nil
}
