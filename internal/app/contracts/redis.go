package contracts

import (
	"context"
	"time"
)

// RedisRepository is the cache behind the organization registry wrapper.
// Get returns an empty string when the key does not exist.
type RedisRepository interface {
	Set(ctx context.Context, key string, value interface{}, exp time.Duration) error
	Get(ctx context.Context, key string) (string, error)
}
