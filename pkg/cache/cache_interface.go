package cache

import (
	"context"
	"time"
)

// Cache is the contract for the read cache layer.
// Implementations: Redis (infrastructure/cache), in-memory fakes in tests.
type Cache interface {
	// Get loads the value stored under key into dest.
	// found = false means a cache miss and dest is left untouched.
	Get(ctx context.Context, key string, dest interface{}) (bool, error)

	// Set stores value under key with the given TTL
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error

	// Delete removes the keys
	Delete(ctx context.Context, keys ...string) error

	Ping(ctx context.Context) error
}
