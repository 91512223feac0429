package cache

import (
	"context"
	"time"
)

// Cache is the contract for the read-through cache layer used by repositories.
// Implementations must be safe for concurrent use.
type Cache interface {
	// Get loads the value stored under key into dest.
	// found=false means a cache miss; dest is left untouched.
	Get(ctx context.Context, key string, dest interface{}) (bool, error)

	// Set stores value under key with the given TTL.
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error

	// Delete removes the given keys.
	Delete(ctx context.Context, keys ...string) error

	// DeletePattern removes every key matching a glob-style pattern.
	DeletePattern(ctx context.Context, pattern string) error

	// Ping verifies connectivity.
	Ping(ctx context.Context) error
}
