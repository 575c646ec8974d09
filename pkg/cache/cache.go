package cache

import (
	"context"
	"time"
)

// Cache abstracts the read-through cache used by the book domain.
// The store stays authoritative: entries are a convenience and may
// disappear at any time.
type Cache interface {
	// Get looks up key and unmarshals the stored value into dest.
	// found=false means cache miss; dest is left untouched.
	Get(ctx context.Context, key string, dest interface{}) (found bool, err error)

	// Set stores value under key with the given TTL.
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error

	// Delete removes the given keys. Missing keys are not an error.
	Delete(ctx context.Context, keys ...string) error

	// DeletePattern removes every key matching a glob-style pattern,
	// e.g. "books-list:*". Used for coarse namespace invalidation.
	DeletePattern(ctx context.Context, pattern string) error

	// Ping verifies the backing connection.
	Ping(ctx context.Context) error
}
