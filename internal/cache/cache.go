package cache

import (
	"context"
	"time"
)

// Store is a key/value store with per-entry expiry.
type Store interface {
	// Get returns the value for key. ok is false when the key is missing or
	// expired.
	Get(ctx context.Context, key string) (value []byte, ok bool, err error)

	// Set stores value under key until ttl elapses.
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
}

// MultiSetter is implemented by stores that can write several entries in one
// round trip.
type MultiSetter interface {
	SetMulti(ctx context.Context, entries map[string][]byte, ttl time.Duration) error
}

// Purger is implemented by stores that can drop expired entries in bulk.
type Purger interface {
	Purge(ctx context.Context) (int64, error)
}
