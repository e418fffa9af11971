// Package kv provides the durable key-value storage that keeps a signed-in
// session across dashboard restarts.
package kv

import (
	"context"
	"time"
)

// Store is a byte-oriented key-value store with per-key expiry.
// Get returns nil, nil for a missing key.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}
