package cache

import (
	"context"
	"time"
)

// Store is a byte-valued key-value store with per-key expiration
type Store interface {
	Set(ctx context.Context, key string, value []byte, expiration time.Duration) error
	// Get returns ok=false when the key is missing or expired
	Get(ctx context.Context, key string) (value []byte, ok bool, err error)
	Delete(ctx context.Context, key string) error
	Close() error
}
