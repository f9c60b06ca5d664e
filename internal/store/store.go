// Package store provides the durable key-value store that backs round state,
// scores and the display-name cache.
package store

import (
	"context"
	"time"

	"github.com/trebekbot/trebekbot/pkg/errors"
)

// ErrNotFound is returned by Get when the key is absent or expired.
var ErrNotFound = errors.New(errors.ErrCodeNotFound, "key not found")

// KV is the subset of Redis semantics the bot relies on.
type KV interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	SetEX(ctx context.Context, key string, ttl time.Duration, value string) error
	Del(ctx context.Context, key string) error
	// IncrBy adds delta to the integer at key, treating a missing key as 0,
	// and returns the new value.
	IncrBy(ctx context.Context, key string, delta int64) (int64, error)
}

// Backend is a KV that owns a connection.
type Backend interface {
	KV
	Ping(ctx context.Context) error
	Close() error
}
