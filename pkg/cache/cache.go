// Package cache stores JSON-encoded values under string keys with a TTL.
//
// Get reports a hit only when the key exists and decodes into dest; every
// backend error is a miss so callers fall through to the database.
package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/shashiranjanraj/tasker/config"
	"github.com/shashiranjanraj/tasker/pkg/logger"
)

// Store is implemented by every cache backend.
type Store interface {
	Get(ctx context.Context, key string, dest interface{}) bool
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error
	Del(ctx context.Context, keys ...string) error
	// Incr adds delta to the counter at key and returns the new value. A
	// delta of 0 reads the counter; a missing counter starts at 0.
	Incr(ctx context.Context, key string, delta int64) (int64, error)
	Close() error
}

// Open returns the store selected by cfg.Cache.Driver. A Redis server that
// cannot be reached is logged and replaced by Nop so the API keeps serving
// from the database.
func Open(ctx context.Context, cfg *config.Config) Store {
	switch cfg.Cache.Driver {
	case "redis":
		store, err := Connect(ctx, cfg.Redis)
		if err != nil {
			logger.Warn("cache: redis unavailable, caching disabled", "addr", cfg.Redis.Addr, "error", err)
			return Nop{}
		}
		return store
	case "memory":
		return NewMemory()
	default:
		return Nop{}
	}
}

// Nop never stores anything.
type Nop struct{}

func (Nop) Get(context.Context, string, interface{}) bool { return false }
func (Nop) Set(context.Context, string, interface{}, time.Duration) error { return nil }
func (Nop) Del(context.Context, ...string) error { return nil }
func (Nop) Incr(context.Context, string, int64) (int64, error) { return 0, nil }
func (Nop) Close() error { return nil }

// Key joins parts with ":" into a namespaced cache key.
func Key(parts ...interface{}) string {
	key := "tasker"
	for _, p := range parts {
		key += ":" + fmt.Sprint(p)
	}
	return key
}
