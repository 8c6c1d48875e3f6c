package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/shashiranjanraj/tasker/config"
	"github.com/shashiranjanraj/tasker/pkg/metrics"
)

// Redis is a Store backed by a go-redis client.
type Redis struct {
	rdb *redis.Client
}

// Connect initialises the Redis client and verifies the connection with a ping.
func Connect(ctx context.Context, cfg config.Redis) (*Redis, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("cache: redis ping: %w", err)
	}
	return &Redis{rdb: rdb}, nil
}

func (r *Redis) Get(ctx context.Context, key string, dest interface{}) bool {
	val, err := r.rdb.Get(ctx, key).Bytes()
	if err != nil || json.Unmarshal(val, dest) != nil {
		metrics.CacheMiss("redis")
		return false
	}
	metrics.CacheHit("redis")
	return true
}

func (r *Redis) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return r.rdb.Set(ctx, key, data, ttl).Err()
}

func (r *Redis) Del(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	return r.rdb.Del(ctx, keys...).Err()
}

func (r *Redis) Incr(ctx context.Context, key string, delta int64) (int64, error) {
	return r.rdb.IncrBy(ctx, key, delta).Result()
}

func (r *Redis) Close() error { return r.rdb.Close() }
