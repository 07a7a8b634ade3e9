// Package cache keeps slow-changing reference data (technology names,
// wappalyzer icons) close to the console so views do not refetch it on
// every request.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "witnessconsole:"

// Reference stores JSON documents by key
type Reference interface {
	Load(ctx context.Context, key string, out any) (bool, error)
	Store(ctx context.Context, key string, v any) error
}

// Redis is a Reference backed by a Redis server
type Redis struct {
	rdb *redis.Client
	ttl time.Duration
}

// NewRedis connects to addr and checks the connection
func NewRedis(ctx context.Context, addr string, ttl time.Duration) (*Redis, error) {
	rdb := redis.NewClient(&redis.Options{Addr: addr})
	if err := rdb.Ping(ctx).Err(); err != nil {
		rdb.Close()
		return nil, fmt.Errorf("redis ping %s: %w", addr, err)
	}
	return &Redis{rdb: rdb, ttl: ttl}, nil
}

// Load decodes the cached value for key into out. A miss is not an error.
func (r *Redis) Load(ctx context.Context, key string, out any) (bool, error) {
	raw, err := r.rdb.Get(ctx, keyPrefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return false, fmt.Errorf("decode cached %s: %w", key, err)
	}
	return true, nil
}

func (r *Redis) Store(ctx context.Context, key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return r.rdb.Set(ctx, keyPrefix+key, raw, r.ttl).Err()
}

func (r *Redis) Close() error {
	return r.rdb.Close()
}

// Noop never hits and drops every write. Used when no Redis is configured.
type Noop struct{}

func (Noop) Load(context.Context, string, any) (bool, error) { return false, nil }
func (Noop) Store(context.Context, string, any) error        { return nil }
