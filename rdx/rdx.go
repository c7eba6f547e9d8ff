// Package rdx wraps the shared Redis connection. Every helper is
// best-effort: callers log failures and carry on, a cold or absent cache
// never fails a request.
package rdx

import (
	"errors"
	"os"
	"time"

	"pharmahub/globals"

	"github.com/redis/go-redis/v9"
)

var Conn *redis.Client

var ErrUnavailable = errors.New("redis not initialized")

// Init connects to REDIS_ADDR (default localhost:6379). Call once from main;
// tests leave Conn nil and the helpers degrade to no-ops.
func Init() error {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		addr = "localhost:6379"
	}
	Conn = redis.NewClient(&redis.Options{Addr: addr})
	if err := Conn.Ping(globals.Ctx).Err(); err != nil {
		Conn = nil
		return err
	}
	return nil
}

func RdxSet(key, value string) error {
	if Conn == nil {
		return ErrUnavailable
	}
	return Conn.Set(globals.Ctx, key, value, 0).Err()
}

func SetWithExpiry(key, value string, ttl time.Duration) error {
	if Conn == nil {
		return ErrUnavailable
	}
	return Conn.Set(globals.Ctx, key, value, ttl).Err()
}

func RdxGet(key string) (string, error) {
	if Conn == nil {
		return "", ErrUnavailable
	}
	return Conn.Get(globals.Ctx, key).Result()
}

func RdxDel(key string) error {
	if Conn == nil {
		return ErrUnavailable
	}
	return Conn.Del(globals.Ctx, key).Err()
}

func RdxHset(hash, field, value string) error {
	if Conn == nil {
		return ErrUnavailable
	}
	return Conn.HSet(globals.Ctx, hash, field, value).Err()
}

func RdxHdel(hash, field string) error {
	if Conn == nil {
		return ErrUnavailable
	}
	return Conn.HDel(globals.Ctx, hash, field).Err()
}
