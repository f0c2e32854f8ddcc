package rdx

import (
	"context"
	"os"
	"time"

	"github.com/redis/go-redis/v9"
)

// Conn is the shared Redis connection. Redis is the gateway's durable
// local storage: session rows survive restarts and are scoped to this
// deployment the way browser localStorage is scoped to an origin.
var Conn *redis.Client

func init() {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		addr = "localhost:6379"
	}
	Conn = redis.NewClient(&redis.Options{
		Addr: addr,
	})
}

func Set(ctx context.Context, key, value string, ttl time.Duration) error {
	return Conn.Set(ctx, key, value, ttl).Err()
}

// Get returns "" for a missing key; only real transport errors come
// back as errors.
func Get(ctx context.Context, key string) (string, error) {
	val, err := Conn.Get(ctx, key).Result()
	if err == redis.Nil {
		return "", nil
	}
	return val, err
}

func Del(ctx context.Context, key string) error {
	return Conn.Del(ctx, key).Err()
}
