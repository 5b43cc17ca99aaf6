package config

import (
	"context"
	"os"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisClient is a global Redis client instance. Nil when Redis is not
// configured or not reachable; callers must handle nil (caching disabled).
var RedisClient *redis.Client

func InitRedis() {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		RedisClient = nil
		return
	}
	RedisClient = redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: os.Getenv("REDIS_PASS"),
		DB:       0,
	})
}

func RedisCtx() context.Context {
	return context.Background()
}

// ReferenceTTL is how long cached reference data (categories, countries,
// dimension presets) stays fresh, in the in-process cache and in Redis.
func ReferenceTTL() time.Duration {
	if s := os.Getenv("REFERENCE_TTL_SECONDS"); s != "" {
		if n, err := strconv.Atoi(s); err == nil && n > 0 {
			return time.Duration(n) * time.Second
		}
	}
	return 10 * time.Minute
}
