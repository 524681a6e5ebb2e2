package config

import (
	"context"
	"log"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

// ConnectRedis opens the optional stats cache. Returns nil when no address
// is configured or the server is unreachable; callers treat nil as "no cache".
func ConnectRedis(env Env) *goredis.Client {
	if env.RedisAddr == "" {
		return nil
	}
	rdb := goredis.NewClient(&goredis.Options{
		Addr:         env.RedisAddr,
		Password:     env.RedisPassword,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		log.Printf("redis unavailable (%v), stats cache disabled", err)
		_ = rdb.Close()
		return nil
	}
	return rdb
}
