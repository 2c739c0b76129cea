package config

import (
	"amazon-shop/logging"
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// ConnectRedis returns nil when redis cannot be reached; callers fall back to
// in-process sessions and an uncached catalog.
func ConnectRedis(ctx context.Context, cfg *Config) *redis.Client {
	var opt *redis.Options
	if cfg.RedisURL != "" {
		parsed, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			logging.Warn().Err(err).Msg("failed to parse REDIS_URL, running without redis")
			return nil
		}
		opt = parsed
	} else {
		opt = &redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       0,
		}
	}

	client := redis.NewClient(opt)

	pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		logging.Warn().Err(err).Msg("redis connection failed, running without redis")
		_ = client.Close()
		return nil
	}

	logging.Info().Str("addr", opt.Addr).Msg("redis connected")
	return client
}
