package cache

import (
	"context"

	"github.com/redis/go-redis/v9"

	"github.com/pinidurasanjana/AI-Resume-Interview-Coach-Project/internal/config"
)

// NewRedisClient connects the shared rate-limiter backend. Returns an error
// if the server is unreachable so misconfiguration fails at startup.
func NewRedisClient(ctx context.Context, cfg config.RedisConfig) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, err
	}
	return client, nil
}
