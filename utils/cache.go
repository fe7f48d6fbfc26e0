package utils

import (
	"context"
	"fmt"
	"time"

	"blueriver/config"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// CacheClient backs the room catalog cache.
var CacheClient *redis.Client

// NewCacheClient connects to Redis and verifies the connection with a ping.
func NewCacheClient(ctx context.Context, cfg config.Config) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisCacheDB,
	})
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis %s: %w", cfg.RedisAddr, err)
	}
	return client, nil
}

// GetCacheClient returns the shared cache client, connecting on first use.
// The service cannot start without Redis.
func GetCacheClient() *redis.Client {
	if CacheClient == nil {
		client, err := NewCacheClient(context.Background(), config.AppConfig)
		if err != nil {
			GetLogger().Fatal("Failed to connect to Redis (cache)", zap.Error(err))
		}
		CacheClient = client
		GetLogger().Info("Connected to Redis", zap.String("addr", config.AppConfig.RedisAddr))
	}
	return CacheClient
}
