// File: utils/redis.go
package utils

import (
	"context"
	"fmt"
	"time"

	"valetpro/config"

	"github.com/go-redis/redis/v8"
)

// EventsClient is the Redis client backing the status event feed. It stays nil
// when REDIS_ADDR is not configured.
var EventsClient *redis.Client

// InitEventsRedis connects the status feed client. An empty address is not an
// error; the feed is simply disabled.
func InitEventsRedis() error {
	if config.AppConfig.RedisAddr == "" {
		return nil
	}
	client := redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisEventsDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return fmt.Errorf("connect to Redis (events) at %s: %w", config.AppConfig.RedisAddr, err)
	}
	EventsClient = client
	return nil
}

// GetEventsClient returns the status feed client, or nil when disabled.
func GetEventsClient() *redis.Client {
	return EventsClient
}
