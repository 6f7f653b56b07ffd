package valet

import (
	"context"
	"encoding/json"
	"fmt"

	"valetpro/models"

	"github.com/go-redis/redis/v8"
)

// EventPublisher fans status changes out to listeners outside the process.
type EventPublisher interface {
	Publish(ctx context.Context, evt models.StatusEvent) error
}

// NopPublisher drops every event. Used when no Redis feed is configured.
type NopPublisher struct{}

func (NopPublisher) Publish(context.Context, models.StatusEvent) error { return nil }

// RedisEventPublisher publishes JSON-encoded events on a pub/sub channel.
// Nothing is stored; subscribers that are not listening miss the event.
type RedisEventPublisher struct {
	client  *redis.Client
	channel string
}

func NewRedisEventPublisher(client *redis.Client, channel string) *RedisEventPublisher {
	return &RedisEventPublisher{client: client, channel: channel}
}

func (p *RedisEventPublisher) Publish(ctx context.Context, evt models.StatusEvent) error {
	b, err := json.Marshal(evt)
	if err != nil {
		return fmt.Errorf("encode status event: %w", err)
	}
	if err := p.client.Publish(ctx, p.channel, b).Err(); err != nil {
		return fmt.Errorf("publish status event on %s: %w", p.channel, err)
	}
	return nil
}
