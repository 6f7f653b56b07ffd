package utils

import (
	"context"
	"sync"
	"time"

	"github.com/go-redis/redis/v8"
)

const (
	FeedDisabled = "disabled"
	FeedUp       = "up"
	FeedDown     = "down"
)

// HealthStatus represents current status of external services.
type HealthStatus struct {
	EventsFeed string    `json:"eventsFeed"`
	CheckedAt  time.Time `json:"checkedAt"`
}

var (
	currentHealth = HealthStatus{EventsFeed: FeedDisabled}
	mu            sync.RWMutex
)

// GetHealthStatus returns latest stored health snapshot.
func GetHealthStatus() HealthStatus {
	mu.RLock()
	defer mu.RUnlock()
	return currentHealth
}

func setHealth(h HealthStatus) {
	mu.Lock()
	currentHealth = h
	mu.Unlock()
}

// checkEventsFeed pings the status feed once. A nil client means the feed is off.
func checkEventsFeed(ctx context.Context, client *redis.Client) HealthStatus {
	h := HealthStatus{EventsFeed: FeedDisabled, CheckedAt: time.Now()}
	if client == nil {
		return h
	}
	pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		h.EventsFeed = FeedDown
	} else {
		h.EventsFeed = FeedUp
	}
	return h
}

// StartHealthMonitor checks the status feed now and then every interval until
// ctx is cancelled.
func StartHealthMonitor(ctx context.Context, client *redis.Client, interval time.Duration) {
	setHealth(checkEventsFeed(ctx, client))
	if client == nil {
		return
	}
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				setHealth(checkEventsFeed(ctx, client))
			}
		}
	}()
}
