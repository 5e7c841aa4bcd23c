package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"agromarket-api/internal/entity"
	"agromarket-api/pkg/logger"

	"github.com/redis/go-redis/v9"
)

// RedisPublisher fans bid lifecycle events out over Redis pub/sub for
// realtime UI feeds. The feed is a convenience, never a correctness
// mechanism: publish failures are logged and dropped.
type RedisPublisher struct {
	client *redis.Client
}

func NewRedisPublisher(addr string, password string, db int) (*RedisPublisher, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis at %s: %w", addr, err)
	}

	return &RedisPublisher{client: rdb}, nil
}

func (p *RedisPublisher) PublishBidEvent(ctx context.Context, event entity.BidEvent) {
	payload, err := json.Marshal(event)
	if err != nil {
		logger.Error("failed to marshal bid event", map[string]any{
			"bid_id": event.BidId,
			"error":  err.Error(),
		})
		return
	}

	channel := fmt.Sprintf("bid_events:%s", event.ProductId)
	if err := p.client.Publish(ctx, channel, payload).Err(); err != nil {
		logger.Error("failed to publish bid event", map[string]any{
			"channel": channel,
			"bid_id":  event.BidId,
			"error":   err.Error(),
		})
	}
}

func (p *RedisPublisher) Close() error {
	return p.client.Close()
}

// NopPublisher is used when no realtime feed is configured.
type NopPublisher struct{}

func (NopPublisher) PublishBidEvent(context.Context, entity.BidEvent) {}
