package notify

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// RedisNotifier publishes events on a per-game Redis Pub/Sub channel.
type RedisNotifier struct {
	client *redis.Client
}

// NewRedisNotifier connects to addr and checks the connection.
func NewRedisNotifier(ctx context.Context, addr string) (*RedisNotifier, error) {
	conn := redis.NewClient(&redis.Options{
		Addr: addr,
	})

	if _, err := conn.Ping(ctx).Result(); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &RedisNotifier{client: conn}, nil
}

func NewRedisNotifierWithClient(client *redis.Client) *RedisNotifier {
	return &RedisNotifier{client: client}
}

// Channel - returns the Pub/Sub channel events of a game are published on.
func Channel(gameID string) string {
	return "game:" + gameID + ":events"
}

func (that *RedisNotifier) Publish(ctx context.Context, event Event) error {
	eventJSON, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("could not marshal event: %w", err)
	}

	if err = that.client.Publish(ctx, Channel(event.GameID), eventJSON).Err(); err != nil {
		return fmt.Errorf("failed to publish event: %w", err)
	}

	return nil
}

func (that *RedisNotifier) Close() error {
	if err := that.client.Close(); err != nil {
		return fmt.Errorf("failed to close redis client: %w", err)
	}

	return nil
}
