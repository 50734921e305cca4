package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"task-manager-backend/internal/logger"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
)

const (
	keyPrefix  = "notifications:"
	defaultTTL = 7 * 24 * time.Hour
)

// RedisOutbox stores each user's notifications in a redis list
type RedisOutbox struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisOutbox wraps an existing client. A zero ttl uses one week.
func NewRedisOutbox(client *redis.Client, ttl time.Duration) *RedisOutbox {
	if ttl <= 0 {
		ttl = defaultTTL
	}
	return &RedisOutbox{client: client, ttl: ttl}
}

// NewRedisClient parses a redis:// URL and checks the server answers
func NewRedisClient(ctx context.Context, url string) (*redis.Client, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}
	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	return client, nil
}

func key(userID uuid.UUID) string {
	return keyPrefix + userID.String()
}

// Push appends a notification and refreshes the list's expiry
func (o *RedisOutbox) Push(ctx context.Context, userID uuid.UUID, n Notification) error {
	payload, err := json.Marshal(n)
	if err != nil {
		return fmt.Errorf("marshal notification: %w", err)
	}
	k := key(userID)
	pipe := o.client.TxPipeline()
	pipe.RPush(ctx, k, payload)
	pipe.Expire(ctx, k, o.ttl)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("push notification: %w", err)
	}
	return nil
}

// Drain reads and deletes the list in one MULTI so a concurrent Push is
// either fully drained or left for the next call.
func (o *RedisOutbox) Drain(ctx context.Context, userID uuid.UUID) ([]Notification, error) {
	k := key(userID)
	pipe := o.client.TxPipeline()
	rangeCmd := pipe.LRange(ctx, k, 0, -1)
	pipe.Del(ctx, k)
	if _, err := pipe.Exec(ctx); err != nil && err != redis.Nil {
		return nil, fmt.Errorf("drain notifications: %w", err)
	}

	raw, err := rangeCmd.Result()
	if err != nil && err != redis.Nil {
		return nil, fmt.Errorf("drain notifications: %w", err)
	}

	out := make([]Notification, 0, len(raw))
	for _, item := range raw {
		var n Notification
		if err := json.Unmarshal([]byte(item), &n); err != nil {
			logger.WithContext(ctx).WithError(err).Warn("Dropping malformed notification")
			continue
		}
		out = append(out, n)
	}
	return out, nil
}
