package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"mythos_backend/pkg/logger"
	"mythos_backend/pkg/monitoring"
)

// Activity event types.
const (
	EventThreadCreated       = "thread.created"
	EventCommentCreated      = "comment.created"
	EventPointsAwarded       = "points.awarded"
	EventProgressCompleted   = "progress.completed"
	EventInteractionRecorded = "interaction.recorded"
)

// ActivityEvent describes something a reader did.
type ActivityEvent struct {
	Type       string    `json:"type"`
	UserID     uint      `json:"userId"`
	EntityID   uint      `json:"entityId"`
	OccurredAt time.Time `json:"occurredAt"`
	Payload    any       `json:"payload,omitempty"`
}

// ActivityPublisher fans events out to other processes.
type ActivityPublisher interface {
	Publish(ctx context.Context, event ActivityEvent) error
}

// RedisActivityPublisher publishes JSON events on a Redis pub/sub channel.
type RedisActivityPublisher struct {
	Redis   *redis.Client
	Channel string
}

func NewRedisActivityPublisher(rdb *redis.Client, channel string) *RedisActivityPublisher {
	return &RedisActivityPublisher{Redis: rdb, Channel: channel}
}

func (p *RedisActivityPublisher) Publish(ctx context.Context, event ActivityEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("encode %s event: %w", event.Type, err)
	}
	return p.Redis.Publish(ctx, p.Channel, payload).Err()
}

// NopActivityPublisher drops every event.
type NopActivityPublisher struct{}

func (NopActivityPublisher) Publish(context.Context, ActivityEvent) error { return nil }

// publishTimeout bounds how long a request waits on the event bus.
const publishTimeout = 2 * time.Second

// emit publishes event and only logs a failure; the caller's write already succeeded.
func emit(ctx context.Context, p ActivityPublisher, event ActivityEvent) {
	if p == nil {
		return
	}
	if event.OccurredAt.IsZero() {
		event.OccurredAt = time.Now()
	}

	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), publishTimeout)
	defer cancel()

	if err := p.Publish(ctx, event); err != nil {
		monitoring.ActivityEvents.WithLabelValues(event.Type, "error").Inc()
		logger.Log.Warn("Failed to publish activity event",
			zap.String("type", event.Type),
			zap.Uint("userId", event.UserID),
			zap.Error(err),
		)
		return
	}
	monitoring.ActivityEvents.WithLabelValues(event.Type, "ok").Inc()
}
