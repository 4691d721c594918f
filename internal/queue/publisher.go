package queue

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/project-tktt/go-postgen/internal/domain"
	"github.com/redis/go-redis/v9"
)

// Publisher pushes raw submissions to the Redis queue
type Publisher struct {
	client    *redis.Client
	queueName string
}

// NewPublisher creates a new queue publisher
func NewPublisher(client *redis.Client, queueName string) *Publisher {
	if queueName == "" {
		queueName = "posts:submissions"
	}
	return &Publisher{
		client:    client,
		queueName: queueName,
	}
}

// Publish pushes a single submission to the queue
func (p *Publisher) Publish(ctx context.Context, sub *domain.RawSubmission) error {
	data, err := json.Marshal(sub)
	if err != nil {
		return fmt.Errorf("marshal submission: %w", err)
	}

	if err := p.client.LPush(ctx, p.queueName, data).Err(); err != nil {
		return fmt.Errorf("lpush: %w", err)
	}

	return nil
}

// PublishBatch pushes multiple submissions to the queue
func (p *Publisher) PublishBatch(ctx context.Context, subs []*domain.RawSubmission) error {
	if len(subs) == 0 {
		return nil
	}

	pipe := p.client.Pipeline()
	for _, sub := range subs {
		data, err := json.Marshal(sub)
		if err != nil {
			return fmt.Errorf("marshal submission: %w", err)
		}
		pipe.LPush(ctx, p.queueName, data)
	}

	_, err := pipe.Exec(ctx)
	if err != nil {
		return fmt.Errorf("pipeline exec: %w", err)
	}

	return nil
}

// QueueLength returns the current queue length
func (p *Publisher) QueueLength(ctx context.Context) (int64, error) {
	return p.client.LLen(ctx, p.queueName).Result()
}
