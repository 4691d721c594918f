package queue

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/project-tktt/go-postgen/internal/domain"
	"github.com/redis/go-redis/v9"
)

// Consumer consumes raw submissions from the Redis queue
type Consumer struct {
	client    *redis.Client
	queueName string
	timeout   time.Duration
}

// NewConsumer creates a new queue consumer
func NewConsumer(client *redis.Client, queueName string, timeout time.Duration) *Consumer {
	if queueName == "" {
		queueName = "posts:submissions"
	}
	if timeout == 0 {
		timeout = 5 * time.Second
	}
	return &Consumer{
		client:    client,
		queueName: queueName,
		timeout:   timeout,
	}
}

// Consume blocks and waits for a submission from the queue
// Returns nil, nil if timeout occurs with nothing queued
func (c *Consumer) Consume(ctx context.Context) (*domain.RawSubmission, error) {
	result, err := c.client.BRPop(ctx, c.timeout, c.queueName).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, nil // Timeout, nothing queued
		}
		return nil, fmt.Errorf("brpop: %w", err)
	}

	if len(result) < 2 {
		return nil, nil
	}

	var sub domain.RawSubmission
	if err := json.Unmarshal([]byte(result[1]), &sub); err != nil {
		return nil, fmt.Errorf("unmarshal submission: %w", err)
	}

	return &sub, nil
}

// ConsumeBatch consumes up to maxBatch submissions from the queue
// Uses BRPOP to block-wait for the first item (prevents CPU spinning)
// Then uses RPOP to quickly grab remaining items for the batch
func (c *Consumer) ConsumeBatch(ctx context.Context, maxBatch int) ([]*domain.RawSubmission, error) {
	subs := make([]*domain.RawSubmission, 0, maxBatch)

	result, err := c.client.BRPop(ctx, c.timeout, c.queueName).Result()
	if err != nil {
		if err == redis.Nil {
			return subs, nil // Timeout, nothing queued
		}
		return nil, fmt.Errorf("brpop: %w", err)
	}

	if len(result) >= 2 {
		var sub domain.RawSubmission
		if err := json.Unmarshal([]byte(result[1]), &sub); err == nil {
			subs = append(subs, &sub)
		}
	}

	for i := 1; i < maxBatch; i++ {
		result, err := c.client.RPop(ctx, c.queueName).Result()
		if err != nil {
			if err == redis.Nil {
				break // Queue drained
			}
			return subs, fmt.Errorf("rpop: %w", err)
		}

		var sub domain.RawSubmission
		if err := json.Unmarshal([]byte(result), &sub); err != nil {
			continue // Skip malformed payloads
		}

		subs = append(subs, &sub)
	}

	return subs, nil
}
