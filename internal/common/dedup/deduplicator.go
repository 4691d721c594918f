package dedup

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Deduplicator tracks already-drafted submissions in Redis so the same
// forwarded message pasted twice doesn't produce two drafts
type Deduplicator struct {
	client     *redis.Client
	prefix     string
	defaultTTL time.Duration
}

// NewDeduplicator creates a new Redis-based deduplicator
func NewDeduplicator(client *redis.Client, prefix string, defaultTTL time.Duration) *Deduplicator {
	if prefix == "" {
		prefix = "dedup"
	}
	if defaultTTL == 0 {
		defaultTTL = 24 * time.Hour * 30 // 30 days default
	}
	return &Deduplicator{
		client:     client,
		prefix:     prefix,
		defaultTTL: defaultTTL,
	}
}

// IsSeen checks whether this exact text content has been drafted before
func (d *Deduplicator) IsSeen(ctx context.Context, source, content string) (bool, error) {
	key := d.makeKey(source, d.hashContent(content))
	exists, err := d.client.Exists(ctx, key).Result()
	if err != nil {
		return false, fmt.Errorf("redis exists: %w", err)
	}
	return exists > 0, nil
}

// MarkSeen records the content hash with the default TTL
func (d *Deduplicator) MarkSeen(ctx context.Context, source, content string) error {
	key := d.makeKey(source, d.hashContent(content))
	if err := d.client.Set(ctx, key, time.Now().Unix(), d.defaultTTL).Err(); err != nil {
		return fmt.Errorf("redis set: %w", err)
	}
	return nil
}

func (d *Deduplicator) makeKey(source, hash string) string {
	return fmt.Sprintf("%s:%s:%s", d.prefix, source, hash)
}

func (d *Deduplicator) hashContent(content string) string {
	h := sha256.Sum256([]byte(content))
	return hex.EncodeToString(h[:16]) // First 16 bytes (32 hex chars)
}
