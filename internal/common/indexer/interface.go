package indexer

import (
	"context"

	"github.com/project-tktt/go-postgen/internal/domain"
)

// Indexer persists generated posts to a storage backend.
// Two implementations: PostgresIndexer (drafts store for the publishing
// platform) and ElasticsearchIndexer (search index).
type Indexer interface {
	// Index stores a single generated post
	Index(ctx context.Context, post *domain.GeneratedPost) error

	// BulkIndex stores multiple generated posts at once
	BulkIndex(ctx context.Context, posts []*domain.GeneratedPost) error
}

// Multi fans writes out to several backends. The last error wins;
// earlier failures don't stop the remaining backends.
type Multi []Indexer

func (m Multi) Index(ctx context.Context, post *domain.GeneratedPost) error {
	var lastErr error
	for _, idx := range m {
		if err := idx.Index(ctx, post); err != nil {
			lastErr = err
		}
	}
	return lastErr
}

func (m Multi) BulkIndex(ctx context.Context, posts []*domain.GeneratedPost) error {
	var lastErr error
	for _, idx := range m {
		if err := idx.BulkIndex(ctx, posts); err != nil {
			lastErr = err
		}
	}
	return lastErr
}
