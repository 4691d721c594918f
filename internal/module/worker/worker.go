package worker

import (
	"context"
	"fmt"
	"log"
	"strings"
	"sync"

	"github.com/project-tktt/go-postgen/internal/common/cleaner"
	"github.com/project-tktt/go-postgen/internal/common/dedup"
	"github.com/project-tktt/go-postgen/internal/common/indexer"
	"github.com/project-tktt/go-postgen/internal/domain"
	"github.com/project-tktt/go-postgen/internal/generator"
	"github.com/project-tktt/go-postgen/internal/queue"
)

// Worker drains the submission queue, drafts posts and indexes them
type Worker struct {
	consumer  *queue.Consumer
	generator *generator.Generator
	cleaner   *cleaner.Cleaner
	dedup     *dedup.Deduplicator
	indexer   indexer.Indexer

	batchSize   int
	concurrency int
}

// Config holds worker configuration
type Config struct {
	Concurrency int
	BatchSize   int
}

// NewWorker creates a new worker
func NewWorker(
	consumer *queue.Consumer,
	gen *generator.Generator,
	clean *cleaner.Cleaner,
	dd *dedup.Deduplicator,
	idx indexer.Indexer,
	cfg Config,
) *Worker {
	if cfg.Concurrency <= 0 {
		cfg.Concurrency = 5
	}
	if cfg.BatchSize <= 0 {
		cfg.BatchSize = 50
	}

	return &Worker{
		consumer:    consumer,
		generator:   gen,
		cleaner:     clean,
		dedup:       dd,
		indexer:     idx,
		batchSize:   cfg.BatchSize,
		concurrency: cfg.Concurrency,
	}
}

// Run starts the worker pool
func (w *Worker) Run(ctx context.Context) error {
	log.Printf("Starting worker pool with %d workers", w.concurrency)

	var wg sync.WaitGroup
	errChan := make(chan error, w.concurrency)

	for i := 0; i < w.concurrency; i++ {
		wg.Add(1)
		go func(workerID int) {
			defer wg.Done()
			if err := w.runSingle(ctx, workerID); err != nil {
				errChan <- fmt.Errorf("worker %d: %w", workerID, err)
			}
		}(i)
	}

	done := make(chan struct{})
	go func() {
		wg.Wait()
		close(done)
	}()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case err := <-errChan:
		return err
	case <-done:
		return nil
	}
}

func (w *Worker) runSingle(ctx context.Context, workerID int) error {
	log.Printf("Worker %d started", workerID)

	for {
		select {
		case <-ctx.Done():
			log.Printf("Worker %d stopping", workerID)
			return nil
		default:
		}

		// ConsumeBatch uses BRPOP for the first item, so no CPU spinning
		subs, err := w.consumer.ConsumeBatch(ctx, w.batchSize)
		if err != nil {
			log.Printf("Worker %d consume error: %v", workerID, err)
			continue
		}

		if len(subs) == 0 {
			continue // Timeout from BRPOP, try again
		}

		log.Printf("Worker %d processing %d submissions", workerID, len(subs))

		posts := w.processSubmissions(ctx, subs)
		if len(posts) > 0 {
			if err := w.indexer.BulkIndex(ctx, posts); err != nil {
				log.Printf("Worker %d index error: %v", workerID, err)
			} else {
				log.Printf("Worker %d indexed %d posts", workerID, len(posts))
			}
		}
	}
}

func (w *Worker) processSubmissions(ctx context.Context, subs []*domain.RawSubmission) []*domain.GeneratedPost {
	posts := make([]*domain.GeneratedPost, 0, len(subs))

	for _, sub := range subs {
		text := sub.Text
		if strings.Contains(text, "<") {
			text = w.cleaner.CleanToText(text)
		}
		if strings.TrimSpace(text) == "" {
			log.Printf("Skipping empty submission %s", sub.ID)
			continue
		}

		seen, err := w.dedup.IsSeen(ctx, sub.Source, text)
		if err != nil {
			log.Printf("Dedup check error for %s: %v", sub.ID, err)
		} else if seen {
			log.Printf("Skipping duplicate submission %s", sub.ID)
			continue
		}

		post := w.generator.Generate(text)

		if err := w.dedup.MarkSeen(ctx, sub.Source, text); err != nil {
			log.Printf("Dedup mark error for %s: %v", sub.ID, err)
		}

		posts = append(posts, post)
	}

	return posts
}
