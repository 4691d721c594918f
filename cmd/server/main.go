package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/project-tktt/go-postgen/internal/api"
	"github.com/project-tktt/go-postgen/internal/common/cleaner"
	"github.com/project-tktt/go-postgen/internal/common/fetcher"
	"github.com/project-tktt/go-postgen/internal/config"
	"github.com/project-tktt/go-postgen/internal/generator"
	"github.com/project-tktt/go-postgen/internal/queue"
	"github.com/redis/go-redis/v9"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	log.Println("Starting Post Generation API")

	// Load configuration
	cfg := config.Load()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Redis is optional for the API: without it only synchronous
	// generation is available
	var publisher *queue.Publisher
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		log.Printf("Warning: Redis unavailable, async submissions disabled: %v", err)
	} else {
		log.Println("Redis connected")
		publisher = queue.NewPublisher(rdb, cfg.Redis.SubmissionQueue)
	}

	// Initialize components
	gen := generator.NewGenerator()
	pageFetcher := fetcher.NewFetcher(fetcher.Config{
		UserAgent:    cfg.Fetcher.UserAgent,
		RequestDelay: cfg.Fetcher.RequestDelay,
	})
	htmlCleaner := cleaner.NewStrictCleaner()

	handler := api.NewHandler(gen, pageFetcher, htmlCleaner, publisher)
	router := api.NewServer(handler)

	srv := &http.Server{
		Addr:    cfg.Server.Addr,
		Handler: router,
	}

	go func() {
		log.Printf("Listening on %s", cfg.Server.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	}()

	// Wait for shutdown signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	<-sigChan
	log.Println("Shutdown signal received, stopping...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("Shutdown error: %v", err)
	}
	log.Println("Graceful shutdown complete")
}
