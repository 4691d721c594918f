package api

import (
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/project-tktt/go-postgen/internal/common/cleaner"
	"github.com/project-tktt/go-postgen/internal/common/fetcher"
	"github.com/project-tktt/go-postgen/internal/domain"
	"github.com/project-tktt/go-postgen/internal/generator"
	"github.com/project-tktt/go-postgen/internal/queue"
)

// Handler serves the post generation endpoints
type Handler struct {
	generator *generator.Generator
	fetcher   *fetcher.Fetcher
	cleaner   *cleaner.Cleaner
	publisher *queue.Publisher
}

// NewHandler creates a new API handler. The publisher may be nil, in
// which case async submission is disabled.
func NewHandler(gen *generator.Generator, f *fetcher.Fetcher, clean *cleaner.Cleaner, pub *queue.Publisher) *Handler {
	return &Handler{
		generator: gen,
		fetcher:   f,
		cleaner:   clean,
		publisher: pub,
	}
}

type generateRequest struct {
	Text string `json:"text"`
}

type generateURLRequest struct {
	URL string `json:"url"`
}

type submitRequest struct {
	Text   string `json:"text"`
	Source string `json:"source"`
}

// Generate drafts a post from raw pasted text synchronously
func (h *Handler) Generate(c *gin.Context) {
	var req generateRequest
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.Text) == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "Missing or empty 'text' field",
		})
		return
	}

	text := req.Text
	if strings.Contains(text, "<") {
		text = h.cleaner.CleanToText(text)
	}

	post := h.generator.Generate(text)

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"post":    post,
	})
}

// GenerateFromURL fetches a page and drafts a post from its text
func (h *Handler) GenerateFromURL(c *gin.Context) {
	var req generateURLRequest
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.URL) == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "Missing or empty 'url' field",
		})
		return
	}

	title, text, err := h.fetcher.FetchText(req.URL)
	if err != nil {
		log.Printf("Fetch error for %s: %v", req.URL, err)
		c.JSON(http.StatusBadGateway, gin.H{
			"success": false,
			"error":   "Could not fetch the page",
		})
		return
	}

	post := h.generator.Generate(title + "\n" + text)

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"post":    post,
	})
}

// Submit enqueues raw text for async drafting by the worker
func (h *Handler) Submit(c *gin.Context) {
	if h.publisher == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"success": false,
			"error":   "Async submission is not enabled",
		})
		return
	}

	var req submitRequest
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.Text) == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "Missing or empty 'text' field",
		})
		return
	}

	source := req.Source
	if source == "" {
		source = "paste"
	}

	sub := &domain.RawSubmission{
		ID:          fmt.Sprintf("%s-%d", source, time.Now().UnixNano()),
		Source:      source,
		Text:        req.Text,
		SubmittedAt: time.Now(),
	}

	if err := h.publisher.Publish(c.Request.Context(), sub); err != nil {
		log.Printf("Publish error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   "Could not enqueue submission",
		})
		return
	}

	c.JSON(http.StatusAccepted, gin.H{
		"success": true,
		"id":      sub.ID,
	})
}

// Health reports service liveness
func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "ok",
		"timestamp": time.Now().Format(time.RFC3339),
	})
}
