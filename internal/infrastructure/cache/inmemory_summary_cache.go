package cache

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	reviewapp "github.com/mosslight/storefront/internal/application/review"
	"github.com/mosslight/storefront/internal/domain/review"
)

// Ensure InMemoryReviewSummaryCache implements the application cache interface
var _ reviewapp.SummaryCache = (*InMemoryReviewSummaryCache)(nil)

type summaryEntry struct {
	summary   review.Summary
	expiresAt time.Time
}

// InMemoryReviewSummaryCache is a process-local summary cache for
// single-instance deployments and tests.
type InMemoryReviewSummaryCache struct {
	mu      sync.RWMutex
	entries map[uuid.UUID]summaryEntry
	ttl     time.Duration
}

// NewInMemoryReviewSummaryCache creates a new in-memory summary cache
func NewInMemoryReviewSummaryCache(ttl time.Duration) *InMemoryReviewSummaryCache {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	return &InMemoryReviewSummaryCache{
		entries: make(map[uuid.UUID]summaryEntry),
		ttl:     ttl,
	}
}

// GetSummary returns the cached summary for a product, if present and fresh
func (c *InMemoryReviewSummaryCache) GetSummary(_ context.Context, productID uuid.UUID) (*review.Summary, bool) {
	c.mu.RLock()
	entry, ok := c.entries[productID]
	c.mu.RUnlock()

	if !ok {
		return nil, false
	}
	if time.Now().After(entry.expiresAt) {
		c.InvalidateSummary(context.Background(), productID)
		return nil, false
	}

	summary := entry.summary
	return &summary, true
}

// SetSummary stores a product's summary with the configured TTL
func (c *InMemoryReviewSummaryCache) SetSummary(_ context.Context, productID uuid.UUID, summary review.Summary) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[productID] = summaryEntry{
		summary:   summary,
		expiresAt: time.Now().Add(c.ttl),
	}
}

// InvalidateSummary drops a product's cached summary
func (c *InMemoryReviewSummaryCache) InvalidateSummary(_ context.Context, productID uuid.UUID) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, productID)
}
