package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	reviewapp "github.com/mosslight/storefront/internal/application/review"
	"github.com/mosslight/storefront/internal/domain/review"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// Ensure RedisReviewSummaryCache implements the application cache interface
var _ reviewapp.SummaryCache = (*RedisReviewSummaryCache)(nil)

// RedisReviewSummaryCache caches per-product rating summaries in Redis.
// Every failure degrades to a cache miss; the service recomputes from the
// database and the storefront never sees a cache error.
type RedisReviewSummaryCache struct {
	client    *redis.Client
	keyPrefix string
	ttl       time.Duration
	logger    *zap.Logger
}

// NewRedisReviewSummaryCache creates a new review summary cache
func NewRedisReviewSummaryCache(client *redis.Client, ttl time.Duration, logger *zap.Logger) *RedisReviewSummaryCache {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	return &RedisReviewSummaryCache{
		client:    client,
		keyPrefix: "review:summary:",
		ttl:       ttl,
		logger:    logger,
	}
}

// GetSummary returns the cached summary for a product, if present
func (c *RedisReviewSummaryCache) GetSummary(ctx context.Context, productID uuid.UUID) (*review.Summary, bool) {
	data, err := c.client.Get(ctx, c.keyPrefix+productID.String()).Bytes()
	if err != nil {
		if err != redis.Nil {
			c.logger.Warn("review summary cache read failed",
				zap.String("product_id", productID.String()),
				zap.Error(err))
		}
		return nil, false
	}

	var summary review.Summary
	if err := json.Unmarshal(data, &summary); err != nil {
		c.logger.Warn("review summary cache entry corrupt",
			zap.String("product_id", productID.String()),
			zap.Error(err))
		return nil, false
	}

	return &summary, true
}

// SetSummary stores a product's summary with the configured TTL
func (c *RedisReviewSummaryCache) SetSummary(ctx context.Context, productID uuid.UUID, summary review.Summary) {
	data, err := json.Marshal(summary)
	if err != nil {
		return
	}
	if err := c.client.Set(ctx, c.keyPrefix+productID.String(), data, c.ttl).Err(); err != nil {
		c.logger.Warn("review summary cache write failed",
			zap.String("product_id", productID.String()),
			zap.Error(err))
	}
}

// InvalidateSummary drops a product's cached summary
func (c *RedisReviewSummaryCache) InvalidateSummary(ctx context.Context, productID uuid.UUID) {
	if err := c.client.Del(ctx, c.keyPrefix+productID.String()).Err(); err != nil {
		c.logger.Warn("review summary cache invalidation failed",
			zap.String("product_id", productID.String()),
			zap.Error(err))
	}
}
