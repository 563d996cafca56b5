package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/mosslight/storefront/internal/interfaces/http/dto"
	"github.com/mosslight/storefront/internal/infrastructure/persistence"
	"github.com/redis/go-redis/v9"
)

// SystemHandler handles health and readiness endpoints
type SystemHandler struct {
	BaseHandler
	db      *persistence.Database
	redis   *redis.Client
	started time.Time
	version string
}

// NewSystemHandler creates a new SystemHandler. The redis client may be
// nil when caching runs in-process.
func NewSystemHandler(db *persistence.Database, redisClient *redis.Client, version string) *SystemHandler {
	return &SystemHandler{
		db:      db,
		redis:   redisClient,
		started: time.Now(),
		version: version,
	}
}

// Health reports liveness; it never touches dependencies
func (h *SystemHandler) Health(c *gin.Context) {
	h.Success(c, gin.H{
		"status":  "ok",
		"version": h.version,
		"uptime":  time.Since(h.started).Round(time.Second).String(),
	})
}

// Ready reports readiness by probing the database and cache
func (h *SystemHandler) Ready(c *gin.Context) {
	checks := gin.H{}
	healthy := true

	if err := h.db.Ping(); err != nil {
		checks["database"] = "unreachable"
		healthy = false
	} else {
		checks["database"] = "ok"
	}

	if h.redis != nil {
		if err := h.redis.Ping(c.Request.Context()).Err(); err != nil {
			checks["cache"] = "unreachable"
			healthy = false
		} else {
			checks["cache"] = "ok"
		}
	}

	if !healthy {
		c.JSON(http.StatusServiceUnavailable, dto.NewErrorResponse("NOT_READY", "One or more dependencies are unavailable"))
		return
	}
	h.Success(c, gin.H{"status": "ready", "checks": checks})
}

// Stats exposes connection pool statistics for operators
func (h *SystemHandler) Stats(c *gin.Context) {
	stats, err := h.db.Stats()
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, stats)
}
