package persistence

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/mosslight/storefront/internal/domain/analytics"
	"gorm.io/gorm"
)

// GormEventRepository implements analytics.EventRepository using GORM.
// Events are append-only; there is no update or delete path.
type GormEventRepository struct {
	db *gorm.DB
}

// NewGormEventRepository creates a new GORM-based analytics event repository
func NewGormEventRepository(db *gorm.DB) *GormEventRepository {
	return &GormEventRepository{db: db}
}

// Record appends an analytics event
func (r *GormEventRepository) Record(ctx context.Context, event *analytics.Event) error {
	return r.db.WithContext(ctx).Create(event).Error
}

// CountByKind counts events per kind within the window.
// Kinds with no events in the window are absent from the result.
func (r *GormEventRepository) CountByKind(ctx context.Context, from, to time.Time) ([]analytics.KindCount, error) {
	var counts []analytics.KindCount
	if err := r.db.WithContext(ctx).
		Model(&analytics.Event{}).
		Select("kind, COUNT(*) AS count").
		Where("occurred_at >= ? AND occurred_at < ?", from, to).
		Group("kind").
		Scan(&counts).Error; err != nil {
		return nil, err
	}
	return counts, nil
}

// CountForProduct counts events of one kind for one product within the window
func (r *GormEventRepository) CountForProduct(ctx context.Context, productID uuid.UUID, kind analytics.EventKind, from, to time.Time) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&analytics.Event{}).
		Where("product_id = ? AND kind = ? AND occurred_at >= ? AND occurred_at < ?", productID, kind, from, to).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// Ensure GormEventRepository implements EventRepository
var _ analytics.EventRepository = (*GormEventRepository)(nil)
