package analytics

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// EventRepository defines persistence operations for analytics events
type EventRepository interface {
	Record(ctx context.Context, event *Event) error
	CountByKind(ctx context.Context, from, to time.Time) ([]KindCount, error)
	CountForProduct(ctx context.Context, productID uuid.UUID, kind EventKind, from, to time.Time) (int64, error)
}
