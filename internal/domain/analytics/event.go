package analytics

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/mosslight/storefront/internal/domain/shared"
)

// EventKind is the closed set of trackable storefront events
type EventKind string

const (
	KindPageView    EventKind = "page_view"
	KindProductView EventKind = "product_view"
	KindAddToCart   EventKind = "add_to_cart"
	KindCheckout    EventKind = "checkout"
)

// AllKinds lists every trackable kind, in reporting order
var AllKinds = []EventKind{KindPageView, KindProductView, KindAddToCart, KindCheckout}

// IsValid checks if the kind is a known EventKind
func (k EventKind) IsValid() bool {
	switch k {
	case KindPageView, KindProductView, KindAddToCart, KindCheckout:
		return true
	}
	return false
}

// String returns the string representation of EventKind
func (k EventKind) String() string {
	return string(k)
}

// Event is one recorded storefront interaction. Append-only; events are
// never updated after recording.
type Event struct {
	ID         uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Kind       EventKind  `gorm:"type:varchar(50);not null;index:idx_analytics_kind_time"`
	UserID     *uuid.UUID `gorm:"type:uuid;index"`
	ProductID  *uuid.UUID `gorm:"type:uuid;index"`
	Path       string     `gorm:"type:varchar(500)"`
	OccurredAt time.Time  `gorm:"not null;index:idx_analytics_kind_time"`
}

// TableName returns the table name for GORM
func (Event) TableName() string {
	return "analytics_events"
}

// NewEvent records a storefront interaction. ProductID is required for
// product-scoped kinds and ignored for page views.
func NewEvent(kind EventKind, userID, productID *uuid.UUID, path string) (*Event, error) {
	if !kind.IsValid() {
		return nil, shared.NewDomainError("INVALID_EVENT_KIND", "Unknown analytics event kind")
	}
	if (kind == KindProductView || kind == KindAddToCart) && (productID == nil || *productID == uuid.Nil) {
		return nil, shared.NewDomainError("INVALID_EVENT", "Product ID is required for this event kind")
	}

	return &Event{
		ID:         uuid.New(),
		Kind:       kind,
		UserID:     userID,
		ProductID:  productID,
		Path:       strings.TrimSpace(path),
		OccurredAt: time.Now(),
	}, nil
}

// KindCount is one row of an analytics report
type KindCount struct {
	Kind  EventKind `json:"kind"`
	Count int64     `json:"count"`
}

// Report aggregates event counts over a window
type Report struct {
	From   time.Time   `json:"from"`
	To     time.Time   `json:"to"`
	Counts []KindCount `json:"counts"`
}
