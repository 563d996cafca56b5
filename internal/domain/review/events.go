package review

import (
	"github.com/google/uuid"
	"github.com/mosslight/storefront/internal/domain/shared"
)

// EventTypeReviewSubmitted fires for both new reviews and resubmissions
const EventTypeReviewSubmitted = "review.submitted"

// AggregateTypeReview is the aggregate type name for reviews
const AggregateTypeReview = "Review"

// ReviewSubmittedEvent is published when a customer submits or updates a review
type ReviewSubmittedEvent struct {
	shared.BaseDomainEvent
	ProductID  uuid.UUID `json:"product_id"`
	CustomerID uuid.UUID `json:"customer_id"`
	Rating     int       `json:"rating"`
}

// NewReviewSubmittedEvent creates a new ReviewSubmittedEvent
func NewReviewSubmittedEvent(r *Review) *ReviewSubmittedEvent {
	return &ReviewSubmittedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeReviewSubmitted, AggregateTypeReview, r.ID),
		ProductID:       r.ProductID,
		CustomerID:      r.CustomerID,
		Rating:          r.Rating,
	}
}
