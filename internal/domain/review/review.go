package review

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/mosslight/storefront/internal/domain/shared"
)

// Rating bounds for product reviews
const (
	MinRating = 1
	MaxRating = 5
)

// Review is a customer's rating and comment on a product.
// One review per customer per product; resubmitting replaces the old one.
type Review struct {
	shared.BaseAggregateRoot
	ProductID    uuid.UUID `gorm:"type:uuid;not null;index;uniqueIndex:idx_review_author"`
	CustomerID   uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_review_author"`
	CustomerName string    `gorm:"type:varchar(100);not null"`
	Rating       int       `gorm:"not null"`
	Comment      string    `gorm:"type:text"`
}

// TableName returns the table name for GORM
func (Review) TableName() string {
	return "reviews"
}

// NewReview creates a review for a product
func NewReview(productID, customerID uuid.UUID, customerName string, rating int, comment string) (*Review, error) {
	if productID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_PRODUCT", "Product ID cannot be empty")
	}
	if customerID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_CUSTOMER", "Customer ID cannot be empty")
	}
	if err := validateRating(rating); err != nil {
		return nil, err
	}

	review := &Review{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		ProductID:         productID,
		CustomerID:        customerID,
		CustomerName:      strings.TrimSpace(customerName),
		Rating:            rating,
		Comment:           strings.TrimSpace(comment),
	}

	review.AddDomainEvent(NewReviewSubmittedEvent(review))

	return review, nil
}

// Update replaces the rating and comment of an existing review
func (r *Review) Update(rating int, comment string) error {
	if err := validateRating(rating); err != nil {
		return err
	}

	r.Rating = rating
	r.Comment = strings.TrimSpace(comment)
	r.UpdatedAt = time.Now()
	r.IncrementVersion()

	r.AddDomainEvent(NewReviewSubmittedEvent(r))

	return nil
}

func validateRating(rating int) error {
	if rating < MinRating || rating > MaxRating {
		return shared.NewDomainError("INVALID_RATING", "Rating must be between 1 and 5")
	}
	return nil
}

// Summary is the aggregate rating picture for one product.
// AverageRating is zero when the product has no reviews.
type Summary struct {
	ProductID     uuid.UUID `json:"product_id"`
	ReviewCount   int64     `json:"review_count"`
	AverageRating float64   `json:"average_rating"`
}
