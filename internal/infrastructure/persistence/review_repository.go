package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/mosslight/storefront/internal/domain/review"
	"github.com/mosslight/storefront/internal/domain/shared"
	"gorm.io/gorm"
)

// GormReviewRepository implements review.ReviewRepository using GORM
type GormReviewRepository struct {
	db *gorm.DB
}

// NewGormReviewRepository creates a new GORM-based review repository
func NewGormReviewRepository(db *gorm.DB) *GormReviewRepository {
	return &GormReviewRepository{db: db}
}

// FindByID finds a review by its ID
func (r *GormReviewRepository) FindByID(ctx context.Context, id uuid.UUID) (*review.Review, error) {
	var rv review.Review
	if err := r.db.WithContext(ctx).First(&rv, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &rv, nil
}

// FindByProduct finds reviews for a product, newest first by default
func (r *GormReviewRepository) FindByProduct(ctx context.Context, productID uuid.UUID, filter shared.Filter) ([]review.Review, error) {
	var reviews []review.Review
	query := r.db.WithContext(ctx).
		Model(&review.Review{}).
		Where("product_id = ?", productID)

	if filter.Page > 0 && filter.PageSize > 0 {
		offset := (filter.Page - 1) * filter.PageSize
		query = query.Offset(offset).Limit(filter.PageSize)
	}

	orderBy := ValidateSortField(filter.OrderBy, ReviewSortFields, "created_at")
	query = query.Order(orderBy + " " + ValidateSortOrder(filter.OrderDir))

	if err := query.Find(&reviews).Error; err != nil {
		return nil, err
	}
	return reviews, nil
}

// FindByProductAndCustomer finds the review a customer left on a product
func (r *GormReviewRepository) FindByProductAndCustomer(ctx context.Context, productID, customerID uuid.UUID) (*review.Review, error) {
	var rv review.Review
	if err := r.db.WithContext(ctx).
		First(&rv, "product_id = ? AND customer_id = ?", productID, customerID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &rv, nil
}

// summaryRow is the scan target for the aggregate queries
type summaryRow struct {
	ProductID     uuid.UUID
	ReviewCount   int64
	AverageRating float64
}

// SummaryForProduct computes the review count and average rating for a product.
// A product with no reviews yields a zero summary, not an error.
func (r *GormReviewRepository) SummaryForProduct(ctx context.Context, productID uuid.UUID) (*review.Summary, error) {
	var row summaryRow
	if err := r.db.WithContext(ctx).
		Model(&review.Review{}).
		Select("product_id, COUNT(*) AS review_count, COALESCE(AVG(rating), 0) AS average_rating").
		Where("product_id = ?", productID).
		Group("product_id").
		Scan(&row).Error; err != nil {
		return nil, err
	}

	summary := review.Summary{
		ProductID:     productID,
		ReviewCount:   row.ReviewCount,
		AverageRating: row.AverageRating,
	}
	return &summary, nil
}

// SummariesForProducts computes summaries for many products in one query.
// Products without reviews are absent from the result map.
func (r *GormReviewRepository) SummariesForProducts(ctx context.Context, productIDs []uuid.UUID) (map[uuid.UUID]review.Summary, error) {
	summaries := make(map[uuid.UUID]review.Summary, len(productIDs))
	if len(productIDs) == 0 {
		return summaries, nil
	}

	var rows []summaryRow
	if err := r.db.WithContext(ctx).
		Model(&review.Review{}).
		Select("product_id, COUNT(*) AS review_count, COALESCE(AVG(rating), 0) AS average_rating").
		Where("product_id IN ?", productIDs).
		Group("product_id").
		Scan(&rows).Error; err != nil {
		return nil, err
	}

	for _, row := range rows {
		summaries[row.ProductID] = review.Summary{
			ProductID:     row.ProductID,
			ReviewCount:   row.ReviewCount,
			AverageRating: row.AverageRating,
		}
	}
	return summaries, nil
}

// Save creates or updates a review
func (r *GormReviewRepository) Save(ctx context.Context, rv *review.Review) error {
	return r.db.WithContext(ctx).Save(rv).Error
}

// Delete deletes a review
func (r *GormReviewRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&review.Review{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Ensure GormReviewRepository implements ReviewRepository
var _ review.ReviewRepository = (*GormReviewRepository)(nil)
