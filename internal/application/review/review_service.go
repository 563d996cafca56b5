package review

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/mosslight/storefront/internal/application/authctx"
	"github.com/mosslight/storefront/internal/domain/catalog"
	"github.com/mosslight/storefront/internal/domain/review"
	"github.com/mosslight/storefront/internal/domain/shared"
	"go.uber.org/zap"
)

// SummaryCache caches per-product rating summaries. Backed by Redis in
// production; failures degrade to recomputation, never to errors.
type SummaryCache interface {
	GetSummary(ctx context.Context, productID uuid.UUID) (*review.Summary, bool)
	SetSummary(ctx context.Context, productID uuid.UUID, summary review.Summary)
	InvalidateSummary(ctx context.Context, productID uuid.UUID)
}

// ReviewService handles product reviews and rating summaries
type ReviewService struct {
	reviewRepo  review.ReviewRepository
	productRepo catalog.ProductRepository
	cache       SummaryCache
	events      shared.EventPublisher
	logger      *zap.Logger
}

// NewReviewService creates a new ReviewService
func NewReviewService(
	reviewRepo review.ReviewRepository,
	productRepo catalog.ProductRepository,
	cache SummaryCache,
	events shared.EventPublisher,
	logger *zap.Logger,
) *ReviewService {
	return &ReviewService{
		reviewRepo:  reviewRepo,
		productRepo: productRepo,
		cache:       cache,
		events:      events,
		logger:      logger,
	}
}

// SubmitReviewRequest represents a review submission
type SubmitReviewRequest struct {
	Rating  int    `json:"rating" binding:"required,min=1,max=5"`
	Comment string `json:"comment" binding:"max=5000"`
}

// ReviewResponse represents a review in API responses
type ReviewResponse struct {
	ID           uuid.UUID `json:"id"`
	ProductID    uuid.UUID `json:"product_id"`
	CustomerName string    `json:"customer_name"`
	Rating       int       `json:"rating"`
	Comment      string    `json:"comment"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// ProductReviewsResponse bundles a product's reviews with its summary
type ProductReviewsResponse struct {
	Reviews       []ReviewResponse `json:"reviews"`
	ReviewCount   int64            `json:"review_count"`
	AverageRating float64          `json:"average_rating"`
}

// GetProductReviews returns a product's reviews and average rating.
// The summary comes from cache when warm.
func (s *ReviewService) GetProductReviews(ctx context.Context, productID uuid.UUID) (*ProductReviewsResponse, error) {
	reviews, err := s.reviewRepo.FindByProduct(ctx, productID, shared.DefaultFilter())
	if err != nil {
		return nil, err
	}

	summary, ok := s.cache.GetSummary(ctx, productID)
	if !ok {
		summary, err = s.reviewRepo.SummaryForProduct(ctx, productID)
		if err != nil {
			return nil, err
		}
		s.cache.SetSummary(ctx, productID, *summary)
	}

	items := make([]ReviewResponse, 0, len(reviews))
	for i := range reviews {
		items = append(items, toReviewResponse(&reviews[i]))
	}

	return &ProductReviewsResponse{
		Reviews:       items,
		ReviewCount:   summary.ReviewCount,
		AverageRating: summary.AverageRating,
	}, nil
}

// SubmitReview creates the caller's review for a product, or replaces an
// existing one. The cached summary is invalidated either way.
func (s *ReviewService) SubmitReview(ctx context.Context, caller authctx.Caller, productID uuid.UUID, req SubmitReviewRequest) (*ReviewResponse, error) {
	if _, err := s.productRepo.FindByID(ctx, productID); err != nil {
		return nil, err
	}

	existing, err := s.reviewRepo.FindByProductAndCustomer(ctx, productID, caller.UserID)
	if err != nil && !errors.Is(err, shared.ErrNotFound) {
		return nil, err
	}

	var target *review.Review
	if existing != nil {
		if err := existing.Update(req.Rating, req.Comment); err != nil {
			return nil, err
		}
		target = existing
	} else {
		target, err = review.NewReview(productID, caller.UserID, caller.Identity(), req.Rating, req.Comment)
		if err != nil {
			return nil, err
		}
	}

	if err := s.reviewRepo.Save(ctx, target); err != nil {
		return nil, err
	}

	s.cache.InvalidateSummary(ctx, productID)

	if err := s.events.Publish(ctx, target.GetDomainEvents()...); err != nil {
		s.logger.Warn("failed to deliver review notifications",
			zap.String("review_id", target.ID.String()),
			zap.Error(err))
	}
	target.ClearDomainEvents()

	resp := toReviewResponse(target)
	return &resp, nil
}

// DeleteReview removes a review. The author or an admin may delete it.
func (s *ReviewService) DeleteReview(ctx context.Context, caller authctx.Caller, reviewID uuid.UUID) error {
	target, err := s.reviewRepo.FindByID(ctx, reviewID)
	if err != nil {
		return err
	}

	if target.CustomerID != caller.UserID {
		if err := caller.RequireAdmin(); err != nil {
			return err
		}
	}

	if err := s.reviewRepo.Delete(ctx, reviewID); err != nil {
		return err
	}

	s.cache.InvalidateSummary(ctx, target.ProductID)

	return nil
}

func toReviewResponse(r *review.Review) ReviewResponse {
	return ReviewResponse{
		ID:           r.ID,
		ProductID:    r.ProductID,
		CustomerName: r.CustomerName,
		Rating:       r.Rating,
		Comment:      r.Comment,
		CreatedAt:    r.CreatedAt,
		UpdatedAt:    r.UpdatedAt,
	}
}
