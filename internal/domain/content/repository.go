package content

import (
	"context"

	"github.com/google/uuid"
	"github.com/mosslight/storefront/internal/domain/shared"
)

// BlogRepository defines persistence operations for blog posts
type BlogRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*BlogPost, error)
	FindBySlug(ctx context.Context, slug string) (*BlogPost, error)
	FindPublished(ctx context.Context, filter shared.Filter) ([]BlogPost, error)
	FindAll(ctx context.Context, filter shared.Filter) ([]BlogPost, error)
	Count(ctx context.Context, publishedOnly bool) (int64, error)
	Save(ctx context.Context, post *BlogPost) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// GalleryRepository defines persistence operations for gallery items
type GalleryRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*GalleryItem, error)
	FindAll(ctx context.Context, filter shared.Filter) ([]GalleryItem, error)
	Save(ctx context.Context, item *GalleryItem) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// PortfolioRepository defines persistence operations for portfolio pieces
type PortfolioRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*PortfolioPiece, error)
	FindAll(ctx context.Context, filter shared.Filter) ([]PortfolioPiece, error)
	FindFeatured(ctx context.Context) ([]PortfolioPiece, error)
	Save(ctx context.Context, piece *PortfolioPiece) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// DiscussionRepository defines persistence operations for discussion posts
type DiscussionRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*DiscussionPost, error)
	FindThreads(ctx context.Context, filter shared.Filter) ([]DiscussionPost, error)
	FindReplies(ctx context.Context, parentID uuid.UUID) ([]DiscussionPost, error)
	Save(ctx context.Context, post *DiscussionPost) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// SocialRepository defines persistence operations for social links
type SocialRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*SocialLink, error)
	FindAll(ctx context.Context) ([]SocialLink, error)
	Save(ctx context.Context, link *SocialLink) error
	Delete(ctx context.Context, id uuid.UUID) error
}
