package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/mosslight/storefront/internal/domain/content"
	"github.com/mosslight/storefront/internal/domain/shared"
	"gorm.io/gorm"
)

// GormBlogRepository implements content.BlogRepository using GORM
type GormBlogRepository struct {
	db *gorm.DB
}

// NewGormBlogRepository creates a new GORM-based blog repository
func NewGormBlogRepository(db *gorm.DB) *GormBlogRepository {
	return &GormBlogRepository{db: db}
}

// FindByID finds a blog post by its ID
func (r *GormBlogRepository) FindByID(ctx context.Context, id uuid.UUID) (*content.BlogPost, error) {
	var post content.BlogPost
	if err := r.db.WithContext(ctx).First(&post, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &post, nil
}

// FindBySlug finds a blog post by its slug
func (r *GormBlogRepository) FindBySlug(ctx context.Context, slug string) (*content.BlogPost, error) {
	var post content.BlogPost
	if err := r.db.WithContext(ctx).First(&post, "slug = ?", slug).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &post, nil
}

// FindPublished finds published posts matching the filter
func (r *GormBlogRepository) FindPublished(ctx context.Context, filter shared.Filter) ([]content.BlogPost, error) {
	var posts []content.BlogPost
	query := r.applyFilter(
		r.db.WithContext(ctx).Model(&content.BlogPost{}).Where("published = true"),
		filter,
	)

	if err := query.Find(&posts).Error; err != nil {
		return nil, err
	}
	return posts, nil
}

// FindAll finds all posts, drafts included, matching the filter
func (r *GormBlogRepository) FindAll(ctx context.Context, filter shared.Filter) ([]content.BlogPost, error) {
	var posts []content.BlogPost
	query := r.applyFilter(
		r.db.WithContext(ctx).Model(&content.BlogPost{}),
		filter,
	)

	if err := query.Find(&posts).Error; err != nil {
		return nil, err
	}
	return posts, nil
}

// Count counts posts, optionally restricted to published ones
func (r *GormBlogRepository) Count(ctx context.Context, publishedOnly bool) (int64, error) {
	var count int64
	query := r.db.WithContext(ctx).Model(&content.BlogPost{})
	if publishedOnly {
		query = query.Where("published = true")
	}

	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// Save creates or updates a blog post
func (r *GormBlogRepository) Save(ctx context.Context, post *content.BlogPost) error {
	return r.db.WithContext(ctx).Save(post).Error
}

// Delete deletes a blog post
func (r *GormBlogRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&content.BlogPost{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// applyFilter applies search, pagination and ordering
func (r *GormBlogRepository) applyFilter(query *gorm.DB, filter shared.Filter) *gorm.DB {
	if filter.Search != "" {
		searchPattern := "%" + filter.Search + "%"
		query = query.Where("title ILIKE ? OR excerpt ILIKE ?", searchPattern, searchPattern)
	}

	if filter.Page > 0 && filter.PageSize > 0 {
		offset := (filter.Page - 1) * filter.PageSize
		query = query.Offset(offset).Limit(filter.PageSize)
	}

	orderBy := ValidateSortField(filter.OrderBy, BlogPostSortFields, "")
	if orderBy != "" {
		query = query.Order(orderBy + " " + ValidateSortOrder(filter.OrderDir))
	} else {
		// Drafts have no published_at; fall back to creation time
		query = query.Order("published_at DESC NULLS LAST, created_at DESC")
	}

	return query
}

// Ensure GormBlogRepository implements BlogRepository
var _ content.BlogRepository = (*GormBlogRepository)(nil)
