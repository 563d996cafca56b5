package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/mosslight/storefront/internal/domain/content"
	"github.com/mosslight/storefront/internal/domain/shared"
	"gorm.io/gorm"
)

// GormDiscussionRepository implements content.DiscussionRepository using GORM
type GormDiscussionRepository struct {
	db *gorm.DB
}

// NewGormDiscussionRepository creates a new GORM-based discussion repository
func NewGormDiscussionRepository(db *gorm.DB) *GormDiscussionRepository {
	return &GormDiscussionRepository{db: db}
}

// FindByID finds a discussion post by its ID
func (r *GormDiscussionRepository) FindByID(ctx context.Context, id uuid.UUID) (*content.DiscussionPost, error) {
	var post content.DiscussionPost
	if err := r.db.WithContext(ctx).First(&post, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &post, nil
}

// FindThreads finds top-level posts, newest first
func (r *GormDiscussionRepository) FindThreads(ctx context.Context, filter shared.Filter) ([]content.DiscussionPost, error) {
	var posts []content.DiscussionPost
	query := r.db.WithContext(ctx).
		Model(&content.DiscussionPost{}).
		Where("parent_id IS NULL")

	if filter.Page > 0 && filter.PageSize > 0 {
		offset := (filter.Page - 1) * filter.PageSize
		query = query.Offset(offset).Limit(filter.PageSize)
	}
	query = query.Order("created_at DESC")

	if err := query.Find(&posts).Error; err != nil {
		return nil, err
	}
	return posts, nil
}

// FindReplies finds the replies under a thread, oldest first
func (r *GormDiscussionRepository) FindReplies(ctx context.Context, parentID uuid.UUID) ([]content.DiscussionPost, error) {
	var posts []content.DiscussionPost
	if err := r.db.WithContext(ctx).
		Where("parent_id = ?", parentID).
		Order("created_at ASC").
		Find(&posts).Error; err != nil {
		return nil, err
	}
	return posts, nil
}

// Save creates or updates a discussion post
func (r *GormDiscussionRepository) Save(ctx context.Context, post *content.DiscussionPost) error {
	return r.db.WithContext(ctx).Save(post).Error
}

// Delete deletes a discussion post and its replies
func (r *GormDiscussionRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("parent_id = ?", id).Delete(&content.DiscussionPost{}).Error; err != nil {
			return err
		}

		result := tx.Delete(&content.DiscussionPost{}, "id = ?", id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return shared.ErrNotFound
		}
		return nil
	})
}

// Ensure GormDiscussionRepository implements DiscussionRepository
var _ content.DiscussionRepository = (*GormDiscussionRepository)(nil)
