package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/mosslight/storefront/internal/domain/content"
	"github.com/mosslight/storefront/internal/domain/shared"
	"gorm.io/gorm"
)

// GormSocialRepository implements content.SocialRepository using GORM
type GormSocialRepository struct {
	db *gorm.DB
}

// NewGormSocialRepository creates a new GORM-based social link repository
func NewGormSocialRepository(db *gorm.DB) *GormSocialRepository {
	return &GormSocialRepository{db: db}
}

// FindByID finds a social link by its ID
func (r *GormSocialRepository) FindByID(ctx context.Context, id uuid.UUID) (*content.SocialLink, error) {
	var link content.SocialLink
	if err := r.db.WithContext(ctx).First(&link, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &link, nil
}

// FindAll finds all social links in curated order
func (r *GormSocialRepository) FindAll(ctx context.Context) ([]content.SocialLink, error) {
	var links []content.SocialLink
	if err := r.db.WithContext(ctx).
		Order("sort_order ASC, created_at ASC").
		Find(&links).Error; err != nil {
		return nil, err
	}
	return links, nil
}

// Save creates or updates a social link
func (r *GormSocialRepository) Save(ctx context.Context, link *content.SocialLink) error {
	return r.db.WithContext(ctx).Save(link).Error
}

// Delete deletes a social link
func (r *GormSocialRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&content.SocialLink{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Ensure GormSocialRepository implements SocialRepository
var _ content.SocialRepository = (*GormSocialRepository)(nil)
