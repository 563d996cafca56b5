package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/mosslight/storefront/internal/domain/content"
	"github.com/mosslight/storefront/internal/domain/shared"
	"gorm.io/gorm"
)

// GormGalleryRepository implements content.GalleryRepository using GORM
type GormGalleryRepository struct {
	db *gorm.DB
}

// NewGormGalleryRepository creates a new GORM-based gallery repository
func NewGormGalleryRepository(db *gorm.DB) *GormGalleryRepository {
	return &GormGalleryRepository{db: db}
}

// FindByID finds a gallery item by its ID
func (r *GormGalleryRepository) FindByID(ctx context.Context, id uuid.UUID) (*content.GalleryItem, error) {
	var item content.GalleryItem
	if err := r.db.WithContext(ctx).First(&item, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &item, nil
}

// FindAll finds gallery items in curated order
func (r *GormGalleryRepository) FindAll(ctx context.Context, filter shared.Filter) ([]content.GalleryItem, error) {
	var items []content.GalleryItem
	query := r.db.WithContext(ctx).Model(&content.GalleryItem{})

	if filter.Page > 0 && filter.PageSize > 0 {
		offset := (filter.Page - 1) * filter.PageSize
		query = query.Offset(offset).Limit(filter.PageSize)
	}
	query = query.Order("sort_order ASC, created_at DESC")

	if err := query.Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// Save creates or updates a gallery item
func (r *GormGalleryRepository) Save(ctx context.Context, item *content.GalleryItem) error {
	return r.db.WithContext(ctx).Save(item).Error
}

// Delete deletes a gallery item
func (r *GormGalleryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&content.GalleryItem{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Ensure GormGalleryRepository implements GalleryRepository
var _ content.GalleryRepository = (*GormGalleryRepository)(nil)
