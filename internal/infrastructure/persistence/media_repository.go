package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/mosslight/storefront/internal/domain/media"
	"github.com/mosslight/storefront/internal/domain/shared"
	"gorm.io/gorm"
)

// GormAssetRepository implements media.AssetRepository using GORM
type GormAssetRepository struct {
	db *gorm.DB
}

// NewGormAssetRepository creates a new GORM-based media asset repository
func NewGormAssetRepository(db *gorm.DB) *GormAssetRepository {
	return &GormAssetRepository{db: db}
}

// FindByID finds an asset by its ID
func (r *GormAssetRepository) FindByID(ctx context.Context, id uuid.UUID) (*media.Asset, error) {
	var asset media.Asset
	if err := r.db.WithContext(ctx).First(&asset, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &asset, nil
}

// FindByStorageKey finds an asset by its object storage key
func (r *GormAssetRepository) FindByStorageKey(ctx context.Context, key string) (*media.Asset, error) {
	var asset media.Asset
	if err := r.db.WithContext(ctx).First(&asset, "storage_key = ?", key).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &asset, nil
}

// Save creates or updates an asset
func (r *GormAssetRepository) Save(ctx context.Context, asset *media.Asset) error {
	return r.db.WithContext(ctx).Save(asset).Error
}

// Delete deletes an asset record
func (r *GormAssetRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&media.Asset{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Ensure GormAssetRepository implements AssetRepository
var _ media.AssetRepository = (*GormAssetRepository)(nil)
