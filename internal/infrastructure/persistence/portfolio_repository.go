package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/mosslight/storefront/internal/domain/content"
	"github.com/mosslight/storefront/internal/domain/shared"
	"gorm.io/gorm"
)

// GormPortfolioRepository implements content.PortfolioRepository using GORM
type GormPortfolioRepository struct {
	db *gorm.DB
}

// NewGormPortfolioRepository creates a new GORM-based portfolio repository
func NewGormPortfolioRepository(db *gorm.DB) *GormPortfolioRepository {
	return &GormPortfolioRepository{db: db}
}

// FindByID finds a portfolio piece by its ID
func (r *GormPortfolioRepository) FindByID(ctx context.Context, id uuid.UUID) (*content.PortfolioPiece, error) {
	var piece content.PortfolioPiece
	if err := r.db.WithContext(ctx).First(&piece, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &piece, nil
}

// FindAll finds portfolio pieces in curated order
func (r *GormPortfolioRepository) FindAll(ctx context.Context, filter shared.Filter) ([]content.PortfolioPiece, error) {
	var pieces []content.PortfolioPiece
	query := r.db.WithContext(ctx).Model(&content.PortfolioPiece{})

	if filter.Page > 0 && filter.PageSize > 0 {
		offset := (filter.Page - 1) * filter.PageSize
		query = query.Offset(offset).Limit(filter.PageSize)
	}
	query = query.Order("sort_order ASC, created_at DESC")

	if err := query.Find(&pieces).Error; err != nil {
		return nil, err
	}
	return pieces, nil
}

// FindFeatured finds the pieces flagged for the landing page
func (r *GormPortfolioRepository) FindFeatured(ctx context.Context) ([]content.PortfolioPiece, error) {
	var pieces []content.PortfolioPiece
	if err := r.db.WithContext(ctx).
		Where("featured = true").
		Order("sort_order ASC, created_at DESC").
		Find(&pieces).Error; err != nil {
		return nil, err
	}
	return pieces, nil
}

// Save creates or updates a portfolio piece
func (r *GormPortfolioRepository) Save(ctx context.Context, piece *content.PortfolioPiece) error {
	return r.db.WithContext(ctx).Save(piece).Error
}

// Delete deletes a portfolio piece
func (r *GormPortfolioRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&content.PortfolioPiece{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Ensure GormPortfolioRepository implements PortfolioRepository
var _ content.PortfolioRepository = (*GormPortfolioRepository)(nil)
