package persistence

import (
	"context"

	"github.com/mosslight/storefront/internal/domain/catalog"
	"github.com/mosslight/storefront/internal/domain/shop"
	"gorm.io/gorm"
)

// ShopUnitOfWork implements shop.UnitOfWork on a GORM transaction. The
// callback receives repositories bound to the transaction handle, so
// every write inside it commits or rolls back together.
type ShopUnitOfWork struct {
	db *gorm.DB
}

// NewShopUnitOfWork creates a new ShopUnitOfWork
func NewShopUnitOfWork(db *gorm.DB) *ShopUnitOfWork {
	return &ShopUnitOfWork{db: db}
}

// Execute runs fn inside a single database transaction
func (u *ShopUnitOfWork) Execute(ctx context.Context, fn func(products catalog.ProductRepository, orders shop.OrderRepository, carts shop.CartRepository) error) error {
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(
			NewGormProductRepository(tx),
			NewGormOrderRepository(tx),
			NewGormCartRepository(tx),
		)
	})
}

// Ensure ShopUnitOfWork implements shop.UnitOfWork
var _ shop.UnitOfWork = (*ShopUnitOfWork)(nil)
