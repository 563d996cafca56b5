package catalog

import (
	"context"

	"github.com/google/uuid"
	"github.com/mosslight/storefront/internal/domain/shared"
)

// ProductRepository defines persistence operations for products.
// Implementations must load variants together with the product so that
// variant resolution never observes a partially loaded aggregate.
type ProductRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Product, error)
	FindBySKU(ctx context.Context, sku string) (*Product, error)
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]Product, error)
	FindAll(ctx context.Context, filter shared.Filter) ([]Product, error)
	FindByCategory(ctx context.Context, category string, filter shared.Filter) ([]Product, error)
	ExistsBySKU(ctx context.Context, sku string) (bool, error)
	Count(ctx context.Context, filter shared.Filter) (int64, error)
	Save(ctx context.Context, product *Product) error
	Delete(ctx context.Context, id uuid.UUID) error
}
