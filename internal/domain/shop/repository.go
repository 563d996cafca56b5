package shop

import (
	"context"

	"github.com/google/uuid"
	"github.com/mosslight/storefront/internal/domain/catalog"
	"github.com/mosslight/storefront/internal/domain/shared"
)

// CartRepository defines persistence operations for carts.
// Implementations load items together with the cart.
type CartRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Cart, error)
	FindByCustomer(ctx context.Context, customerID uuid.UUID) (*Cart, error)
	Save(ctx context.Context, cart *Cart) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// OrderRepository defines persistence operations for orders
type OrderRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Order, error)
	FindByNumber(ctx context.Context, number string) (*Order, error)
	FindByCustomer(ctx context.Context, customerID uuid.UUID, filter shared.Filter) ([]Order, error)
	FindAll(ctx context.Context, filter shared.Filter) ([]Order, error)
	Count(ctx context.Context, filter shared.Filter) (int64, error)
	Save(ctx context.Context, order *Order) error
}

// UnitOfWork runs fn against transaction-scoped repositories. Checkout
// uses it so the inventory decrements, the new order, and the emptied
// cart commit or roll back as one unit.
type UnitOfWork interface {
	Execute(ctx context.Context, fn func(products catalog.ProductRepository, orders OrderRepository, carts CartRepository) error) error
}
