package review

import (
	"context"

	"github.com/google/uuid"
	"github.com/mosslight/storefront/internal/domain/shared"
)

// ReviewRepository defines persistence operations for reviews
type ReviewRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Review, error)
	FindByProduct(ctx context.Context, productID uuid.UUID, filter shared.Filter) ([]Review, error)
	FindByProductAndCustomer(ctx context.Context, productID, customerID uuid.UUID) (*Review, error)
	SummaryForProduct(ctx context.Context, productID uuid.UUID) (*Summary, error)
	SummariesForProducts(ctx context.Context, productIDs []uuid.UUID) (map[uuid.UUID]Summary, error)
	Save(ctx context.Context, review *Review) error
	Delete(ctx context.Context, id uuid.UUID) error
}
