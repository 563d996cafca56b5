package media

import (
	"context"

	"github.com/google/uuid"
)

// AssetRepository defines persistence operations for media assets
type AssetRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Asset, error)
	FindByStorageKey(ctx context.Context, key string) (*Asset, error)
	Save(ctx context.Context, asset *Asset) error
	Delete(ctx context.Context, id uuid.UUID) error
}
