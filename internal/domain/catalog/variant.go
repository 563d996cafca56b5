package catalog

import (
	"time"

	"github.com/google/uuid"
	"github.com/mosslight/storefront/internal/domain/shared"
	"github.com/mosslight/storefront/internal/domain/shared/valueobject"
	"github.com/shopspring/decimal"
)

// ProductVariant is a specific size/color combination of a product with its
// own price and stock count. Its lifecycle is tied to the parent product.
type ProductVariant struct {
	ID        uuid.UUID       `gorm:"type:uuid;primaryKey"`
	ProductID uuid.UUID       `gorm:"type:uuid;not null;index;uniqueIndex:idx_variant_selection,priority:1"`
	Size      string          `gorm:"type:varchar(50);not null;uniqueIndex:idx_variant_selection,priority:2"`
	Color     string          `gorm:"type:varchar(50);not null;uniqueIndex:idx_variant_selection,priority:3"`
	Price     decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"`
	Inventory int             `gorm:"not null;default:0"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName returns the table name for GORM
func (ProductVariant) TableName() string {
	return "product_variants"
}

// NewProductVariant creates a new variant for a product
func NewProductVariant(productID uuid.UUID, size, color string, price valueobject.Money, inventory int) (*ProductVariant, error) {
	if productID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_PRODUCT", "Product ID cannot be empty")
	}
	if size == "" {
		return nil, shared.NewDomainError("INVALID_VARIANT", "Variant size cannot be empty")
	}
	if color == "" {
		return nil, shared.NewDomainError("INVALID_VARIANT", "Variant color cannot be empty")
	}
	if price.IsNegative() {
		return nil, shared.NewDomainError("INVALID_PRICE", "Variant price cannot be negative")
	}
	if inventory < 0 {
		return nil, shared.NewDomainError("INVALID_INVENTORY", "Variant inventory cannot be negative")
	}

	now := time.Now()
	return &ProductVariant{
		ID:        uuid.New(),
		ProductID: productID,
		Size:      size,
		Color:     color,
		Price:     price.Amount(),
		Inventory: inventory,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// SetPrice updates the variant price
func (v *ProductVariant) SetPrice(price valueobject.Money) error {
	if price.IsNegative() {
		return shared.NewDomainError("INVALID_PRICE", "Variant price cannot be negative")
	}
	v.Price = price.Amount()
	v.UpdatedAt = time.Now()
	return nil
}

// SetInventory updates the variant stock count
func (v *ProductVariant) SetInventory(count int) error {
	if count < 0 {
		return shared.NewDomainError("INVALID_INVENTORY", "Variant inventory cannot be negative")
	}
	v.Inventory = count
	v.UpdatedAt = time.Now()
	return nil
}

// GetPriceMoney returns the variant price as Money value object
func (v *ProductVariant) GetPriceMoney() valueobject.Money {
	return valueobject.NewMoneyUSD(v.Price)
}
