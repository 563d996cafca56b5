package catalog

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/mosslight/storefront/internal/domain/shared"
	"github.com/mosslight/storefront/internal/domain/shared/valueobject"
	"github.com/shopspring/decimal"
)

// ProductStatus represents the status of a product
type ProductStatus string

const (
	ProductStatusActive       ProductStatus = "active"
	ProductStatusInactive     ProductStatus = "inactive"
	ProductStatusDiscontinued ProductStatus = "discontinued"
)

// StringList is a list of strings stored as a JSON column
type StringList []string

// Value implements driver.Valuer
func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		return "[]", nil
	}
	data, err := json.Marshal(l)
	if err != nil {
		return nil, err
	}
	return string(data), nil
}

// Scan implements sql.Scanner
func (l *StringList) Scan(value any) error {
	if value == nil {
		*l = StringList{}
		return nil
	}
	var data []byte
	switch v := value.(type) {
	case string:
		data = []byte(v)
	case []byte:
		data = v
	default:
		return fmt.Errorf("cannot scan %T into StringList", value)
	}
	if len(data) == 0 {
		*l = StringList{}
		return nil
	}
	return json.Unmarshal(data, l)
}

// Product represents a catalog item and is the aggregate root for
// product-related operations. When HasVariants is true, price and inventory
// are authoritative on the selected variant, never on the product itself.
type Product struct {
	shared.BaseAggregateRoot
	SKU           string           `gorm:"type:varchar(50);not null;uniqueIndex"`
	Name          string           `gorm:"type:varchar(200);not null"`
	Description   string           `gorm:"type:text"`
	Categories    StringList       `gorm:"type:jsonb"`
	Colors        StringList       `gorm:"type:jsonb"`
	Sizes         StringList       `gorm:"type:jsonb"`
	Price         decimal.Decimal  `gorm:"type:decimal(18,4);not null;default:0"`
	TaxRate       *decimal.Decimal `gorm:"type:decimal(8,4)"`  // Percent; nil means the storefront default applies
	ShippingPrice *decimal.Decimal `gorm:"type:decimal(18,4)"` // Flat fee per unit; nil means free shipping
	Inventory     int              `gorm:"not null;default:0"` // Authoritative only when HasVariants is false
	HasVariants   bool             `gorm:"not null;default:false"`
	Variants      []ProductVariant `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE"`
	Status        ProductStatus    `gorm:"type:varchar(20);not null;default:'active'"`
	ImageKey      string           `gorm:"type:varchar(500)"` // Object storage key for the primary image
}

// TableName returns the table name for GORM
func (Product) TableName() string {
	return "products"
}

// NewProduct creates a new product
func NewProduct(sku, name string, price valueobject.Money) (*Product, error) {
	if err := validateSKU(sku); err != nil {
		return nil, err
	}
	if err := validateProductName(name); err != nil {
		return nil, err
	}
	if price.IsNegative() {
		return nil, shared.NewDomainError("INVALID_PRICE", "Price cannot be negative")
	}

	product := &Product{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		SKU:               strings.ToUpper(sku),
		Name:              name,
		Categories:        StringList{},
		Colors:            StringList{},
		Sizes:             StringList{},
		Price:             price.Amount(),
		Status:            ProductStatusActive,
	}

	product.AddDomainEvent(NewProductCreatedEvent(product))

	return product, nil
}

// Update updates the product's basic display information
func (p *Product) Update(name, description string) error {
	if err := validateProductName(name); err != nil {
		return err
	}

	p.Name = name
	p.Description = description
	p.UpdatedAt = time.Now()
	p.IncrementVersion()

	p.AddDomainEvent(NewProductUpdatedEvent(p))

	return nil
}

// SetPrice sets the base unit price
func (p *Product) SetPrice(price valueobject.Money) error {
	if price.IsNegative() {
		return shared.NewDomainError("INVALID_PRICE", "Price cannot be negative")
	}

	old := p.Price
	p.Price = price.Amount()
	p.UpdatedAt = time.Now()
	p.IncrementVersion()

	p.AddDomainEvent(NewProductPriceChangedEvent(p, old))

	return nil
}

// SetTaxRate sets the tax rate percentage; nil reverts to the storefront default
func (p *Product) SetTaxRate(rate *decimal.Decimal) error {
	if rate != nil && rate.IsNegative() {
		return shared.NewDomainError("INVALID_TAX_RATE", "Tax rate cannot be negative")
	}

	p.TaxRate = rate
	p.UpdatedAt = time.Now()
	p.IncrementVersion()

	return nil
}

// SetShippingPrice sets the flat per-unit shipping fee; nil means free shipping
func (p *Product) SetShippingPrice(price *decimal.Decimal) error {
	if price != nil && price.IsNegative() {
		return shared.NewDomainError("INVALID_SHIPPING_PRICE", "Shipping price cannot be negative")
	}

	p.ShippingPrice = price
	p.UpdatedAt = time.Now()
	p.IncrementVersion()

	return nil
}

// SetInventory sets the product-level stock count
// Has no pricing effect when the product has variants
func (p *Product) SetInventory(count int) error {
	if count < 0 {
		return shared.NewDomainError("INVALID_INVENTORY", "Inventory cannot be negative")
	}

	p.Inventory = count
	p.UpdatedAt = time.Now()
	p.IncrementVersion()

	return nil
}

// SetCategories replaces the category list
func (p *Product) SetCategories(categories []string) {
	p.Categories = normalizeList(categories)
	p.UpdatedAt = time.Now()
	p.IncrementVersion()
}

// SetOptions replaces the selectable color and size lists
func (p *Product) SetOptions(colors, sizes []string) {
	p.Colors = normalizeList(colors)
	p.Sizes = normalizeList(sizes)
	p.UpdatedAt = time.Now()
	p.IncrementVersion()
}

// SetImageKey sets the object storage key of the primary product image
func (p *Product) SetImageKey(key string) {
	p.ImageKey = key
	p.UpdatedAt = time.Now()
	p.IncrementVersion()
}

// AddVariant adds a size/color variant and marks the product as variant-priced.
// The (size, color) pair must be unique within the product.
func (p *Product) AddVariant(size, color string, price valueobject.Money, inventory int) (*ProductVariant, error) {
	for i := range p.Variants {
		if p.Variants[i].Size == size && p.Variants[i].Color == color {
			return nil, shared.NewDomainError("DUPLICATE_VARIANT", "A variant with this size and color already exists")
		}
	}

	variant, err := NewProductVariant(p.ID, size, color, price, inventory)
	if err != nil {
		return nil, err
	}

	p.Variants = append(p.Variants, *variant)
	p.HasVariants = true
	p.UpdatedAt = time.Now()
	p.IncrementVersion()

	return variant, nil
}

// RemoveVariant removes a variant by (size, color).
// Clears HasVariants when the last variant is removed.
func (p *Product) RemoveVariant(size, color string) error {
	for i := range p.Variants {
		if p.Variants[i].Size == size && p.Variants[i].Color == color {
			p.Variants = append(p.Variants[:i], p.Variants[i+1:]...)
			p.HasVariants = len(p.Variants) > 0
			p.UpdatedAt = time.Now()
			p.IncrementVersion()
			return nil
		}
	}
	return shared.NewDomainError("VARIANT_NOT_FOUND", "Variant not found")
}

// ResolveVariant finds the variant matching the (size, color) selection.
// Returns nil when the product has no variants, when either selection is
// empty (incomplete selection), or when no variant matches. First match wins
// if the catalog holds duplicate pairs.
func (p *Product) ResolveVariant(size, color string) *ProductVariant {
	if !p.HasVariants || size == "" || color == "" {
		return nil
	}
	for i := range p.Variants {
		if p.Variants[i].Size == size && p.Variants[i].Color == color {
			return &p.Variants[i]
		}
	}
	return nil
}

// HasCompleteSelection reports whether both size and color were supplied.
// Callers use it to distinguish "no selection yet" from "combination
// unavailable" when ResolveVariant returns nil.
func (p *Product) HasCompleteSelection(size, color string) bool {
	return size != "" && color != ""
}

// HasOptions reports whether the product has any variants to select from.
// A variant product with an empty variant list offers no options at all.
func (p *Product) HasOptions() bool {
	return p.HasVariants && len(p.Variants) > 0
}

// Activate activates the product
func (p *Product) Activate() error {
	if p.Status == ProductStatusActive {
		return shared.NewDomainError("ALREADY_ACTIVE", "Product is already active")
	}
	if p.Status == ProductStatusDiscontinued {
		return shared.NewDomainError("CANNOT_ACTIVATE", "Cannot activate a discontinued product")
	}

	p.Status = ProductStatusActive
	p.UpdatedAt = time.Now()
	p.IncrementVersion()

	return nil
}

// Deactivate hides the product from the storefront without deleting it
func (p *Product) Deactivate() error {
	if p.Status == ProductStatusInactive {
		return shared.NewDomainError("ALREADY_INACTIVE", "Product is already inactive")
	}
	if p.Status == ProductStatusDiscontinued {
		return shared.NewDomainError("CANNOT_DEACTIVATE", "Cannot deactivate a discontinued product")
	}

	p.Status = ProductStatusInactive
	p.UpdatedAt = time.Now()
	p.IncrementVersion()

	return nil
}

// Discontinue marks the product as discontinued
// A discontinued product cannot be reactivated
func (p *Product) Discontinue() error {
	if p.Status == ProductStatusDiscontinued {
		return shared.NewDomainError("ALREADY_DISCONTINUED", "Product is already discontinued")
	}

	p.Status = ProductStatusDiscontinued
	p.UpdatedAt = time.Now()
	p.IncrementVersion()

	return nil
}

// IsActive returns true if the product is active
func (p *Product) IsActive() bool {
	return p.Status == ProductStatusActive
}

// GetPriceMoney returns the base price as Money value object
func (p *Product) GetPriceMoney() valueobject.Money {
	return valueobject.NewMoneyUSD(p.Price)
}

// validateSKU validates the product SKU
func validateSKU(sku string) error {
	if sku == "" {
		return shared.NewDomainError("INVALID_SKU", "Product SKU cannot be empty")
	}
	if len(sku) > 50 {
		return shared.NewDomainError("INVALID_SKU", "Product SKU cannot exceed 50 characters")
	}
	for _, r := range sku {
		if !((r >= 'A' && r <= 'Z') || (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '_' || r == '-') {
			return shared.NewDomainError("INVALID_SKU", "Product SKU can only contain letters, numbers, underscores, and hyphens")
		}
	}
	return nil
}

// validateProductName validates the product name
func validateProductName(name string) error {
	if name == "" {
		return shared.NewDomainError("INVALID_NAME", "Product name cannot be empty")
	}
	if len(name) > 200 {
		return shared.NewDomainError("INVALID_NAME", "Product name cannot exceed 200 characters")
	}
	return nil
}

// normalizeList trims entries and drops empties, preserving order
func normalizeList(values []string) StringList {
	out := make(StringList, 0, len(values))
	for _, v := range values {
		v = strings.TrimSpace(v)
		if v != "" {
			out = append(out, v)
		}
	}
	return out
}
