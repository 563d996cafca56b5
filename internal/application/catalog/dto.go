package catalog

import (
	"time"

	"github.com/google/uuid"
	"github.com/mosslight/storefront/internal/domain/catalog"
	"github.com/shopspring/decimal"
)

// CreateProductRequest represents a request to create a new product
type CreateProductRequest struct {
	SKU           string           `json:"sku" binding:"required,min=1,max=50"`
	Name          string           `json:"name" binding:"required,min=1,max=200"`
	Description   string           `json:"description" binding:"max=5000"`
	Price         decimal.Decimal  `json:"price" binding:"required"`
	TaxRate       *decimal.Decimal `json:"tax_rate"`
	ShippingPrice *decimal.Decimal `json:"shipping_price"`
	Inventory     *int             `json:"inventory"`
	Categories    []string         `json:"categories"`
	Colors        []string         `json:"colors"`
	Sizes         []string         `json:"sizes"`
}

// UpdateProductRequest represents a request to update a product
type UpdateProductRequest struct {
	Name          *string          `json:"name" binding:"omitempty,min=1,max=200"`
	Description   *string          `json:"description" binding:"omitempty,max=5000"`
	Price         *decimal.Decimal `json:"price"`
	TaxRate       *decimal.Decimal `json:"tax_rate"`
	ShippingPrice *decimal.Decimal `json:"shipping_price"`
	Inventory     *int             `json:"inventory"`
	Categories    []string         `json:"categories"`
	Colors        []string         `json:"colors"`
	Sizes         []string         `json:"sizes"`
	Status        *string          `json:"status" binding:"omitempty,oneof=active inactive discontinued"`
}

// AddVariantRequest represents a request to add a product variant
type AddVariantRequest struct {
	Size      string          `json:"size" binding:"required,min=1,max=50"`
	Color     string          `json:"color" binding:"required,min=1,max=50"`
	Price     decimal.Decimal `json:"price" binding:"required"`
	Inventory int             `json:"inventory" binding:"min=0"`
}

// UpdateVariantRequest represents a request to update a variant
type UpdateVariantRequest struct {
	Price     *decimal.Decimal `json:"price"`
	Inventory *int             `json:"inventory" binding:"omitempty,min=0"`
}

// ProductListFilter represents filter options for the product list
type ProductListFilter struct {
	Search   string `form:"search"`
	Category string `form:"category"`
	Status   string `form:"status" binding:"omitempty,oneof=active inactive discontinued"`
	Page     int    `form:"page" binding:"omitempty,min=1"`
	PageSize int    `form:"page_size" binding:"omitempty,min=1,max=100"`
}

// VariantResponse represents a variant in API responses
type VariantResponse struct {
	ID        uuid.UUID       `json:"id"`
	Size      string          `json:"size"`
	Color     string          `json:"color"`
	Price     decimal.Decimal `json:"price"`
	Inventory int             `json:"inventory"`
}

// ProductResponse represents a product in API responses
type ProductResponse struct {
	ID            uuid.UUID         `json:"id"`
	SKU           string            `json:"sku"`
	Name          string            `json:"name"`
	Description   string            `json:"description"`
	Price         decimal.Decimal   `json:"price"`
	TaxRate       *decimal.Decimal  `json:"tax_rate,omitempty"`
	ShippingPrice *decimal.Decimal  `json:"shipping_price,omitempty"`
	Inventory     int               `json:"inventory"`
	HasVariants   bool              `json:"has_variants"`
	Variants      []VariantResponse `json:"variants,omitempty"`
	Categories    []string          `json:"categories"`
	Colors        []string          `json:"colors"`
	Sizes         []string          `json:"sizes"`
	Status        string            `json:"status"`
	ImageKey      string            `json:"image_key,omitempty"`
	CreatedAt     time.Time         `json:"created_at"`
	UpdatedAt     time.Time         `json:"updated_at"`
	Version       int               `json:"version"`
}

// ToVariantResponse converts a domain ProductVariant to VariantResponse
func ToVariantResponse(v *catalog.ProductVariant) VariantResponse {
	return VariantResponse{
		ID:        v.ID,
		Size:      v.Size,
		Color:     v.Color,
		Price:     v.Price,
		Inventory: v.Inventory,
	}
}

// ToProductResponse converts a domain Product to ProductResponse
func ToProductResponse(p *catalog.Product) ProductResponse {
	variants := make([]VariantResponse, 0, len(p.Variants))
	for i := range p.Variants {
		variants = append(variants, ToVariantResponse(&p.Variants[i]))
	}
	return ProductResponse{
		ID:            p.ID,
		SKU:           p.SKU,
		Name:          p.Name,
		Description:   p.Description,
		Price:         p.Price,
		TaxRate:       p.TaxRate,
		ShippingPrice: p.ShippingPrice,
		Inventory:     p.Inventory,
		HasVariants:   p.HasVariants,
		Variants:      variants,
		Categories:    p.Categories,
		Colors:        p.Colors,
		Sizes:         p.Sizes,
		Status:        string(p.Status),
		ImageKey:      p.ImageKey,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
		Version:       p.Version,
	}
}
