package shop

import (
	"time"

	"github.com/google/uuid"
	"github.com/mosslight/storefront/internal/domain/shop"
	"github.com/shopspring/decimal"
)

// AddCartItemRequest represents one line to add to the cart
type AddCartItemRequest struct {
	ProductID uuid.UUID `json:"product_id" binding:"required"`
	Size      string    `json:"size" binding:"max=50"`
	Color     string    `json:"color" binding:"max=50"`
	Quantity  int       `json:"quantity" binding:"required,min=1"`
}

// BulkAddCartRequest represents a multi-line add-to-cart request
type BulkAddCartRequest struct {
	Items []AddCartItemRequest `json:"items" binding:"required,min=1,dive"`
}

// UpdateCartItemRequest represents a quantity change for a cart line
type UpdateCartItemRequest struct {
	Quantity int `json:"quantity" binding:"required,min=1"`
}

// TotalsResponse represents priced totals in API responses
type TotalsResponse struct {
	Subtotal   decimal.Decimal `json:"subtotal"`
	Tax        decimal.Decimal `json:"tax"`
	Shipping   decimal.Decimal `json:"shipping"`
	GrandTotal decimal.Decimal `json:"grand_total"`
}

// ToTotalsResponse converts domain Totals, rounded to cents for display
func ToTotalsResponse(t shop.Totals) TotalsResponse {
	return TotalsResponse{
		Subtotal:   t.Subtotal.Round(2).Amount(),
		Tax:        t.Tax.Round(2).Amount(),
		Shipping:   t.Shipping.Round(2).Amount(),
		GrandTotal: t.GrandTotal.Round(2).Amount(),
	}
}

// CartItemResponse represents one priced cart line
type CartItemResponse struct {
	ID          uuid.UUID       `json:"id"`
	ProductID   uuid.UUID       `json:"product_id"`
	VariantID   *uuid.UUID      `json:"variant_id,omitempty"`
	ProductName string          `json:"product_name"`
	Size        string          `json:"size,omitempty"`
	Color       string          `json:"color,omitempty"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Subtotal    decimal.Decimal `json:"subtotal"`
	Tax         decimal.Decimal `json:"tax"`
	Shipping    decimal.Decimal `json:"shipping"`
	Total       decimal.Decimal `json:"total"`
}

// CartResponse represents the customer's cart with totals.
// DroppedItems lists lines whose product no longer resolves; they are
// excluded from totals but surfaced so the storefront can tell the customer.
type CartResponse struct {
	ID           uuid.UUID          `json:"id"`
	Items        []CartItemResponse `json:"items"`
	Totals       TotalsResponse     `json:"totals"`
	DroppedItems []uuid.UUID        `json:"dropped_items,omitempty"`
}

// OrderItemResponse represents one order line
type OrderItemResponse struct {
	ID            uuid.UUID       `json:"id"`
	ProductID     uuid.UUID       `json:"product_id"`
	VariantID     *uuid.UUID      `json:"variant_id,omitempty"`
	ProductName   string          `json:"product_name"`
	SKU           string          `json:"sku"`
	Size          string          `json:"size,omitempty"`
	Color         string          `json:"color,omitempty"`
	Quantity      int             `json:"quantity"`
	UnitPrice     decimal.Decimal `json:"unit_price"`
	TaxRate       decimal.Decimal `json:"tax_rate"`
	ShippingPrice decimal.Decimal `json:"shipping_price"`
}

// OrderResponse represents an order in API responses
type OrderResponse struct {
	ID          uuid.UUID           `json:"id"`
	Number      string              `json:"number"`
	CustomerID  uuid.UUID           `json:"customer_id"`
	Status      string              `json:"status"`
	Items       []OrderItemResponse `json:"items"`
	Totals      TotalsResponse      `json:"totals"`
	PlacedAt    time.Time           `json:"placed_at"`
	ShippedAt   *time.Time          `json:"shipped_at,omitempty"`
	DeliveredAt *time.Time          `json:"delivered_at,omitempty"`
}

// OrderListFilter represents filter options for order lists
type OrderListFilter struct {
	Status   string `form:"status" binding:"omitempty,oneof=pending shipped delivered"`
	Page     int    `form:"page" binding:"omitempty,min=1"`
	PageSize int    `form:"page_size" binding:"omitempty,min=1,max=100"`
}

// UpdateOrderStatusRequest represents an admin status transition
type UpdateOrderStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=pending shipped delivered"`
}

// ToOrderResponse converts a domain Order to OrderResponse
func ToOrderResponse(o *shop.Order) OrderResponse {
	items := make([]OrderItemResponse, 0, len(o.Items))
	for i := range o.Items {
		item := &o.Items[i]
		items = append(items, OrderItemResponse{
			ID:            item.ID,
			ProductID:     item.ProductID,
			VariantID:     item.VariantID,
			ProductName:   item.ProductName,
			SKU:           item.SKU,
			Size:          item.Size,
			Color:         item.Color,
			Quantity:      item.Quantity,
			UnitPrice:     item.UnitPrice,
			TaxRate:       item.TaxRate,
			ShippingPrice: item.ShippingPrice,
		})
	}
	return OrderResponse{
		ID:          o.ID,
		Number:      o.Number,
		CustomerID:  o.CustomerID,
		Status:      string(o.Status),
		Items:       items,
		Totals:      ToTotalsResponse(o.Totals()),
		PlacedAt:    o.PlacedAt,
		ShippedAt:   o.ShippedAt,
		DeliveredAt: o.DeliveredAt,
	}
}
