package shop

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/mosslight/storefront/internal/domain/shared"
	"github.com/mosslight/storefront/internal/domain/shared/valueobject"
	"github.com/shopspring/decimal"
)

// OrderStatus represents the fulfillment status of an order
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusShipped   OrderStatus = "shipped"
	OrderStatusDelivered OrderStatus = "delivered"
)

// IsValid checks if the status is a valid OrderStatus
func (s OrderStatus) IsValid() bool {
	switch s {
	case OrderStatusPending, OrderStatusShipped, OrderStatusDelivered:
		return true
	}
	return false
}

// String returns the string representation of OrderStatus
func (s OrderStatus) String() string {
	return string(s)
}

// CanTransitionTo checks if the status can transition to the target status.
// Transitions only move forward, one step at a time; delivered is terminal.
func (s OrderStatus) CanTransitionTo(target OrderStatus) bool {
	switch s {
	case OrderStatusPending:
		return target == OrderStatusShipped
	case OrderStatusShipped:
		return target == OrderStatusDelivered
	case OrderStatusDelivered:
		return false
	}
	return false
}

// OrderItem is one line of a placed order. UnitPrice, TaxRate, and
// ShippingPrice are all snapshotted at checkout so a historical order's
// totals never drift when the catalog changes afterwards.
type OrderItem struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey"`
	OrderID       uuid.UUID       `gorm:"type:uuid;not null;index"`
	ProductID     uuid.UUID       `gorm:"type:uuid;not null"`
	VariantID     *uuid.UUID      `gorm:"type:uuid"`
	ProductName   string          `gorm:"type:varchar(200);not null"`
	SKU           string          `gorm:"type:varchar(50);not null"`
	Size          string          `gorm:"type:varchar(50)"`
	Color         string          `gorm:"type:varchar(50)"`
	Quantity      int             `gorm:"not null"`
	UnitPrice     decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	TaxRate       decimal.Decimal `gorm:"type:decimal(8,4);not null"`
	ShippingPrice decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	CreatedAt     time.Time
}

// TableName returns the table name for GORM
func (OrderItem) TableName() string {
	return "order_items"
}

// LineInputs returns the pricing inputs snapshotted on this line
func (i *OrderItem) LineInputs() LineInputs {
	taxRate := i.TaxRate
	shipping := i.ShippingPrice
	return LineInputs{
		UnitPrice: valueobject.NewMoneyUSD(i.UnitPrice),
		Quantity:  i.Quantity,
		TaxRate:   &taxRate,
		Shipping:  &shipping,
	}
}

// NewOrderItemInput describes a checkout line with its pricing snapshot
type NewOrderItemInput struct {
	ProductID     uuid.UUID
	VariantID     *uuid.UUID
	ProductName   string
	SKU           string
	Size          string
	Color         string
	Quantity      int
	UnitPrice     valueobject.Money
	TaxRate       decimal.Decimal
	ShippingPrice decimal.Decimal
}

// Order is the aggregate root for a placed order. It is created atomically
// from the cart at checkout and moves pending -> shipped -> delivered.
type Order struct {
	shared.BaseAggregateRoot
	Number      string      `gorm:"type:varchar(50);not null;uniqueIndex"`
	CustomerID  uuid.UUID   `gorm:"type:uuid;not null;index"`
	Status      OrderStatus `gorm:"type:varchar(20);not null;default:'pending'"`
	Items       []OrderItem `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	PlacedAt    time.Time   `gorm:"not null"`
	ShippedAt   *time.Time
	DeliveredAt *time.Time
}

// TableName returns the table name for GORM
func (Order) TableName() string {
	return "orders"
}

// NewOrder creates a pending order from checkout lines
func NewOrder(number string, customerID uuid.UUID, items []NewOrderItemInput) (*Order, error) {
	if number == "" {
		return nil, shared.NewDomainError("INVALID_ORDER_NUMBER", "Order number cannot be empty")
	}
	if customerID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_CUSTOMER", "Customer ID cannot be empty")
	}
	if len(items) == 0 {
		return nil, shared.NewDomainError("NO_ITEMS", "Cannot place an order without items")
	}

	order := &Order{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Number:            number,
		CustomerID:        customerID,
		Status:            OrderStatusPending,
		Items:             make([]OrderItem, 0, len(items)),
		PlacedAt:          time.Now(),
	}

	for _, in := range items {
		if in.ProductID == uuid.Nil {
			return nil, shared.NewDomainError("INVALID_PRODUCT", "Product ID cannot be empty")
		}
		if in.Quantity <= 0 {
			return nil, shared.NewDomainError("INVALID_QUANTITY", "Quantity must be positive")
		}
		if in.UnitPrice.IsNegative() {
			return nil, shared.NewDomainError("INVALID_PRICE", "Unit price cannot be negative")
		}
		order.Items = append(order.Items, OrderItem{
			ID:            uuid.New(),
			OrderID:       order.ID,
			ProductID:     in.ProductID,
			VariantID:     in.VariantID,
			ProductName:   in.ProductName,
			SKU:           in.SKU,
			Size:          in.Size,
			Color:         in.Color,
			Quantity:      in.Quantity,
			UnitPrice:     in.UnitPrice.Amount(),
			TaxRate:       in.TaxRate,
			ShippingPrice: in.ShippingPrice,
			CreatedAt:     order.PlacedAt,
		})
	}

	order.AddDomainEvent(NewOrderPlacedEvent(order))

	return order, nil
}

// Totals prices the order from its snapshotted lines. Reproducible at any
// later time regardless of catalog changes.
func (o *Order) Totals() Totals {
	lines := make([]LinePrice, 0, len(o.Items))
	for idx := range o.Items {
		lines = append(lines, PriceLine(o.Items[idx].LineInputs()))
	}
	return AggregateLines(lines)
}

// UpdateStatus transitions the order to the target status.
// Only forward, single-step transitions are allowed.
func (o *Order) UpdateStatus(target OrderStatus) error {
	if !target.IsValid() {
		return shared.NewDomainError("INVALID_STATUS", fmt.Sprintf("Unknown order status %q", target))
	}
	if !o.Status.CanTransitionTo(target) {
		return shared.NewDomainError("INVALID_STATE", fmt.Sprintf("Cannot move order from %s to %s", o.Status, target))
	}

	old := o.Status
	now := time.Now()
	o.Status = target
	switch target {
	case OrderStatusShipped:
		o.ShippedAt = &now
	case OrderStatusDelivered:
		o.DeliveredAt = &now
	}
	o.UpdatedAt = now
	o.IncrementVersion()

	o.AddDomainEvent(NewOrderStatusChangedEvent(o, old))

	return nil
}

// IsPending returns true if the order has not shipped yet
func (o *Order) IsPending() bool {
	return o.Status == OrderStatusPending
}

// IsDelivered returns true if the order reached its terminal state
func (o *Order) IsDelivered() bool {
	return o.Status == OrderStatusDelivered
}

// ItemCount returns the number of lines in the order
func (o *Order) ItemCount() int {
	return len(o.Items)
}
