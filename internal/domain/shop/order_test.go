package shop

import (
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/mosslight/storefront/internal/domain/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderStatusCanTransitionTo(t *testing.T) {
	cases := []struct {
		from    OrderStatus
		to      OrderStatus
		allowed bool
	}{
		{OrderStatusPending, OrderStatusShipped, true},
		{OrderStatusShipped, OrderStatusDelivered, true},
		{OrderStatusPending, OrderStatusDelivered, false},
		{OrderStatusShipped, OrderStatusPending, false},
		{OrderStatusDelivered, OrderStatusShipped, false},
		{OrderStatusDelivered, OrderStatusPending, false},
		{OrderStatusPending, OrderStatusPending, false},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.allowed, tc.from.CanTransitionTo(tc.to),
			"%s -> %s", tc.from, tc.to)
	}
}

func TestNewOrder(t *testing.T) {
	t.Run("should create a pending order with snapshotted lines", func(t *testing.T) {
		customerID := uuid.New()

		order, err := NewOrder("ORD-2026-0001", customerID, []NewOrderItemInput{
			{
				ProductID:     uuid.New(),
				ProductName:   "Fern Tee",
				SKU:           "TEE-01",
				Quantity:      2,
				UnitPrice:     money("20.00"),
				TaxRate:       dec("8.5"),
				ShippingPrice: dec("5.00"),
			},
		})

		require.NoError(t, err)
		assert.Equal(t, OrderStatusPending, order.Status)
		assert.Equal(t, customerID, order.CustomerID)
		assert.Equal(t, 1, order.ItemCount())
		assert.Equal(t, "20", order.Items[0].UnitPrice.String())
		assert.Equal(t, "8.5", order.Items[0].TaxRate.String())
		assert.Equal(t, "5", order.Items[0].ShippingPrice.String())

		events := order.GetDomainEvents()
		require.Len(t, events, 1)
		assert.Equal(t, EventTypeOrderPlaced, events[0].EventType())
	})

	t.Run("should reject an empty item list", func(t *testing.T) {
		_, err := NewOrder("ORD-2026-0002", uuid.New(), nil)
		assert.Error(t, err)
	})

	t.Run("should reject invalid lines", func(t *testing.T) {
		_, err := NewOrder("ORD-2026-0003", uuid.New(), []NewOrderItemInput{
			{ProductID: uuid.New(), Quantity: 0, UnitPrice: money("1.00")},
		})
		assert.Error(t, err)
	})
}

func TestOrderTotals(t *testing.T) {
	t.Run("should price the order from its snapshots", func(t *testing.T) {
		order, err := NewOrder("ORD-2026-0004", uuid.New(), []NewOrderItemInput{
			{
				ProductID:     uuid.New(),
				Quantity:      2,
				UnitPrice:     money("20.00"),
				TaxRate:       dec("8.5"),
				ShippingPrice: dec("5.00"),
			},
			{
				ProductID:     uuid.New(),
				Quantity:      1,
				UnitPrice:     money("15.00"),
				TaxRate:       dec("8.5"),
				ShippingPrice: dec("0"),
			},
		})
		require.NoError(t, err)

		totals := order.Totals()

		assert.Equal(t, "55", totals.Subtotal.String())
		assert.Equal(t, "4.675", totals.Tax.String())
		assert.Equal(t, "10", totals.Shipping.String())
		assert.Equal(t, "69.675", totals.GrandTotal.String())
	})
}

func TestOrderUpdateStatus(t *testing.T) {
	t.Run("should walk the full lifecycle forward", func(t *testing.T) {
		order := newTestOrder(t)

		require.NoError(t, order.UpdateStatus(OrderStatusShipped))
		assert.Equal(t, OrderStatusShipped, order.Status)
		assert.NotNil(t, order.ShippedAt)

		require.NoError(t, order.UpdateStatus(OrderStatusDelivered))
		assert.Equal(t, OrderStatusDelivered, order.Status)
		assert.NotNil(t, order.DeliveredAt)
		assert.True(t, order.IsDelivered())
	})

	t.Run("should reject skipping a step", func(t *testing.T) {
		order := newTestOrder(t)

		err := order.UpdateStatus(OrderStatusDelivered)

		var domainErr *shared.DomainError
		require.True(t, errors.As(err, &domainErr))
		assert.Equal(t, "INVALID_STATE", domainErr.Code)
		assert.Equal(t, OrderStatusPending, order.Status)
	})

	t.Run("should reject moving backwards", func(t *testing.T) {
		order := newTestOrder(t)
		require.NoError(t, order.UpdateStatus(OrderStatusShipped))

		assert.Error(t, order.UpdateStatus(OrderStatusPending))
		assert.Equal(t, OrderStatusShipped, order.Status)
	})

	t.Run("should reject any transition out of delivered", func(t *testing.T) {
		order := newTestOrder(t)
		require.NoError(t, order.UpdateStatus(OrderStatusShipped))
		require.NoError(t, order.UpdateStatus(OrderStatusDelivered))

		assert.Error(t, order.UpdateStatus(OrderStatusShipped))
		assert.Error(t, order.UpdateStatus(OrderStatusPending))
	})

	t.Run("should reject an unknown status", func(t *testing.T) {
		order := newTestOrder(t)

		err := order.UpdateStatus(OrderStatus("cancelled"))

		var domainErr *shared.DomainError
		require.True(t, errors.As(err, &domainErr))
		assert.Equal(t, "INVALID_STATUS", domainErr.Code)
	})

	t.Run("should publish a status changed event", func(t *testing.T) {
		order := newTestOrder(t)
		order.ClearDomainEvents()

		require.NoError(t, order.UpdateStatus(OrderStatusShipped))

		events := order.GetDomainEvents()
		require.Len(t, events, 1)
		event, ok := events[0].(*OrderStatusChangedEvent)
		require.True(t, ok)
		assert.Equal(t, OrderStatusPending, event.OldStatus)
		assert.Equal(t, OrderStatusShipped, event.NewStatus)
	})
}

func newTestOrder(t *testing.T) *Order {
	t.Helper()
	order, err := NewOrder("ORD-2026-1000", uuid.New(), []NewOrderItemInput{
		{
			ProductID:     uuid.New(),
			Quantity:      1,
			UnitPrice:     money("10.00"),
			TaxRate:       dec("8.5"),
			ShippingPrice: dec("0"),
		},
	})
	require.NoError(t, err)
	return order
}
