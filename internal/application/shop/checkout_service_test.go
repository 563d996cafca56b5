package shop

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/mosslight/storefront/internal/domain/catalog"
	"github.com/mosslight/storefront/internal/domain/shared"
	"github.com/mosslight/storefront/internal/domain/shared/valueobject"
	"github.com/mosslight/storefront/internal/domain/shop"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type checkoutFixture struct {
	cartRepo    *MockCartRepository
	orderRepo   *MockOrderRepository
	productRepo *MockProductRepository
	uow         *unitOfWorkSpy
	events      *MockEventPublisher
	service     *CheckoutService
}

func newCheckoutFixture() *checkoutFixture {
	f := &checkoutFixture{
		cartRepo:    new(MockCartRepository),
		orderRepo:   new(MockOrderRepository),
		productRepo: new(MockProductRepository),
		events:      new(MockEventPublisher),
	}
	f.uow = &unitOfWorkSpy{products: f.productRepo, orders: f.orderRepo, carts: f.cartRepo}
	f.service = NewCheckoutService(f.cartRepo, f.productRepo, f.uow, f.events, zap.NewNop())
	return f
}

func singleOrderPlacedEvent(published []shared.DomainEvent) bool {
	return len(published) == 1 && published[0].EventType() == shop.EventTypeOrderPlaced
}

func TestCheckoutServiceCheckout(t *testing.T) {
	ctx := context.Background()

	t.Run("should place an order, decrement stock, and clear the cart", func(t *testing.T) {
		f := newCheckoutFixture()

		customerID := uuid.New()
		product := newProductFixture(t, 20, 5)
		taxRate := decimal.NewFromFloat(8.5)
		shipping := decimal.NewFromInt(5)
		require.NoError(t, product.SetTaxRate(&taxRate))
		require.NoError(t, product.SetShippingPrice(&shipping))

		cart := newCartFixture(t, customerID)
		_, err := cart.AddItem(shop.AddItemInput{
			ProductID: product.ID,
			Quantity:  2,
			UnitPrice: product.GetPriceMoney(),
		})
		require.NoError(t, err)

		f.cartRepo.On("FindByCustomer", ctx, customerID).Return(cart, nil)
		f.productRepo.On("FindByIDs", ctx, []uuid.UUID{product.ID}).
			Return([]catalog.Product{*product}, nil)
		f.productRepo.On("Save", ctx, mock.AnythingOfType("*catalog.Product")).Return(nil)
		f.orderRepo.On("Save", ctx, mock.AnythingOfType("*shop.Order")).Return(nil)
		f.cartRepo.On("Save", ctx, cart).Return(nil)
		f.events.On("Publish", ctx, mock.MatchedBy(singleOrderPlacedEvent)).Return(nil)

		resp, err := f.service.Checkout(ctx, customerID)

		require.NoError(t, err)
		assert.Equal(t, "pending", resp.Status)
		require.Len(t, resp.Items, 1)
		assert.Equal(t, "8.5", resp.Items[0].TaxRate.String())
		assert.Equal(t, "5", resp.Items[0].ShippingPrice.String())
		assert.Equal(t, "53.4", resp.Totals.GrandTotal.String())
		assert.True(t, cart.IsEmpty())

		// The copy passed to FindByIDs is what gets decremented and saved
		f.productRepo.AssertCalled(t, "Save", ctx, mock.MatchedBy(func(p *catalog.Product) bool {
			return p.Inventory == 3
		}))
		f.events.AssertExpectations(t)
	})

	t.Run("should write stock, order, and cart in a single transaction", func(t *testing.T) {
		f := newCheckoutFixture()

		customerID := uuid.New()
		product := newProductFixture(t, 10, 5)

		cart := newCartFixture(t, customerID)
		_, err := cart.AddItem(shop.AddItemInput{ProductID: product.ID, Quantity: 1, UnitPrice: product.GetPriceMoney()})
		require.NoError(t, err)

		f.cartRepo.On("FindByCustomer", ctx, customerID).Return(cart, nil)
		f.productRepo.On("FindByIDs", ctx, []uuid.UUID{product.ID}).
			Return([]catalog.Product{*product}, nil)
		f.productRepo.On("Save", ctx, mock.Anything).Run(func(args mock.Arguments) {
			assert.True(t, f.uow.active, "product save must run inside the transaction")
		}).Return(nil)
		f.orderRepo.On("Save", ctx, mock.Anything).Run(func(args mock.Arguments) {
			assert.True(t, f.uow.active, "order save must run inside the transaction")
		}).Return(nil)
		f.cartRepo.On("Save", ctx, cart).Run(func(args mock.Arguments) {
			assert.True(t, f.uow.active, "cart save must run inside the transaction")
		}).Return(nil)
		f.events.On("Publish", ctx, mock.Anything).Return(nil)

		_, err = f.service.Checkout(ctx, customerID)

		require.NoError(t, err)
		assert.Equal(t, 1, f.uow.calls)
	})

	t.Run("should fail without clearing the cart when the order save fails", func(t *testing.T) {
		f := newCheckoutFixture()

		customerID := uuid.New()
		product := newProductFixture(t, 10, 5)

		cart := newCartFixture(t, customerID)
		_, err := cart.AddItem(shop.AddItemInput{ProductID: product.ID, Quantity: 1, UnitPrice: product.GetPriceMoney()})
		require.NoError(t, err)

		f.cartRepo.On("FindByCustomer", ctx, customerID).Return(cart, nil)
		f.productRepo.On("FindByIDs", ctx, []uuid.UUID{product.ID}).
			Return([]catalog.Product{*product}, nil)
		f.productRepo.On("Save", ctx, mock.Anything).Return(nil)
		failure := shared.NewDomainError("INTERNAL_ERROR", "orders table unavailable")
		f.orderRepo.On("Save", ctx, mock.Anything).Return(failure)

		_, err = f.service.Checkout(ctx, customerID)

		assert.ErrorIs(t, err, failure)
		f.cartRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
		f.events.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything)
	})

	t.Run("should reject an empty cart", func(t *testing.T) {
		f := newCheckoutFixture()

		customerID := uuid.New()
		f.cartRepo.On("FindByCustomer", ctx, customerID).Return(newCartFixture(t, customerID), nil)

		_, err := f.service.Checkout(ctx, customerID)

		assert.Error(t, err)
		assert.Zero(t, f.uow.calls)
	})

	t.Run("should fail when stock moved since the item was added", func(t *testing.T) {
		f := newCheckoutFixture()

		customerID := uuid.New()
		product := newProductFixture(t, 20, 1)

		cart := newCartFixture(t, customerID)
		_, err := cart.AddItem(shop.AddItemInput{ProductID: product.ID, Quantity: 2, UnitPrice: product.GetPriceMoney()})
		require.NoError(t, err)

		f.cartRepo.On("FindByCustomer", ctx, customerID).Return(cart, nil)
		f.productRepo.On("FindByIDs", ctx, []uuid.UUID{product.ID}).
			Return([]catalog.Product{*product}, nil)

		_, err = f.service.Checkout(ctx, customerID)

		assert.ErrorIs(t, err, shared.ErrInsufficientStock)
		assert.False(t, cart.IsEmpty())
		assert.Zero(t, f.uow.calls)
	})

	t.Run("should decrement variant inventory for variant lines", func(t *testing.T) {
		f := newCheckoutFixture()

		customerID := uuid.New()
		product := newProductFixture(t, 20, 0)
		product.SetOptions([]string{"green"}, []string{"M"})
		variant, err := product.AddVariant("M", "green", valueobject.NewMoneyUSDFromFloat(22), 4)
		require.NoError(t, err)

		cart := newCartFixture(t, customerID)
		_, err = cart.AddItem(shop.AddItemInput{
			ProductID: product.ID,
			VariantID: &variant.ID,
			Size:      "M",
			Color:     "green",
			Quantity:  3,
			UnitPrice: variant.GetPriceMoney(),
		})
		require.NoError(t, err)

		f.cartRepo.On("FindByCustomer", ctx, customerID).Return(cart, nil)
		f.productRepo.On("FindByIDs", ctx, []uuid.UUID{product.ID}).
			Return([]catalog.Product{*product}, nil)
		f.productRepo.On("Save", ctx, mock.AnythingOfType("*catalog.Product")).Return(nil)
		f.orderRepo.On("Save", ctx, mock.AnythingOfType("*shop.Order")).Return(nil)
		f.cartRepo.On("Save", ctx, cart).Return(nil)
		f.events.On("Publish", ctx, mock.Anything).Return(nil)

		_, err = f.service.Checkout(ctx, customerID)

		require.NoError(t, err)
		f.productRepo.AssertCalled(t, "Save", ctx, mock.MatchedBy(func(p *catalog.Product) bool {
			v := p.ResolveVariant("M", "green")
			return v != nil && v.Inventory == 1
		}))
	})

	t.Run("should still place the order when event delivery fails", func(t *testing.T) {
		f := newCheckoutFixture()

		customerID := uuid.New()
		product := newProductFixture(t, 10, 5)

		cart := newCartFixture(t, customerID)
		_, err := cart.AddItem(shop.AddItemInput{ProductID: product.ID, Quantity: 1, UnitPrice: product.GetPriceMoney()})
		require.NoError(t, err)

		f.cartRepo.On("FindByCustomer", ctx, customerID).Return(cart, nil)
		f.productRepo.On("FindByIDs", ctx, []uuid.UUID{product.ID}).
			Return([]catalog.Product{*product}, nil)
		f.productRepo.On("Save", ctx, mock.Anything).Return(nil)
		f.orderRepo.On("Save", ctx, mock.Anything).Return(nil)
		f.cartRepo.On("Save", ctx, cart).Return(nil)
		f.events.On("Publish", ctx, mock.Anything).
			Return(shared.NewDomainError("INTERNAL_ERROR", "notification store down"))

		resp, err := f.service.Checkout(ctx, customerID)

		require.NoError(t, err)
		assert.NotEmpty(t, resp.Number)
	})
}
