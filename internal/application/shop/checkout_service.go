package shop

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/mosslight/storefront/internal/domain/catalog"
	"github.com/mosslight/storefront/internal/domain/shared"
	"github.com/mosslight/storefront/internal/domain/shop"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// CheckoutService turns a cart into an order: re-validates stock,
// decrements inventory, snapshots pricing inputs, and clears the cart.
type CheckoutService struct {
	cartRepo    shop.CartRepository
	productRepo catalog.ProductRepository
	uow         shop.UnitOfWork
	events      shared.EventPublisher
	logger      *zap.Logger
}

// NewCheckoutService creates a new CheckoutService
func NewCheckoutService(
	cartRepo shop.CartRepository,
	productRepo catalog.ProductRepository,
	uow shop.UnitOfWork,
	events shared.EventPublisher,
	logger *zap.Logger,
) *CheckoutService {
	return &CheckoutService{
		cartRepo:    cartRepo,
		productRepo: productRepo,
		uow:         uow,
		events:      events,
		logger:      logger,
	}
}

// Checkout places an order from the customer's cart.
//
// The inventory guard runs again here with current stock; a cart that
// passed its guards at add time can still fail checkout if stock moved.
// Lines whose product no longer exists are dropped, matching cart pricing.
// The inventory decrements, the order, and the emptied cart are written
// in one transaction, so a failed checkout leaves stock untouched.
func (s *CheckoutService) Checkout(ctx context.Context, customerID uuid.UUID) (*OrderResponse, error) {
	cart, err := s.cartRepo.FindByCustomer(ctx, customerID)
	if err != nil {
		return nil, err
	}
	if cart.IsEmpty() {
		return nil, shared.NewDomainError("EMPTY_CART", "Cannot check out an empty cart")
	}

	productIDs := make([]uuid.UUID, 0, len(cart.Items))
	seen := make(map[uuid.UUID]bool)
	for i := range cart.Items {
		id := cart.Items[i].ProductID
		if !seen[id] {
			seen[id] = true
			productIDs = append(productIDs, id)
		}
	}
	products, err := s.productRepo.FindByIDs(ctx, productIDs)
	if err != nil {
		return nil, err
	}
	byID := make(map[uuid.UUID]*catalog.Product, len(products))
	for i := range products {
		byID[products[i].ID] = &products[i]
	}

	orderItems := make([]shop.NewOrderItemInput, 0, len(cart.Items))
	touched := make(map[uuid.UUID]*catalog.Product)

	for i := range cart.Items {
		item := &cart.Items[i]
		product, ok := byID[item.ProductID]
		if !ok {
			s.logger.Warn("dropping cart line with missing product",
				zap.String("cart_item_id", item.ID.String()),
				zap.String("product_id", item.ProductID.String()))
			continue
		}

		available, err := shop.AvailableStock(product, item.Size, item.Color)
		if err != nil {
			return nil, err
		}
		if err := shop.CheckQuantity(item.Quantity, available); err != nil {
			return nil, err
		}

		if product.HasVariants {
			variant := product.ResolveVariant(item.Size, item.Color)
			if err := variant.SetInventory(available - item.Quantity); err != nil {
				return nil, err
			}
		} else {
			if err := product.SetInventory(available - item.Quantity); err != nil {
				return nil, err
			}
		}
		touched[product.ID] = product

		taxRate := shop.DefaultTaxRate
		if product.TaxRate != nil {
			taxRate = *product.TaxRate
		}
		shipping := decimal.Zero
		if product.ShippingPrice != nil {
			shipping = *product.ShippingPrice
		}

		orderItems = append(orderItems, shop.NewOrderItemInput{
			ProductID:     item.ProductID,
			VariantID:     item.VariantID,
			ProductName:   item.ProductName,
			SKU:           product.SKU,
			Size:          item.Size,
			Color:         item.Color,
			Quantity:      item.Quantity,
			UnitPrice:     item.GetUnitPriceMoney(),
			TaxRate:       taxRate,
			ShippingPrice: shipping,
		})
	}

	if len(orderItems) == 0 {
		return nil, shared.NewDomainError("EMPTY_CART", "No cart items could be checked out")
	}

	order, err := shop.NewOrder(generateOrderNumber(), customerID, orderItems)
	if err != nil {
		return nil, err
	}

	cart.Clear()

	if err := s.uow.Execute(ctx, func(products catalog.ProductRepository, orders shop.OrderRepository, carts shop.CartRepository) error {
		for _, product := range touched {
			if err := products.Save(ctx, product); err != nil {
				return err
			}
		}
		if err := orders.Save(ctx, order); err != nil {
			return err
		}
		return carts.Save(ctx, cart)
	}); err != nil {
		return nil, err
	}

	if err := s.events.Publish(ctx, order.GetDomainEvents()...); err != nil {
		s.logger.Warn("failed to deliver order placed notifications",
			zap.String("order_number", order.Number),
			zap.Error(err))
	}
	order.ClearDomainEvents()

	s.logger.Info("order placed",
		zap.String("order_number", order.Number),
		zap.String("customer_id", customerID.String()),
		zap.Int("items", order.ItemCount()))

	resp := ToOrderResponse(order)
	return &resp, nil
}

func generateOrderNumber() string {
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.New().String(), "-", "")[:8])
	return fmt.Sprintf("ORD-%s-%s", time.Now().Format("20060102"), suffix)
}
