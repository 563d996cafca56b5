package shop

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/mosslight/storefront/internal/domain/catalog"
	"github.com/mosslight/storefront/internal/domain/shared"
	"github.com/mosslight/storefront/internal/domain/shop"
)

// CartService handles cart reads and mutations. Every mutation passes the
// inventory guard before touching the cart.
type CartService struct {
	cartRepo    shop.CartRepository
	productRepo catalog.ProductRepository
}

// NewCartService creates a new CartService
func NewCartService(cartRepo shop.CartRepository, productRepo catalog.ProductRepository) *CartService {
	return &CartService{
		cartRepo:    cartRepo,
		productRepo: productRepo,
	}
}

// GetCart returns the customer's priced cart. A customer without a cart
// gets an empty one; nothing is persisted on reads.
func (s *CartService) GetCart(ctx context.Context, customerID uuid.UUID) (*CartResponse, error) {
	cart, err := s.cartRepo.FindByCustomer(ctx, customerID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			empty, err := shop.NewCart(customerID)
			if err != nil {
				return nil, err
			}
			return s.priceCart(ctx, empty)
		}
		return nil, err
	}
	return s.priceCart(ctx, cart)
}

// AddItem adds one line to the customer's cart
func (s *CartService) AddItem(ctx context.Context, customerID uuid.UUID, req AddCartItemRequest) (*CartResponse, error) {
	cart, err := s.getOrCreateCart(ctx, customerID)
	if err != nil {
		return nil, err
	}

	if err := s.addToCart(ctx, cart, req); err != nil {
		return nil, err
	}

	if err := s.cartRepo.Save(ctx, cart); err != nil {
		return nil, err
	}

	return s.priceCart(ctx, cart)
}

// AddItems adds multiple lines in one mutation. All lines must pass the
// guard; on the first failure nothing is persisted.
func (s *CartService) AddItems(ctx context.Context, customerID uuid.UUID, req BulkAddCartRequest) (*CartResponse, error) {
	cart, err := s.getOrCreateCart(ctx, customerID)
	if err != nil {
		return nil, err
	}

	for _, item := range req.Items {
		if err := s.addToCart(ctx, cart, item); err != nil {
			return nil, err
		}
	}

	if err := s.cartRepo.Save(ctx, cart); err != nil {
		return nil, err
	}

	return s.priceCart(ctx, cart)
}

// UpdateItemQuantity replaces the quantity of an existing line
func (s *CartService) UpdateItemQuantity(ctx context.Context, customerID, itemID uuid.UUID, req UpdateCartItemRequest) (*CartResponse, error) {
	cart, err := s.cartRepo.FindByCustomer(ctx, customerID)
	if err != nil {
		return nil, err
	}

	item := cart.GetItem(itemID)
	if item == nil {
		return nil, shared.NewDomainError("ITEM_NOT_FOUND", "Cart item not found")
	}

	product, err := s.productRepo.FindByID(ctx, item.ProductID)
	if err != nil {
		return nil, err
	}

	if err := shop.GuardCartMutation(product, item.Size, item.Color, req.Quantity); err != nil {
		return nil, err
	}

	if err := cart.UpdateItemQuantity(itemID, req.Quantity); err != nil {
		return nil, err
	}

	if err := s.cartRepo.Save(ctx, cart); err != nil {
		return nil, err
	}

	return s.priceCart(ctx, cart)
}

// RemoveItem removes a line from the cart
func (s *CartService) RemoveItem(ctx context.Context, customerID, itemID uuid.UUID) (*CartResponse, error) {
	cart, err := s.cartRepo.FindByCustomer(ctx, customerID)
	if err != nil {
		return nil, err
	}

	if err := cart.RemoveItem(itemID); err != nil {
		return nil, err
	}

	if err := s.cartRepo.Save(ctx, cart); err != nil {
		return nil, err
	}

	return s.priceCart(ctx, cart)
}

// ClearCart removes every line from the customer's cart
func (s *CartService) ClearCart(ctx context.Context, customerID uuid.UUID) error {
	cart, err := s.cartRepo.FindByCustomer(ctx, customerID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil
		}
		return err
	}

	cart.Clear()

	return s.cartRepo.Save(ctx, cart)
}

func (s *CartService) getOrCreateCart(ctx context.Context, customerID uuid.UUID) (*shop.Cart, error) {
	cart, err := s.cartRepo.FindByCustomer(ctx, customerID)
	if err == nil {
		return cart, nil
	}
	if !errors.Is(err, shared.ErrNotFound) {
		return nil, err
	}
	return shop.NewCart(customerID)
}

// addToCart guards and applies one add. The guard sees the quantity the
// line would end up with after merging, not just the increment.
func (s *CartService) addToCart(ctx context.Context, cart *shop.Cart, req AddCartItemRequest) error {
	product, err := s.productRepo.FindByID(ctx, req.ProductID)
	if err != nil {
		return err
	}
	if !product.IsActive() {
		return shared.NewDomainError("PRODUCT_UNAVAILABLE", "This product is not available for purchase")
	}

	var variantID *uuid.UUID
	unitPrice := product.GetPriceMoney()
	if product.HasVariants {
		variant := product.ResolveVariant(req.Size, req.Color)
		if variant != nil {
			variantID = &variant.ID
			unitPrice = variant.GetPriceMoney()
		}
	}

	effective := req.Quantity + s.existingQuantity(cart, req.ProductID, variantID)
	if err := shop.GuardCartMutation(product, req.Size, req.Color, effective); err != nil {
		return err
	}

	_, err = cart.AddItem(shop.AddItemInput{
		ProductID:   req.ProductID,
		VariantID:   variantID,
		ProductName: product.Name,
		Size:        req.Size,
		Color:       req.Color,
		Quantity:    req.Quantity,
		UnitPrice:   unitPrice,
	})
	return err
}

func (s *CartService) existingQuantity(cart *shop.Cart, productID uuid.UUID, variantID *uuid.UUID) int {
	for i := range cart.Items {
		item := &cart.Items[i]
		if item.ProductID != productID {
			continue
		}
		if (item.VariantID == nil) != (variantID == nil) {
			continue
		}
		if item.VariantID != nil && *item.VariantID != *variantID {
			continue
		}
		return item.Quantity
	}
	return 0
}

// priceCart prices every line and aggregates totals. Lines whose product no
// longer exists are dropped from the totals and reported in DroppedItems.
func (s *CartService) priceCart(ctx context.Context, cart *shop.Cart) (*CartResponse, error) {
	resp := &CartResponse{
		ID:     cart.ID,
		Items:  make([]CartItemResponse, 0, len(cart.Items)),
		Totals: ToTotalsResponse(shop.ZeroTotals()),
	}
	if cart.IsEmpty() {
		return resp, nil
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

	lines := make([]shop.LinePrice, 0, len(cart.Items))
	for i := range cart.Items {
		item := &cart.Items[i]
		product, ok := byID[item.ProductID]
		if !ok {
			resp.DroppedItems = append(resp.DroppedItems, item.ID)
			continue
		}

		line := shop.PriceLine(shop.LineInputs{
			UnitPrice: item.GetUnitPriceMoney(),
			Quantity:  item.Quantity,
			TaxRate:   product.TaxRate,
			Shipping:  product.ShippingPrice,
		})
		lines = append(lines, line)

		resp.Items = append(resp.Items, CartItemResponse{
			ID:          item.ID,
			ProductID:   item.ProductID,
			VariantID:   item.VariantID,
			ProductName: item.ProductName,
			Size:        item.Size,
			Color:       item.Color,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
			Subtotal:    line.Subtotal.Round(2).Amount(),
			Tax:         line.Tax.Round(2).Amount(),
			Shipping:    line.Shipping.Round(2).Amount(),
			Total:       line.Total.Round(2).Amount(),
		})
	}

	resp.Totals = ToTotalsResponse(shop.AggregateLines(lines))

	return resp, nil
}
