package shop

import (
	"github.com/mosslight/storefront/internal/domain/catalog"
	"github.com/mosslight/storefront/internal/domain/shared"
)

// CheckQuantity validates a requested quantity against available stock.
// Callers must reject non-positive quantities before calling; doing so here
// as well keeps the guard safe when a caller forgets.
func CheckQuantity(requested, available int) error {
	if requested <= 0 {
		return shared.NewDomainError("INVALID_QUANTITY", "Quantity must be positive")
	}
	if available == 0 {
		return shared.ErrOutOfStock
	}
	if requested > available {
		return shared.ErrInsufficientStock
	}
	return nil
}

// AvailableStock determines the stock pool a cart mutation draws from.
//
// Non-variant products use product-level inventory. Variant products require
// a complete (size, color) selection; an incomplete selection defers the
// check with VARIANT_REQUIRED, and a complete selection that matches no
// catalog variant fails with VARIANT_UNAVAILABLE so the storefront can say
// "combination unavailable" rather than "please select".
func AvailableStock(product *catalog.Product, size, color string) (int, error) {
	if !product.HasVariants {
		return product.Inventory, nil
	}
	if !product.HasCompleteSelection(size, color) {
		return 0, shared.ErrVariantRequired
	}
	variant := product.ResolveVariant(size, color)
	if variant == nil {
		return 0, shared.NewDomainError("VARIANT_UNAVAILABLE", "This size and color combination is unavailable")
	}
	return variant.Inventory, nil
}

// GuardCartMutation runs the full client-facing inventory check for adding
// or updating a line: quantity validity, variant resolution, then stock.
// The same guard runs again authoritatively at checkout.
func GuardCartMutation(product *catalog.Product, size, color string, requested int) error {
	if requested <= 0 {
		return shared.NewDomainError("INVALID_QUANTITY", "Quantity must be positive")
	}
	available, err := AvailableStock(product, size, color)
	if err != nil {
		return err
	}
	return CheckQuantity(requested, available)
}
