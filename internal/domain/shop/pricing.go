package shop

import (
	"github.com/mosslight/storefront/internal/domain/shared/valueobject"
	"github.com/shopspring/decimal"
)

// DefaultTaxRate is the storefront-wide tax percentage applied when a
// product record carries no tax rate of its own.
var DefaultTaxRate = decimal.NewFromFloat(8.5)

// LineInputs carries everything needed to price a single cart or order line.
// UnitPrice is the snapshot captured when the line was created, not the
// product's current price.
type LineInputs struct {
	UnitPrice valueobject.Money
	Quantity  int
	TaxRate   *decimal.Decimal // percent; nil applies DefaultTaxRate
	Shipping  *decimal.Decimal // flat fee per unit; nil means free shipping
}

// LinePrice is the priced breakdown of a single line
type LinePrice struct {
	Subtotal valueobject.Money `json:"subtotal"`
	Tax      valueobject.Money `json:"tax"`
	Shipping valueobject.Money `json:"shipping"`
	Total    valueobject.Money `json:"total"`
}

// Totals is the aggregate across all lines of a cart or order
type Totals struct {
	Subtotal   valueobject.Money `json:"subtotal"`
	Tax        valueobject.Money `json:"tax"`
	Shipping   valueobject.Money `json:"shipping"`
	GrandTotal valueobject.Money `json:"grand_total"`
}

// ZeroTotals returns the identity element for aggregation
func ZeroTotals() Totals {
	return Totals{
		Subtotal:   valueobject.ZeroUSD(),
		Tax:        valueobject.ZeroUSD(),
		Shipping:   valueobject.ZeroUSD(),
		GrandTotal: valueobject.ZeroUSD(),
	}
}

// PriceLine computes subtotal, tax, shipping, and total for one line.
//
// Tax is computed on the unit price only; shipping is never taxed.
// Shipping is a flat fee per unit, not per line. A non-positive quantity
// yields an all-zero result rather than an error; callers reject invalid
// quantities before pricing (see CheckQuantity).
func PriceLine(in LineInputs) LinePrice {
	if in.Quantity <= 0 {
		return LinePrice{
			Subtotal: valueobject.ZeroUSD(),
			Tax:      valueobject.ZeroUSD(),
			Shipping: valueobject.ZeroUSD(),
			Total:    valueobject.ZeroUSD(),
		}
	}

	qty := int64(in.Quantity)

	taxRate := DefaultTaxRate
	if in.TaxRate != nil {
		taxRate = *in.TaxRate
	}

	shippingUnit := valueobject.ZeroUSD()
	if in.Shipping != nil {
		shippingUnit = valueobject.NewMoneyUSD(*in.Shipping)
	}

	subtotal := in.UnitPrice.MultiplyByInt(qty)
	tax := in.UnitPrice.CalculatePercentage(taxRate).MultiplyByInt(qty)
	shipping := shippingUnit.MultiplyByInt(qty)
	total := subtotal.MustAdd(tax).MustAdd(shipping)

	return LinePrice{
		Subtotal: subtotal,
		Tax:      tax,
		Shipping: shipping,
		Total:    total,
	}
}

// AggregateLines sums priced lines into cart/order totals.
// An empty input produces all-zero totals.
func AggregateLines(lines []LinePrice) Totals {
	totals := ZeroTotals()
	for _, line := range lines {
		totals.Subtotal = totals.Subtotal.MustAdd(line.Subtotal)
		totals.Tax = totals.Tax.MustAdd(line.Tax)
		totals.Shipping = totals.Shipping.MustAdd(line.Shipping)
	}
	totals.GrandTotal = totals.Subtotal.MustAdd(totals.Tax).MustAdd(totals.Shipping)
	return totals
}
