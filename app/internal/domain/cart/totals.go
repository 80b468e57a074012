package cart

import "github.com/shopspring/decimal"

var (
	ShippingFee           = decimal.RequireFromString("9.99")
	FreeShippingThreshold = decimal.NewFromInt(100)
)

type Totals struct {
	TotalItems   int64
	Subtotal     decimal.Decimal
	Shipping     decimal.Decimal
	Total        decimal.Decimal
	FreeShipping bool
}

// ShippingFor returns the flat fee unless subtotal is strictly above the
// free shipping threshold.
func ShippingFor(subtotal decimal.Decimal) decimal.Decimal {
	if subtotal.GreaterThan(FreeShippingThreshold) {
		return decimal.Zero
	}
	return ShippingFee
}

func (c *Cart) Totals() Totals {
	var items int64
	subtotal := decimal.Zero
	for _, l := range c.lines {
		items += l.Quantity
		subtotal = subtotal.Add(l.Total())
	}

	shipping := ShippingFor(subtotal)
	return Totals{
		TotalItems:   items,
		Subtotal:     subtotal.Round(2),
		Shipping:     shipping.Round(2),
		Total:        subtotal.Add(shipping).Round(2),
		FreeShipping: shipping.IsZero(),
	}
}
