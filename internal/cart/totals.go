package cart

import "github.com/shopspring/decimal"

// Money is an exact decimal amount. Rounding happens only in FormatPrice.
type Money = decimal.Decimal

// ShippingLabel is shown in place of a shipping amount; shipping is always free.
const ShippingLabel = "Free"

// Summary is the checkout block under the cart lines.
type Summary struct {
	Subtotal string
	Shipping string
	Total    string
}

// TotalItems is the sum of quantities, used for the cart badge.
func TotalItems(c Cart) int {
	n := 0
	for _, it := range c.items {
		n += it.Quantity
	}
	return n
}

// TotalPrice is the sum of price * quantity at full precision.
func TotalPrice(c Cart) Money {
	total := decimal.Zero
	for _, it := range c.items {
		total = total.Add(it.Subtotal())
	}
	return total
}

// FormatPrice renders an amount as dollars with two decimals.
func FormatPrice(m Money) string {
	return "$" + m.StringFixed(2)
}

// Summarize builds the subtotal/shipping/total block. Total equals subtotal.
func Summarize(c Cart) Summary {
	subtotal := FormatPrice(TotalPrice(c))
	return Summary{
		Subtotal: subtotal,
		Shipping: ShippingLabel,
		Total:    subtotal,
	}
}

func decimalFromInt(n int) decimal.Decimal {
	return decimal.NewFromInt(int64(n))
}
