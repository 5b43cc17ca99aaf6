package cart

import (
	"github.com/shopspring/decimal"

	cartEntity "sculpturesly.GO/model/entity/cart"
)

// LineTotal computes unit price × quantity, formatted to two decimals.
// Unparsable prices count as zero.
func LineTotal(price string, quantity int) string {
	unit, err := decimal.NewFromString(price)
	if err != nil {
		unit = decimal.Zero
	}
	return unit.Mul(decimal.NewFromInt(int64(quantity))).StringFixed(2)
}

// RecalculateTotals rebuilds the cart aggregates from scratch after every
// mutation. Wholesale recomputation, never incremental patching, so the
// aggregates cannot drift from the line items.
func RecalculateTotals(c *cartEntity.Cart) {
	count := 0
	sum := decimal.Zero
	for i := range c.Items {
		item := &c.Items[i]
		count += item.Quantity
		unit, err := decimal.NewFromString(item.Variant.Price)
		if err != nil {
			unit = decimal.Zero
		}
		sum = sum.Add(unit.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}
	c.TotalItems = count
	c.TotalPrice = sum.StringFixed(2)
}
