package cart

import (
	"testing"

	"github.com/stretchr/testify/assert"

	cartEntity "sculpturesly.GO/model/entity/cart"
)

func TestLineTotal(t *testing.T) {
	tests := []struct {
		name  string
		price string
		qty   int
		want  string
	}{
		{"simple", "50.00", 2, "100.00"},
		{"three of base price", "100.00", 3, "300.00"},
		{"cents", "120.50", 2, "241.00"},
		{"single", "450.00", 1, "450.00"},
		{"zero quantity", "450.00", 0, "0.00"},
		{"bad price counts as zero", "oops", 3, "0.00"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, LineTotal(tt.price, tt.qty))
		})
	}
}

func TestRecalculateTotals(t *testing.T) {
	c := &cartEntity.Cart{
		Items: []cartEntity.CartItem{
			{Quantity: 1, Variant: cartEntity.CartVariant{Price: "450.00"}},
			{Quantity: 2, Variant: cartEntity.CartVariant{Price: "120.00"}},
		},
	}
	RecalculateTotals(c)
	assert.Equal(t, 3, c.TotalItems)
	assert.Equal(t, "690.00", c.TotalPrice)
}

func TestRecalculateTotalsEmpty(t *testing.T) {
	c := &cartEntity.Cart{}
	RecalculateTotals(c)
	assert.Equal(t, 0, c.TotalItems)
	assert.Equal(t, "0.00", c.TotalPrice)
}

func TestRecalculateTotalsMockItem(t *testing.T) {
	// price "50.00" × quantity 2 must aggregate to "100.00"
	c := &cartEntity.Cart{
		Items: []cartEntity.CartItem{
			{Quantity: 2, Variant: cartEntity.CartVariant{Price: "50.00"}},
		},
	}
	RecalculateTotals(c)
	assert.Equal(t, "100.00", c.TotalPrice)
	assert.Equal(t, 2, c.TotalItems)
}
