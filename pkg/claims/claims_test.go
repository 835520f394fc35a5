package claims_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/estimatics/roofline/pkg/claims"
)

func TestUpdateCosts(t *testing.T) {
	t.Run("RCV is quantity times unit price", func(t *testing.T) {
		item := claims.LineItem{Quantity: 33.25, UnitPrice: 150}
		item.UpdateCosts()
		assert.InDelta(t, 4987.50, item.RCV, 0.001)
		assert.InDelta(t, 4987.50, item.ACV, 0.001)
	})

	t.Run("ACV nets out depreciation", func(t *testing.T) {
		item := claims.LineItem{Quantity: 10, UnitPrice: 100, DepreciationAmount: 250}
		item.UpdateCosts()
		assert.InDelta(t, 1000, item.RCV, 0.001)
		assert.InDelta(t, 750, item.ACV, 0.001)
	})

	t.Run("rounds to cents", func(t *testing.T) {
		item := claims.LineItem{Quantity: 3, UnitPrice: 0.333}
		item.UpdateCosts()
		assert.Equal(t, 1.0, item.RCV)
	})
}

func TestValid(t *testing.T) {
	tests := []struct {
		name string
		item claims.LineItem
		want bool
	}{
		{"ok", claims.LineItem{Description: "Step flashing", Quantity: 10, UnitPrice: 8.64}, true},
		{"zero quantity ok", claims.LineItem{Description: "Step flashing"}, true},
		{"no description", claims.LineItem{Quantity: 10}, false},
		{"negative quantity", claims.LineItem{Description: "x", Quantity: -1}, false},
		{"negative price", claims.LineItem{Description: "x", UnitPrice: -1}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.item.Valid())
		})
	}
}

func TestCloneItems(t *testing.T) {
	items := []claims.LineItem{
		{LineNumber: "1", Description: "Step flashing", Quantity: 10},
	}
	clone := claims.CloneItems(items)
	clone[0].Quantity = 99
	assert.Equal(t, 10.0, items[0].Quantity)

	assert.Nil(t, claims.CloneItems(nil))
}

func TestMoneyEqual(t *testing.T) {
	assert.True(t, claims.MoneyEqual(150.00, 150.005))
	assert.True(t, claims.MoneyEqual(150.00, 150.01))
	assert.False(t, claims.MoneyEqual(150.00, 150.02))
}

func TestQuantityEqual(t *testing.T) {
	assert.True(t, claims.QuantityEqual(33.25, 33.2505))
	assert.False(t, claims.QuantityEqual(33.25, 33.26))
}

func TestRound2(t *testing.T) {
	assert.Equal(t, 4987.50, claims.Round2(4987.4999999))
	assert.Equal(t, 0.01, claims.Round2(0.005))
}
