package inventory_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/orderly-app/orderly-api/internal/domain/entity"
	"github.com/orderly-app/orderly-api/internal/domain/inventory"
)

func scalarProduct(id string, stock int) *entity.Product {
	return &entity.Product{ID: id, Name: "Americano", Price: decimal.NewFromInt(12), Stock: stock}
}

func variantProduct(id string) *entity.Product {
	return &entity.Product{
		ID:    id,
		Name:  "Iced Latte",
		Price: decimal.NewFromInt(18),
		Stock: 30,
		OptionGroup: &entity.ProductOptionGroup{
			Label:        "Size",
			AffectsStock: true,
			Options: []entity.ProductOption{
				{ID: "opt-m", Label: "M", Stock: 10},
				{ID: "opt-l", Label: "L", Stock: 20},
			},
		},
	}
}

func TestDeductStock_Scalar(t *testing.T) {
	p := scalarProduct("p1", 20)
	items := []entity.OrderItem{{ProductID: "p1", Quantity: 3}}

	inventory.DeductStock(p, items)

	assert.Equal(t, 17, p.Stock)
}

func TestDeductStock_IgnoresOtherProducts(t *testing.T) {
	p := scalarProduct("p1", 20)
	items := []entity.OrderItem{
		{ProductID: "p2", Quantity: 5},
		{ProductID: "p1", Quantity: 2},
	}

	inventory.DeductStock(p, items)

	assert.Equal(t, 18, p.Stock, "only items for this product apply")
}

func TestDeductStock_VariantTouchesOnlyMatchingOption(t *testing.T) {
	p := variantProduct("p1")
	items := []entity.OrderItem{{ProductID: "p1", Quantity: 4, SelectedOptionID: "opt-m"}}

	inventory.DeductStock(p, items)

	require.True(t, p.HasOptions())
	assert.Equal(t, 6, p.OptionGroup.Options[0].Stock)
	assert.Equal(t, 20, p.OptionGroup.Options[1].Stock, "the other option is untouched")
	assert.Equal(t, 26, p.Stock, "aggregate stock is recomputed as the sum of option stocks")
}

func TestDeductStock_MultipleItemsSameProduct(t *testing.T) {
	p := variantProduct("p1")
	items := []entity.OrderItem{
		{ProductID: "p1", Quantity: 2, SelectedOptionID: "opt-m"},
		{ProductID: "p1", Quantity: 3, SelectedOptionID: "opt-l"},
		{ProductID: "p1", Quantity: 1, SelectedOptionID: "opt-m"},
	}

	inventory.DeductStock(p, items)

	assert.Equal(t, 7, p.OptionGroup.Options[0].Stock)
	assert.Equal(t, 17, p.OptionGroup.Options[1].Stock)
	assert.Equal(t, 24, p.Stock)
}

func TestDeductStock_UnderflowIsNotPrevented(t *testing.T) {
	// Reconciliation is a deduction ledger, not a gatekeeper: availability
	// checks happen before the order is accepted.
	p := scalarProduct("p1", 1)
	items := []entity.OrderItem{{ProductID: "p1", Quantity: 3}}

	inventory.DeductStock(p, items)

	assert.Equal(t, -2, p.Stock)
}

func TestStockRoundTrip_Scalar(t *testing.T) {
	p := scalarProduct("p1", 15)
	items := []entity.OrderItem{{ProductID: "p1", Quantity: 6}}

	inventory.DeductStock(p, items)
	inventory.RestoreStock(p, items)

	assert.Equal(t, 15, p.Stock, "cancel restores exactly the stock the order deducted")
}

func TestStockRoundTrip_Variant(t *testing.T) {
	p := variantProduct("p1")
	items := []entity.OrderItem{
		{ProductID: "p1", Quantity: 4, SelectedOptionID: "opt-m"},
		{ProductID: "p1", Quantity: 2, SelectedOptionID: "opt-l"},
	}

	inventory.DeductStock(p, items)
	inventory.RestoreStock(p, items)

	assert.Equal(t, 10, p.OptionGroup.Options[0].Stock)
	assert.Equal(t, 20, p.OptionGroup.Options[1].Stock)
	assert.Equal(t, 30, p.Stock)
}

func TestMovementsFor_OneEntryPerItem(t *testing.T) {
	now := time.Now()
	order := &entity.Order{
		ID:         "ord-1",
		BusinessID: "biz-1",
		Items: []entity.OrderItem{
			{ProductID: "p1", Quantity: 2, SelectedOptionID: "opt-m"},
			{ProductID: "p2", Quantity: 1},
		},
	}

	movs := inventory.MovementsFor(order, entity.MovementTypeDeduct, now)

	require.Len(t, movs, 2)
	assert.Equal(t, "p1", movs[0].ProductID)
	assert.Equal(t, "opt-m", movs[0].OptionID)
	assert.Equal(t, entity.MovementTypeDeduct, movs[0].Type)
	assert.Equal(t, 2, movs[0].Quantity)
	assert.Equal(t, "ord-1", movs[1].OrderID)
	assert.Empty(t, movs[1].OptionID)
}
