package pricing_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/orderly-app/orderly-api/internal/domain/entity"
	"github.com/orderly-app/orderly-api/internal/domain/pricing"
)

func pricedOrder(subtotal, tax, discount, total string, snaps ...entity.TaxSnapshot) entity.Order {
	if snaps == nil {
		snaps = []entity.TaxSnapshot{}
	}
	return entity.Order{
		Subtotal:     dec(subtotal),
		TaxAmount:    dec(tax),
		Discount:     dec(discount),
		Total:        dec(total),
		TaxSnapshots: snaps,
		Status:       entity.OrderStatusCompleted,
	}
}

func TestAggregateInvoiceSummary_Empty(t *testing.T) {
	out := pricing.AggregateInvoiceSummary(nil)

	assert.Equal(t, 0, out.TotalOrders)
	assert.True(t, out.GrandTotal.IsZero())
	assert.Empty(t, out.TaxBreakdown)
}

func TestAggregateInvoiceSummary_Linearity(t *testing.T) {
	a := pricedOrder("10", "0", "0", "10")
	b := pricedOrder("20", "0", "0", "20")

	out := pricing.AggregateInvoiceSummary([]entity.Order{a, b})

	assert.Equal(t, 2, out.TotalOrders)
	assert.True(t, out.GrandTotal.Equal(a.Total.Add(b.Total)), "grandTotal is the plain sum of stored totals")
}

// The caller pre-filters cancelled orders; whatever set arrives is aggregated
// without further policy.
func TestAggregateInvoiceSummary_TrustsCallerPrefilter(t *testing.T) {
	orders := []entity.Order{
		pricedOrder("10", "0", "0", "10"),
		pricedOrder("20", "0", "0", "20"),
		// the cancelled -30 order was already excluded by the caller
	}

	out := pricing.AggregateInvoiceSummary(orders)

	assert.Equal(t, 2, out.TotalOrders)
	assert.True(t, out.GrandTotal.Equal(dec("30.00")))
}

func TestAggregateInvoiceSummary_TaxBreakdownByName(t *testing.T) {
	orders := []entity.Order{
		pricedOrder("100", "5", "0", "105", entity.TaxSnapshot{ID: "t1", Name: "VAT", Rate: dec("5"), Amount: dec("5.00")}),
		pricedOrder("200", "28", "0", "228",
			entity.TaxSnapshot{ID: "t1", Name: "VAT", Rate: dec("5"), Amount: dec("10.00")},
			entity.TaxSnapshot{ID: "t2", Name: "GST", Rate: dec("9"), Amount: dec("18.00")},
		),
	}

	out := pricing.AggregateInvoiceSummary(orders)

	require.Len(t, out.TaxBreakdown, 2)
	assert.True(t, out.TaxBreakdown["VAT"].Equal(dec("15.00")))
	assert.True(t, out.TaxBreakdown["GST"].Equal(dec("18.00")))
	assert.True(t, out.TaxAmount.Equal(dec("33.00")))
}

func TestAggregateInvoiceSummary_LegacyFlatTaxAmount(t *testing.T) {
	legacy := entity.Order{ // pre-snapshot record shape
		Subtotal:  dec("250"),
		TaxAmount: dec("12.50"),
		Total:     dec("262.50"),
	}

	out := pricing.AggregateInvoiceSummary([]entity.Order{legacy})

	require.Contains(t, out.TaxBreakdown, pricing.FallbackTaxBucket, "legacy tax lands in the fallback bucket")
	assert.True(t, out.TaxBreakdown[pricing.FallbackTaxBucket].GreaterThanOrEqual(dec("12.50")))
	assert.True(t, out.TaxAmount.Equal(dec("12.50")))
}

func TestAggregateInvoiceSummary_LegacyTaxNamePreferred(t *testing.T) {
	legacy := entity.Order{
		Subtotal:  dec("100"),
		TaxAmount: dec("5.00"),
		Total:     dec("105.00"),
		TaxName:   "VAT",
	}

	out := pricing.AggregateInvoiceSummary([]entity.Order{legacy})

	assert.True(t, out.TaxBreakdown["VAT"].Equal(dec("5.00")))
	assert.NotContains(t, out.TaxBreakdown, pricing.FallbackTaxBucket)
}

func TestAggregateInvoiceSummary_LegacySubtotalFallsBackToTotal(t *testing.T) {
	legacy := entity.Order{Total: dec("99.90")} // no subtotal, no snapshots, no tax

	out := pricing.AggregateInvoiceSummary([]entity.Order{legacy})

	assert.True(t, out.Subtotal.Equal(dec("99.90")), "missing subtotal degrades to the stored total")
	assert.Empty(t, out.TaxBreakdown, "zero flat tax contributes no breakdown entry")
}

// Rounding happens once at the end of the fold; per-order rounding would lose
// a cent here (3 x 0.333 -> 0.99 instead of 1.00).
func TestAggregateInvoiceSummary_SinglePointRounding(t *testing.T) {
	orders := []entity.Order{
		{Subtotal: dec("0.333"), Total: dec("0.333"), TaxSnapshots: []entity.TaxSnapshot{}},
		{Subtotal: dec("0.333"), Total: dec("0.333"), TaxSnapshots: []entity.TaxSnapshot{}},
		{Subtotal: dec("0.333"), Total: dec("0.333"), TaxSnapshots: []entity.TaxSnapshot{}},
	}

	out := pricing.AggregateInvoiceSummary(orders)

	assert.True(t, out.Subtotal.Equal(dec("1.00")), "subtotal rounded once at the end: %s", out.Subtotal)
	assert.True(t, out.GrandTotal.Equal(dec("1.00")))
}

func TestAggregateInvoiceSummary_MixedCurrentAndLegacy(t *testing.T) {
	orders := []entity.Order{
		pricedOrder("100", "5", "0", "105", entity.TaxSnapshot{ID: "t1", Name: "VAT", Rate: dec("5"), Amount: dec("5.00")}),
		{Subtotal: dec("40"), TaxAmount: dec("2.00"), Total: dec("42.00"), TaxName: "VAT"},
	}

	out := pricing.AggregateInvoiceSummary(orders)

	assert.Equal(t, 2, out.TotalOrders)
	assert.True(t, out.TaxBreakdown["VAT"].Equal(dec("7.00")), "current and legacy records merge under the same label")
	assert.True(t, out.GrandTotal.Equal(dec("147.00")))
}
