package pricing

import (
	"github.com/shopspring/decimal"

	"github.com/orderly-app/orderly-api/internal/domain/entity"
)

// FallbackTaxBucket labels the breakdown entry for legacy orders that carry a
// flat tax amount without snapshots and without a stored tax name.
const FallbackTaxBucket = "Tax"

// InvoiceSummary is the aggregate of a set of orders. Derived, never persisted.
type InvoiceSummary struct {
	TotalOrders  int
	Subtotal     decimal.Decimal
	TaxAmount    decimal.Decimal
	Discount     decimal.Decimal
	GrandTotal   decimal.Decimal
	TaxBreakdown map[string]decimal.Decimal // tax name -> summed amount
}

// orderPricing is an order's monetary fields normalized to the current shape:
// legacy records (no snapshots) are converted once, up front, instead of being
// special-cased throughout the fold.
type orderPricing struct {
	subtotal  decimal.Decimal
	taxAmount decimal.Decimal
	discount  decimal.Decimal
	total     decimal.Decimal
	buckets   []entity.TaxSnapshot
}

// normalizeOrderPricing resolves an order's pricing fields, degrading
// gracefully on legacy records:
//   - no snapshots but a positive flat tax amount: one synthetic bucket under
//     the order's legacy tax name, or FallbackTaxBucket when that is empty,
//   - no stored subtotal on a snapshot-less record: fall back to the total.
func normalizeOrderPricing(o entity.Order) orderPricing {
	p := orderPricing{
		subtotal:  o.Subtotal,
		taxAmount: o.TaxAmount,
		discount:  o.Discount,
		total:     o.Total,
		buckets:   o.TaxSnapshots,
	}
	if o.TaxSnapshots != nil {
		return p
	}
	if o.Subtotal.IsZero() {
		p.subtotal = o.Total
	}
	if o.TaxAmount.GreaterThan(decimal.Zero) {
		name := o.TaxName
		if name == "" {
			name = FallbackTaxBucket
		}
		p.buckets = []entity.TaxSnapshot{{Name: name, Amount: o.TaxAmount}}
	}
	return p
}

// AggregateInvoiceSummary folds a set of orders into an invoice summary.
//
// The caller pre-filters the set (date range, cancelled inclusion); no
// filtering happens here. Each order's stored total is trusted verbatim rather
// than recomputed. Accumulation is unrounded; every summary field is rounded
// to 2 decimals exactly once at the end, so rounding error never compounds
// across orders.
func AggregateInvoiceSummary(orders []entity.Order) InvoiceSummary {
	summary := InvoiceSummary{
		Subtotal:     decimal.Zero,
		TaxAmount:    decimal.Zero,
		Discount:     decimal.Zero,
		GrandTotal:   decimal.Zero,
		TaxBreakdown: make(map[string]decimal.Decimal),
	}

	for _, order := range orders {
		p := normalizeOrderPricing(order)

		summary.TotalOrders++
		summary.Subtotal = summary.Subtotal.Add(p.subtotal)
		summary.TaxAmount = summary.TaxAmount.Add(p.taxAmount)
		summary.Discount = summary.Discount.Add(p.discount)
		summary.GrandTotal = summary.GrandTotal.Add(p.total)

		for _, snap := range p.buckets {
			summary.TaxBreakdown[snap.Name] = summary.TaxBreakdown[snap.Name].Add(snap.Amount)
		}
	}

	summary.Subtotal = round2(summary.Subtotal)
	summary.TaxAmount = round2(summary.TaxAmount)
	summary.Discount = round2(summary.Discount)
	summary.GrandTotal = round2(summary.GrandTotal)
	for name, amount := range summary.TaxBreakdown {
		summary.TaxBreakdown[name] = round2(amount)
	}
	return summary
}
