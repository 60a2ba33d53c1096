// Package pricing implements the order totals engine and the invoice summary
// aggregator: pure functions over decimal amounts, safe to call from any
// request context. Monetary values are rounded to 2 decimals exactly where the
// policy below says so and nowhere else.
package pricing

import (
	"github.com/shopspring/decimal"

	"github.com/orderly-app/orderly-api/internal/domain/entity"
)

// OrderTotals is the priced result of an order: every field already rounded to
// 2 decimals for display and persistence.
type OrderTotals struct {
	Subtotal     decimal.Decimal
	TaxSnapshots []entity.TaxSnapshot
	TaxAmount    decimal.Decimal
	Discount     decimal.Decimal
	Total        decimal.Decimal
}

// ComputeOrderTotals prices an order from its items, the business tax config
// and a flat discount amount.
//
// Policy:
//   - the subtotal accumulates unrounded; each enabled tax line is computed
//     independently against that unrounded subtotal (taxes never compound)
//     and rounded per line,
//   - TaxAmount is the sum of the already-rounded per-line amounts,
//   - Total = round2(subtotal) + TaxAmount - round2(discount), with no
//     clamping: a discount larger than subtotal plus tax yields a negative
//     total and is surfaced as-is,
//   - one snapshot is emitted per enabled tax line even when the subtotal is
//     zero, so downstream consumers always render a consistent tax table.
//
// Inputs are never mutated.
func ComputeOrderTotals(items []entity.OrderItem, taxConfig entity.TaxConfig, discount decimal.Decimal) OrderTotals {
	subtotal := decimal.Zero
	for _, item := range items {
		subtotal = subtotal.Add(item.Price.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}

	totalTax := decimal.Zero
	// Non-nil even with no enabled lines: an order priced by this engine is
	// always a current-shape record, never mistaken for a legacy one.
	snapshots := make([]entity.TaxSnapshot, 0, len(taxConfig.Taxes))
	for _, tax := range taxConfig.Taxes {
		if !tax.Enabled {
			continue
		}
		amount := TaxAmount(subtotal, tax.Rate)
		totalTax = totalTax.Add(amount)
		snapshots = append(snapshots, entity.TaxSnapshot{
			ID:     tax.ID,
			Name:   tax.Name,
			Rate:   tax.Rate,
			Amount: amount,
		})
	}

	roundedSubtotal := round2(subtotal)
	roundedDiscount := round2(discount)

	return OrderTotals{
		Subtotal:     roundedSubtotal,
		TaxSnapshots: snapshots,
		TaxAmount:    totalTax,
		Discount:     roundedDiscount,
		Total:        roundedSubtotal.Add(totalTax).Sub(roundedDiscount),
	}
}

// TaxAmount computes one tax line's charge: round2(subtotal * rate / 100).
// A rate <= 0 is zero-effect: zero is a legal rate and negative rates are
// rejected at the config boundary, so neither may crash or go negative here.
func TaxAmount(subtotal, rate decimal.Decimal) decimal.Decimal {
	if rate.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero
	}
	return round2(subtotal.Mul(rate).Div(decimal.NewFromInt(100)))
}

func round2(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}
