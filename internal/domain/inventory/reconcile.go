// Package inventory implements the stock reconciliation rules tied to the
// order lifecycle (domain service). It adjusts in-memory product copies; the
// surrounding use case is responsible for row locking and persistence.
package inventory

import (
	"time"

	"github.com/orderly-app/orderly-api/internal/domain/entity"
)

// DeductStock applies an order's items to the product at creation time.
// Items referencing other products are ignored, so callers can pass the full
// item list per locked product.
//
// Variant rule: when the product has an option group, only the matching
// option's stock is adjusted and the aggregate product stock is recomputed as
// the sum of option stocks; scalar products adjust the product stock directly.
// Underflow is not prevented here: availability checks belong to the caller.
func DeductStock(product *entity.Product, items []entity.OrderItem) {
	applyStockDelta(product, items, -1)
}

// RestoreStock is the mirror image of DeductStock, applied at cancellation:
// quantities go back to the same option or scalar field they came from.
func RestoreStock(product *entity.Product, items []entity.OrderItem) {
	applyStockDelta(product, items, +1)
}

func applyStockDelta(product *entity.Product, items []entity.OrderItem, sign int) {
	relevant := make([]entity.OrderItem, 0, len(items))
	for _, item := range items {
		if item.ProductID == product.ID {
			relevant = append(relevant, item)
		}
	}
	if len(relevant) == 0 {
		return
	}

	if product.HasOptions() {
		for i := range product.OptionGroup.Options {
			opt := &product.OptionGroup.Options[i]
			for _, item := range relevant {
				if item.SelectedOptionID == opt.ID {
					opt.Stock += sign * item.Quantity
				}
			}
		}
		// Aggregate stock mirrors the option stocks for display consistency.
		total := 0
		for _, opt := range product.OptionGroup.Options {
			total += opt.Stock
		}
		product.Stock = total
		return
	}

	for _, item := range relevant {
		product.Stock += sign * item.Quantity
	}
}

// MovementsFor builds the reconciliation ledger entries for an order
// transition: one entry per item, keyed by order and option.
func MovementsFor(order *entity.Order, movementType string, at time.Time) []entity.StockMovement {
	movements := make([]entity.StockMovement, 0, len(order.Items))
	for _, item := range order.Items {
		movements = append(movements, entity.StockMovement{
			BusinessID: order.BusinessID,
			ProductID:  item.ProductID,
			OptionID:   item.SelectedOptionID,
			OrderID:    order.ID,
			Type:       movementType,
			Quantity:   item.Quantity,
			CreatedAt:  at,
		})
	}
	return movements
}
