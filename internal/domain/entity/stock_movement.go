package entity

import "time"

// Stock movement types tied to the order lifecycle.
const (
	MovementTypeDeduct  = "deduct"  // order created
	MovementTypeRestore = "restore" // order cancelled
)

// StockMovement is one ledger entry of the stock reconciliation: a deduction at
// order creation or its mirror restoration at cancellation. OptionID is empty
// for scalar (non-variant) products.
type StockMovement struct {
	ID         string
	BusinessID string
	ProductID  string
	OptionID   string
	OrderID    string
	Type       string // deduct | restore
	Quantity   int
	CreatedAt  time.Time
}
