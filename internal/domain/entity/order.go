package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Order statuses. Completed and cancelled are both terminal: there is no valid
// transition out of either.
const (
	OrderStatusPending   = "pending"
	OrderStatusCompleted = "completed"
	OrderStatusCancelled = "cancelled"
)

// OrderItem is one line of an order. ProductName and Price are frozen snapshots
// taken at sale time; later catalog changes never rewrite them.
type OrderItem struct {
	ProductID           string          `json:"productId"`
	ProductName         string          `json:"productName"`
	Quantity            int             `json:"quantity"`
	Price               decimal.Decimal `json:"price"` // unit price at time of sale
	SelectedOptionID    string          `json:"selectedOptionId,omitempty"`
	SelectedOptionLabel string          `json:"selectedOptionLabel,omitempty"`
}

// TaxSnapshot is the immutable record of one tax as it was actually charged on
// an order, independent of later changes to the live tax config.
type TaxSnapshot struct {
	ID     string          `json:"id"`
	Name   string          `json:"name"`
	Rate   decimal.Decimal `json:"rate"`
	Amount decimal.Decimal `json:"amount"`
}

// Order is a priced, persisted order. Invariant: Total == Subtotal + TaxAmount - Discount
// (all monetary fields rounded to 2 decimals at computation time).
//
// TaxName is a legacy field: records written before per-line tax snapshots carry
// a flat TaxAmount and optionally this single label. The invoice aggregator
// folds such records into the breakdown under TaxName (or "Tax" when empty).
type Order struct {
	ID             string
	BusinessID     string
	CustomerName   string
	WhatsAppNumber string
	Items          []OrderItem
	Subtotal       decimal.Decimal
	TaxSnapshots   []TaxSnapshot // nil on legacy records
	TaxAmount      decimal.Decimal
	Discount       decimal.Decimal
	Total          decimal.Decimal
	Status         string
	Note           string
	TaxName        string // legacy single-tax label
	CreatedAt      time.Time
}
