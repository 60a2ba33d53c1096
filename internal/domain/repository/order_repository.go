package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/orderly-app/orderly-api/internal/domain/entity"
)

// OrderRepository defines the persistence port for Order (DIP).
// GetForUpdate locks the order row so a cancellation cannot race a
// completion of the same order.
type OrderRepository interface {
	Create(order *entity.Order) error
	GetByID(id string) (*entity.Order, error)
	GetForUpdate(id string) (*entity.Order, error)
	UpdateStatus(id, status string) error
	ListByBusiness(businessID string, limit, offset int) ([]*entity.Order, error)
	// ListByDateRange returns orders created in [from, to]; cancelled orders
	// are excluded unless includeCancelled is set. This is the caller-side
	// pre-filtering the invoice aggregator relies on.
	ListByDateRange(businessID string, from, to time.Time, includeCancelled bool) ([]*entity.Order, error)
	// SalesTotals sums non-cancelled order totals in [from, to].
	SalesTotals(ctx context.Context, businessID string, from, to time.Time) (decimal.Decimal, int, error)
	CountByStatus(ctx context.Context, businessID, status string) (int, error)
}
