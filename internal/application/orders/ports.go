// Package orders implements the order lifecycle use cases: creation with
// atomic stock deduction, and status transitions with stock restoration on
// cancellation.
package orders

import (
	"context"

	"github.com/orderly-app/orderly-api/internal/domain/repository"
)

// TxRunner runs a function inside a DB transaction, passing repositories
// bound to that transaction. Guarantees atomicity of order writes and their
// stock reconciliation.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		orderRepo repository.OrderRepository,
		productRepo repository.ProductRepository,
		movementRepo repository.StockMovementRepository,
	) error) error
}
