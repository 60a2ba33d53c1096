package repository

import "github.com/orderly-app/orderly-api/internal/domain/entity"

// StockMovementRepository defines the port for the reconciliation ledger.
// Written inside the same transaction that adjusts stock.
type StockMovementRepository interface {
	Create(movement *entity.StockMovement) error
	ListByOrder(orderID string) ([]*entity.StockMovement, error)
}
