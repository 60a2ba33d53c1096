package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/orderly-app/orderly-api/internal/domain/entity"
	"github.com/orderly-app/orderly-api/internal/domain/repository"
)

var _ repository.StockMovementRepository = (*StockMovementRepo)(nil)

// StockMovementRepo implements the reconciliation ledger on PostgreSQL
// (usable with pool or tx). Entries are append-only.
type StockMovementRepo struct {
	q Querier
}

// NewStockMovementRepository builds the adapter. Pass pool or tx (Querier).
func NewStockMovementRepository(q Querier) *StockMovementRepo {
	return &StockMovementRepo{q: q}
}

// Create persists one ledger entry.
func (r *StockMovementRepo) Create(movement *entity.StockMovement) error {
	if movement.ID == "" {
		movement.ID = uuid.New().String()
	}
	query := `
		INSERT INTO stock_movements (id, business_id, product_id, option_id, order_id, type, quantity, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		movement.ID, movement.BusinessID, movement.ProductID, movement.OptionID,
		movement.OrderID, movement.Type, movement.Quantity, movement.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert stock movement: %w", err)
	}
	return nil
}

// ListByOrder returns the ledger entries of one order, oldest first.
func (r *StockMovementRepo) ListByOrder(orderID string) ([]*entity.StockMovement, error) {
	query := `
		SELECT id, business_id, product_id, option_id, order_id, type, quantity, created_at
		FROM stock_movements WHERE order_id = $1 ORDER BY created_at`
	rows, err := r.q.Query(context.Background(), query, orderID)
	if err != nil {
		return nil, fmt.Errorf("list stock movements: %w", err)
	}
	defer rows.Close()
	var list []*entity.StockMovement
	for rows.Next() {
		var m entity.StockMovement
		if err := rows.Scan(&m.ID, &m.BusinessID, &m.ProductID, &m.OptionID,
			&m.OrderID, &m.Type, &m.Quantity, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan stock movement: %w", err)
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}
