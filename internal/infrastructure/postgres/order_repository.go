package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/orderly-app/orderly-api/internal/domain/entity"
	"github.com/orderly-app/orderly-api/internal/domain/repository"
)

var _ repository.OrderRepository = (*OrderRepo)(nil)

// OrderRepo implements OrderRepository on PostgreSQL (usable with pool or tx).
//
// Items and tax snapshots are JSONB documents: they are frozen at sale time
// and only ever read back whole. A NULL tax_snapshots column marks a legacy
// record and scans to a nil slice, which is exactly how the invoice
// aggregator tells the two shapes apart.
type OrderRepo struct {
	q Querier
}

// NewOrderRepository builds the adapter. Pass pool or tx (Querier).
func NewOrderRepository(q Querier) *OrderRepo {
	return &OrderRepo{q: q}
}

// Create persists a new order.
func (r *OrderRepo) Create(order *entity.Order) error {
	items, err := json.Marshal(order.Items)
	if err != nil {
		return fmt.Errorf("encode order items: %w", err)
	}
	snapshots, err := marshalSnapshots(order.TaxSnapshots)
	if err != nil {
		return err
	}
	query := `
		INSERT INTO orders (id, business_id, customer_name, whatsapp_number, items, subtotal, tax_snapshots, tax_amount, discount, total, status, note, tax_name, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`
	_, err = r.q.Exec(context.Background(), query,
		order.ID, order.BusinessID, order.CustomerName, order.WhatsAppNumber,
		items, order.Subtotal, snapshots, order.TaxAmount, order.Discount,
		order.Total, order.Status, order.Note, order.TaxName, order.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert order: %w", err)
	}
	return nil
}

// GetByID returns an order by ID, nil when not found.
func (r *OrderRepo) GetByID(id string) (*entity.Order, error) {
	return r.getOne(orderColumns+` WHERE id = $1`, id)
}

// GetForUpdate locks the order row so concurrent status transitions
// serialize. Only meaningful inside a transaction.
func (r *OrderRepo) GetForUpdate(id string) (*entity.Order, error) {
	return r.getOne(orderColumns+` WHERE id = $1 FOR UPDATE`, id)
}

// UpdateStatus writes the order status.
func (r *OrderRepo) UpdateStatus(id, status string) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE orders SET status = $2 WHERE id = $1`, id, status)
	if err != nil {
		return fmt.Errorf("update order status: %w", err)
	}
	return nil
}

// ListByBusiness lists a business's orders, newest first.
func (r *OrderRepo) ListByBusiness(businessID string, limit, offset int) ([]*entity.Order, error) {
	query := orderColumns + ` WHERE business_id = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	return r.list(query, businessID, limit, offset)
}

// ListByDateRange returns orders created in [from, to], oldest first.
// Cancelled orders are excluded unless includeCancelled is set; this is the
// pre-filtering the invoice aggregator relies on.
func (r *OrderRepo) ListByDateRange(businessID string, from, to time.Time, includeCancelled bool) ([]*entity.Order, error) {
	query := orderColumns + ` WHERE business_id = $1 AND created_at BETWEEN $2 AND $3`
	if !includeCancelled {
		query += ` AND status <> 'cancelled'`
	}
	query += ` ORDER BY created_at`
	return r.list(query, businessID, from, to)
}

// SalesTotals sums non-cancelled order totals and counts orders in [from, to].
func (r *OrderRepo) SalesTotals(ctx context.Context, businessID string, from, to time.Time) (decimal.Decimal, int, error) {
	query := `
		SELECT COALESCE(SUM(total), 0), COUNT(*)
		FROM orders
		WHERE business_id = $1 AND created_at BETWEEN $2 AND $3 AND status <> 'cancelled'`
	var total decimal.Decimal
	var count int
	if err := r.q.QueryRow(ctx, query, businessID, from, to).Scan(&total, &count); err != nil {
		return decimal.Zero, 0, fmt.Errorf("sales totals: %w", err)
	}
	return total, count, nil
}

// CountByStatus counts a business's orders in one status.
func (r *OrderRepo) CountByStatus(ctx context.Context, businessID, status string) (int, error) {
	var count int
	err := r.q.QueryRow(ctx,
		`SELECT COUNT(*) FROM orders WHERE business_id = $1 AND status = $2`,
		businessID, status,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count orders by status: %w", err)
	}
	return count, nil
}

const orderColumns = `
	SELECT id, business_id, customer_name, whatsapp_number, items, subtotal, tax_snapshots, tax_amount, discount, total, status, note, tax_name, created_at
	FROM orders`

func (r *OrderRepo) getOne(query string, args ...any) (*entity.Order, error) {
	o, err := scanOrder(r.q.QueryRow(context.Background(), query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get order: %w", err)
	}
	return o, nil
}

func (r *OrderRepo) list(query string, args ...any) ([]*entity.Order, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	defer rows.Close()
	var list []*entity.Order
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, o)
	}
	return list, rows.Err()
}

func scanOrder(row pgx.Row) (*entity.Order, error) {
	var o entity.Order
	var items, snapshots []byte
	err := row.Scan(
		&o.ID, &o.BusinessID, &o.CustomerName, &o.WhatsAppNumber, &items,
		&o.Subtotal, &snapshots, &o.TaxAmount, &o.Discount, &o.Total,
		&o.Status, &o.Note, &o.TaxName, &o.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	if len(items) > 0 {
		if err := json.Unmarshal(items, &o.Items); err != nil {
			return nil, fmt.Errorf("decode order items: %w", err)
		}
	}
	// NULL stays nil: that is the legacy-record marker.
	if snapshots != nil {
		if err := json.Unmarshal(snapshots, &o.TaxSnapshots); err != nil {
			return nil, fmt.Errorf("decode tax snapshots: %w", err)
		}
	}
	return &o, nil
}

// marshalSnapshots encodes the snapshot list; nil stays NULL so the legacy
// distinction survives the round trip.
func marshalSnapshots(snapshots []entity.TaxSnapshot) ([]byte, error) {
	if snapshots == nil {
		return nil, nil
	}
	raw, err := json.Marshal(snapshots)
	if err != nil {
		return nil, fmt.Errorf("encode tax snapshots: %w", err)
	}
	return raw, nil
}
