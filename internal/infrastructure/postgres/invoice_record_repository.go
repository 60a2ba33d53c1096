package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/orderly-app/orderly-api/internal/domain/entity"
	"github.com/orderly-app/orderly-api/internal/domain/repository"
)

var _ repository.InvoiceRecordRepository = (*InvoiceRecordRepo)(nil)

// InvoiceRecordRepo implements the export history on PostgreSQL (usable with
// pool or tx). order_ids is a text[] column.
type InvoiceRecordRepo struct {
	q Querier
}

// NewInvoiceRecordRepository builds the adapter. Pass pool or tx (Querier).
func NewInvoiceRecordRepository(q Querier) *InvoiceRecordRepo {
	return &InvoiceRecordRepo{q: q}
}

// Create persists one export record.
func (r *InvoiceRecordRepo) Create(record *entity.InvoiceRecord) error {
	query := `
		INSERT INTO invoice_records (id, business_id, invoice_number, format, order_ids, total_amount, status, period_label, customer_name, created_by, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.q.Exec(context.Background(), query,
		record.ID, record.BusinessID, record.InvoiceNumber, record.Format,
		record.OrderIDs, record.TotalAmount, record.Status, record.PeriodLabel,
		record.CustomerName, record.CreatedBy, record.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("insert invoice record: duplicate invoice number: %w", err)
		}
		return fmt.Errorf("insert invoice record: %w", err)
	}
	return nil
}

// ListByBusiness lists a business's exports, newest first.
func (r *InvoiceRecordRepo) ListByBusiness(businessID string, limit, offset int) ([]*entity.InvoiceRecord, error) {
	query := `
		SELECT id, business_id, invoice_number, format, order_ids, total_amount, status, period_label, customer_name, created_by, created_at
		FROM invoice_records WHERE business_id = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, businessID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list invoice records: %w", err)
	}
	defer rows.Close()
	var list []*entity.InvoiceRecord
	for rows.Next() {
		var rec entity.InvoiceRecord
		if err := rows.Scan(&rec.ID, &rec.BusinessID, &rec.InvoiceNumber, &rec.Format,
			&rec.OrderIDs, &rec.TotalAmount, &rec.Status, &rec.PeriodLabel,
			&rec.CustomerName, &rec.CreatedBy, &rec.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan invoice record: %w", err)
		}
		list = append(list, &rec)
	}
	return list, rows.Err()
}

// CountInPeriod counts exports created in [from, to]; backs the monthly quota.
func (r *InvoiceRecordRepo) CountInPeriod(businessID string, from, to time.Time) (int, error) {
	var count int
	err := r.q.QueryRow(context.Background(),
		`SELECT COUNT(*) FROM invoice_records WHERE business_id = $1 AND created_at BETWEEN $2 AND $3`,
		businessID, from, to,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count invoice records: %w", err)
	}
	return count, nil
}
