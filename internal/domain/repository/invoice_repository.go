package repository

import (
	"time"

	"github.com/orderly-app/orderly-api/internal/domain/entity"
)

// InvoiceRecordRepository defines the persistence port for invoice export
// records. CountInPeriod backs the monthly export quota.
type InvoiceRecordRepository interface {
	Create(record *entity.InvoiceRecord) error
	ListByBusiness(businessID string, limit, offset int) ([]*entity.InvoiceRecord, error)
	CountInPeriod(businessID string, from, to time.Time) (int, error)
}
