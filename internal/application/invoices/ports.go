// Package invoices implements invoice export: summary aggregation over a
// period, plan-based export quotas and document generation.
package invoices

import (
	"github.com/orderly-app/orderly-api/internal/domain/entity"
	"github.com/orderly-app/orderly-api/internal/domain/pricing"
)

// DocumentGenerator renders one invoice export into a downloadable document.
// Implementations: maroto PDF and CSV (the spreadsheet-compatible format).
type DocumentGenerator interface {
	Generate(business *entity.Business, record *entity.InvoiceRecord, summary pricing.InvoiceSummary, orders []*entity.Order) ([]byte, error)
	// FileExt is the extension without dot, e.g. "pdf" or "csv".
	FileExt() string
	MIMEType() string
}
