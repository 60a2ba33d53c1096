package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Invoice export formats.
const (
	InvoiceFormatPDF   = "pdf"
	InvoiceFormatExcel = "excel"
)

// Invoice record statuses.
const (
	InvoiceStatusGenerated = "generated"
	InvoiceStatusPaid      = "paid"
	InvoiceStatusPending   = "pending"
	InvoiceStatusCancelled = "cancelled"
)

// InvoiceRecord tracks one invoice export: which orders it covered, the grand
// total at export time and the period it was generated for. Used both for
// history display and for enforcing monthly export quotas per plan.
type InvoiceRecord struct {
	ID            string
	BusinessID    string
	InvoiceNumber string
	Format        string // pdf | excel
	OrderIDs      []string
	TotalAmount   decimal.Decimal
	Status        string
	PeriodLabel   string
	CustomerName  string
	CreatedBy     string // user role at export time: admin | staff
	CreatedAt     time.Time
}
