package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ExportInvoiceRequest payload for the invoice export endpoint.
type ExportInvoiceRequest struct {
	From             time.Time `json:"from" validate:"required"`
	To               time.Time `json:"to" validate:"required"`
	IncludeCancelled bool      `json:"includeCancelled"`
	Format           string    `json:"format" validate:"required,oneof=pdf excel"`
	CustomerName     string    `json:"customerName"`
}

// InvoiceSummaryResponse the aggregate over the exported orders.
type InvoiceSummaryResponse struct {
	TotalOrders  int                        `json:"totalOrders"`
	Subtotal     decimal.Decimal            `json:"subtotal"`
	TaxAmount    decimal.Decimal            `json:"taxAmount"`
	Discount     decimal.Decimal            `json:"discount"`
	GrandTotal   decimal.Decimal            `json:"grandTotal"`
	TaxBreakdown map[string]decimal.Decimal `json:"taxBreakdown"`
}

// InvoiceRecordResponse one export record.
type InvoiceRecordResponse struct {
	ID            string          `json:"id"`
	InvoiceNumber string          `json:"invoiceNumber"`
	Format        string          `json:"format"`
	OrderIDs      []string        `json:"orderIds"`
	TotalAmount   decimal.Decimal `json:"totalAmount"`
	Status        string          `json:"status"`
	PeriodLabel   string          `json:"periodLabel"`
	CustomerName  string          `json:"customerName,omitempty"`
	CreatedBy     string          `json:"createdBy"`
	CreatedAt     time.Time       `json:"createdAt"`
}

// InvoiceExportResult the export outcome: the persisted record, the summary
// and the rendered document bytes (returned as a file by the handler).
type InvoiceExportResult struct {
	Record   InvoiceRecordResponse
	Summary  InvoiceSummaryResponse
	File     []byte
	FileName string
	MIMEType string
}

// InvoiceListResponse paged export history.
type InvoiceListResponse struct {
	Items []InvoiceRecordResponse `json:"items"`
	Page  PageResponse            `json:"page"`
}
