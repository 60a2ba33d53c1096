// Package export renders invoice summary exports as CSV, the
// spreadsheet-compatible format behind the "excel" export option.
package export

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"sort"

	"github.com/orderly-app/orderly-api/internal/application/invoices"
	"github.com/orderly-app/orderly-api/internal/domain/entity"
	"github.com/orderly-app/orderly-api/internal/domain/pricing"
)

var _ invoices.DocumentGenerator = (*CSVGenerator)(nil)

// CSVGenerator implements invoices.DocumentGenerator for CSV.
type CSVGenerator struct{}

// NewCSVGenerator builds the generator.
func NewCSVGenerator() *CSVGenerator { return &CSVGenerator{} }

// FileExt returns "csv".
func (g *CSVGenerator) FileExt() string { return "csv" }

// MIMEType returns the CSV content type.
func (g *CSVGenerator) MIMEType() string { return "text/csv" }

// Generate writes one row per order followed by the tax breakdown and the
// totals block. Amounts are plain decimals so spreadsheets parse them as
// numbers; the currency goes in the header instead.
func (g *CSVGenerator) Generate(
	business *entity.Business,
	record *entity.InvoiceRecord,
	summary pricing.InvoiceSummary,
	orders []*entity.Order,
) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	rows := [][]string{
		{"Invoice", record.InvoiceNumber},
		{"Business", business.Name},
		{"Period", record.PeriodLabel},
		{"Currency", business.Currency},
		{},
		{"Date", "Order ID", "Customer", "Items", "Status", "Subtotal", "Tax", "Discount", "Total"},
	}
	for _, o := range orders {
		itemCount := 0
		for _, item := range o.Items {
			itemCount += item.Quantity
		}
		rows = append(rows, []string{
			o.CreatedAt.Format("2006-01-02"),
			o.ID,
			o.CustomerName,
			fmt.Sprintf("%d", itemCount),
			o.Status,
			o.Subtotal.StringFixed(2),
			o.TaxAmount.StringFixed(2),
			o.Discount.StringFixed(2),
			o.Total.StringFixed(2),
		})
	}

	rows = append(rows, []string{})
	names := make([]string, 0, len(summary.TaxBreakdown))
	for name := range summary.TaxBreakdown {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		rows = append(rows, []string{"", "", "", "", "", "", name, "", summary.TaxBreakdown[name].StringFixed(2)})
	}

	rows = append(rows,
		[]string{},
		[]string{"", "", "", "", "", "", "", "Subtotal", summary.Subtotal.StringFixed(2)},
		[]string{"", "", "", "", "", "", "", "Taxes", summary.TaxAmount.StringFixed(2)},
		[]string{"", "", "", "", "", "", "", "Discounts", summary.Discount.Neg().StringFixed(2)},
		[]string{"", "", "", "", "", "", "", "Grand Total", summary.GrandTotal.StringFixed(2)},
	)

	if err := w.WriteAll(rows); err != nil {
		return nil, fmt.Errorf("csv: write rows: %w", err)
	}
	return buf.Bytes(), nil
}
