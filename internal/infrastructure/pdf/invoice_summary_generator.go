// Package pdf renders invoice summary exports with Maroto v2.
//
// A4 page layout:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Business name  │  Invoice number + date             │
//	│  ─────────────────────────────────────────────────────────  │
//	│  PERIOD: date range + optional customer                      │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLE: Date | Customer | Items | Status | Total             │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TAX BREAKDOWN: one line per tax name                        │
//	│  TOTALS: Subtotal / Taxes / Discount / GRAND TOTAL           │
//	│  ─────────────────────────────────────────────────────────  │
//	│  FOOTER: generated-by legend                                 │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"fmt"
	"sort"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/orderly-app/orderly-api/internal/application/invoices"
	"github.com/orderly-app/orderly-api/internal/domain/entity"
	"github.com/orderly-app/orderly-api/internal/domain/pricing"
	"github.com/orderly-app/orderly-api/pkg/money"
)

var (
	colorPrimary = &props.Color{Red: 15, Green: 98, Blue: 74}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

var _ invoices.DocumentGenerator = (*InvoiceSummaryGenerator)(nil)

// InvoiceSummaryGenerator implements invoices.DocumentGenerator for PDF.
type InvoiceSummaryGenerator struct{}

// NewInvoiceSummaryGenerator builds the generator.
func NewInvoiceSummaryGenerator() *InvoiceSummaryGenerator { return &InvoiceSummaryGenerator{} }

// FileExt returns "pdf".
func (g *InvoiceSummaryGenerator) FileExt() string { return "pdf" }

// MIMEType returns the PDF content type.
func (g *InvoiceSummaryGenerator) MIMEType() string { return "application/pdf" }

// Generate renders the summary document and returns its bytes.
func (g *InvoiceSummaryGenerator) Generate(
	business *entity.Business,
	record *entity.InvoiceRecord,
	summary pricing.InvoiceSummary,
	orders []*entity.Order,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Invoice Summary "+record.InvoiceNumber, true).
		WithAuthor(business.Name, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(business, record))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(periodRow(record))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	for _, r := range orderRows(business.Currency, orders) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	for _, r := range breakdownRows(business.Currency, summary) {
		m.AddRows(r)
	}
	m.AddRows(totalsRow(business.Currency, summary))

	m.AddRows(line.NewRow(3))
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(footerRow(record))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generate document: %w", err)
	}
	return doc.GetBytes(), nil
}

// headerRow: business name (left), invoice number + date (right).
func headerRow(business *entity.Business, record *entity.InvoiceRecord) core.Row {
	return row.New(18).Add(
		col.New(7).Add(
			text.New(business.Name, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New(business.Type, props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("INVOICE SUMMARY", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New(record.InvoiceNumber, props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Right, Top: 7,
			}),
			text.New("Date: "+record.CreatedAt.Format("02/01/2006"), props.Text{
				Size: 8, Align: align.Right, Top: 14, Color: colorGray,
			}),
		),
	)
}

// periodRow: covered period and optional customer.
func periodRow(record *entity.InvoiceRecord) core.Row {
	info := "Period: " + record.PeriodLabel
	if record.CustomerName != "" {
		info += "   |   Customer: " + record.CustomerName
	}
	return row.New(10).Add(
		col.New(12).Add(
			text.New(info, props.Text{Size: 9, Top: 2}),
		),
	)
}

func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Date", 2, align.Left),
		h("Customer", 4, align.Left),
		h("Items", 1, align.Center),
		h("Status", 2, align.Center),
		h("Total", 3, align.Right),
	)
}

// orderRows: one row per order in the period.
func orderRows(currency string, orders []*entity.Order) []core.Row {
	result := make([]core.Row, 0, len(orders))
	for _, o := range orders {
		itemCount := 0
		for _, item := range o.Items {
			itemCount += item.Quantity
		}
		result = append(result, row.New(7).Add(
			col.New(2).Add(text.New(
				o.CreatedAt.Format("02/01/2006"),
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(4).Add(text.New(
				o.CustomerName,
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(1).Add(text.New(
				fmt.Sprintf("%d", itemCount),
				props.Text{Size: 8, Align: align.Center, Top: 1},
			)),
			col.New(2).Add(text.New(
				o.Status,
				props.Text{Size: 8, Align: align.Center, Top: 1},
			)),
			col.New(3).Add(text.New(
				money.Format(currency, o.Total),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
		))
	}
	return result
}

// breakdownRows: one line per tax name, sorted for a stable layout.
func breakdownRows(currency string, summary pricing.InvoiceSummary) []core.Row {
	names := make([]string, 0, len(summary.TaxBreakdown))
	for name := range summary.TaxBreakdown {
		names = append(names, name)
	}
	sort.Strings(names)

	rows := make([]core.Row, 0, len(names))
	for _, name := range names {
		rows = append(rows, row.New(6).Add(
			col.New(6),
			col.New(3).Add(text.New(name+":", props.Text{
				Size: 8, Align: align.Right, Right: 2, Color: colorGray,
			})),
			col.New(3).Add(text.New(money.Format(currency, summary.TaxBreakdown[name]), props.Text{
				Size: 8, Align: align.Right, Right: 1, Color: colorGray,
			})),
		))
	}
	return rows
}

// totalsRow: right-aligned totals block.
func totalsRow(currency string, summary pricing.InvoiceSummary) core.Row {
	label := func(s string) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2,
		})
	}
	value := func(s string) core.Component {
		return text.New(s, props.Text{Size: 9, Align: align.Right, Right: 1})
	}
	grandLabel := func(s string) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right,
			Color: colorPrimary, Right: 2,
		})
	}
	grandValue := func(s string) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right,
			Color: colorPrimary, Right: 1,
		})
	}

	return row.New(32).Add(
		col.New(3),
		col.New(4).Add(
			label("Subtotal:"),
			label("Taxes:"),
			label("Discounts:"),
			grandLabel("GRAND TOTAL:"),
		),
		col.New(5).Add(
			value(money.Format(currency, summary.Subtotal)),
			value(money.Format(currency, summary.TaxAmount)),
			value(money.Format(currency, summary.Discount.Neg())),
			grandValue(money.Format(currency, summary.GrandTotal)),
		),
	)
}

func footerRow(record *entity.InvoiceRecord) core.Row {
	return row.New(8).Add(col.New(12).Add(
		text.New(
			fmt.Sprintf("Summary of %d order(s). Generated by Orderly. Keep this document for your records.", len(record.OrderIDs)),
			props.Text{Size: 6.5, Color: colorGray, Top: 2},
		),
	))
}
