package invoices

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/orderly-app/orderly-api/internal/application/dto"
	"github.com/orderly-app/orderly-api/internal/domain"
	"github.com/orderly-app/orderly-api/internal/domain/entity"
	"github.com/orderly-app/orderly-api/internal/domain/pricing"
)

type fakeOrderRepo struct {
	orders []*entity.Order
}

func (r *fakeOrderRepo) Create(*entity.Order) error                  { return nil }
func (r *fakeOrderRepo) GetByID(string) (*entity.Order, error)       { return nil, nil }
func (r *fakeOrderRepo) GetForUpdate(string) (*entity.Order, error)  { return nil, nil }
func (r *fakeOrderRepo) UpdateStatus(string, string) error           { return nil }
func (r *fakeOrderRepo) ListByBusiness(string, int, int) ([]*entity.Order, error) {
	return r.orders, nil
}
func (r *fakeOrderRepo) ListByDateRange(_ string, _, _ time.Time, includeCancelled bool) ([]*entity.Order, error) {
	var out []*entity.Order
	for _, o := range r.orders {
		if o.Status == entity.OrderStatusCancelled && !includeCancelled {
			continue
		}
		out = append(out, o)
	}
	return out, nil
}
func (r *fakeOrderRepo) SalesTotals(_ context.Context, _ string, _, _ time.Time) (decimal.Decimal, int, error) {
	return decimal.Zero, 0, nil
}
func (r *fakeOrderRepo) CountByStatus(_ context.Context, _, _ string) (int, error) {
	return 0, nil
}

type fakeInvoiceRepo struct {
	records []*entity.InvoiceRecord
}

func (r *fakeInvoiceRepo) Create(rec *entity.InvoiceRecord) error {
	r.records = append(r.records, rec)
	return nil
}
func (r *fakeInvoiceRepo) ListByBusiness(string, int, int) ([]*entity.InvoiceRecord, error) {
	return r.records, nil
}
func (r *fakeInvoiceRepo) CountInPeriod(string, time.Time, time.Time) (int, error) {
	return len(r.records), nil
}

type fakeBusinessRepo struct {
	business *entity.Business
}

func (r *fakeBusinessRepo) Create(*entity.Business) error { return nil }
func (r *fakeBusinessRepo) GetByID(string) (*entity.Business, error) {
	return r.business, nil
}
func (r *fakeBusinessRepo) Update(*entity.Business) error { return nil }

type fakeGenerator struct{ ext, mime string }

func (g *fakeGenerator) Generate(*entity.Business, *entity.InvoiceRecord, pricing.InvoiceSummary, []*entity.Order) ([]byte, error) {
	return []byte("doc"), nil
}
func (g *fakeGenerator) FileExt() string  { return g.ext }
func (g *fakeGenerator) MIMEType() string { return g.mime }

func dec(s string) decimal.Decimal {
	d, _ := decimal.NewFromString(s)
	return d
}

func order(total string, status string) *entity.Order {
	return &entity.Order{
		ID:           "ord-" + total + "-" + status,
		BusinessID:   "biz-1",
		Subtotal:     dec(total),
		TaxSnapshots: []entity.TaxSnapshot{},
		Total:        dec(total),
		Status:       status,
		CreatedAt:    time.Now(),
	}
}

func setup(plan string, orders ...*entity.Order) (*ExportUseCase, *fakeInvoiceRepo) {
	invoiceRepo := &fakeInvoiceRepo{}
	uc := NewExportUseCase(
		&fakeOrderRepo{orders: orders},
		invoiceRepo,
		&fakeBusinessRepo{business: &entity.Business{ID: "biz-1", Name: "Cafe Uno", Currency: "USD", Plan: plan}},
		map[string]DocumentGenerator{
			entity.InvoiceFormatPDF:   &fakeGenerator{ext: "pdf", mime: "application/pdf"},
			entity.InvoiceFormatExcel: &fakeGenerator{ext: "csv", mime: "text/csv"},
		},
		Quotas{FreePerMonth: 2, BusinessPerMonth: 4},
	)
	return uc, invoiceRepo
}

func exportReq(format string) dto.ExportInvoiceRequest {
	return dto.ExportInvoiceRequest{
		From:   time.Now().Add(-24 * time.Hour),
		To:     time.Now(),
		Format: format,
	}
}

func TestExport_AggregatesAndRecords(t *testing.T) {
	uc, invoiceRepo := setup(entity.PlanFree,
		order("10", entity.OrderStatusCompleted),
		order("20", entity.OrderStatusPending),
	)

	result, err := uc.Execute("biz-1", entity.RoleAdmin, exportReq(entity.InvoiceFormatPDF))
	require.NoError(t, err)

	assert.Equal(t, 2, result.Summary.TotalOrders)
	assert.Equal(t, "30.00", result.Summary.GrandTotal.StringFixed(2))
	assert.Equal(t, []byte("doc"), result.File)
	assert.Equal(t, "application/pdf", result.MIMEType)
	assert.Contains(t, result.FileName, ".pdf")

	require.Len(t, invoiceRepo.records, 1)
	rec := invoiceRepo.records[0]
	assert.Equal(t, entity.InvoiceStatusGenerated, rec.Status)
	assert.Equal(t, []string{"ord-10-completed", "ord-20-pending"}, rec.OrderIDs)
	assert.Equal(t, "30.00", rec.TotalAmount.StringFixed(2))
}

func TestExport_ExcludesCancelledByDefault(t *testing.T) {
	uc, _ := setup(entity.PlanFree,
		order("10", entity.OrderStatusCompleted),
		order("99", entity.OrderStatusCancelled),
	)

	result, err := uc.Execute("biz-1", entity.RoleAdmin, exportReq(entity.InvoiceFormatPDF))
	require.NoError(t, err)
	assert.Equal(t, 1, result.Summary.TotalOrders)
	assert.Equal(t, "10.00", result.Summary.GrandTotal.StringFixed(2))

	req := exportReq(entity.InvoiceFormatPDF)
	req.IncludeCancelled = true
	result, err = uc.Execute("biz-1", entity.RoleAdmin, req)
	require.NoError(t, err)
	assert.Equal(t, 2, result.Summary.TotalOrders)
}

func TestExport_EmptyPeriod(t *testing.T) {
	uc, _ := setup(entity.PlanFree)

	_, err := uc.Execute("biz-1", entity.RoleAdmin, exportReq(entity.InvoiceFormatPDF))
	assert.ErrorIs(t, err, domain.ErrNoOrdersInPeriod)
}

func TestExport_FreePlanQuota(t *testing.T) {
	uc, _ := setup(entity.PlanFree, order("10", entity.OrderStatusCompleted))

	for i := 0; i < 2; i++ {
		_, err := uc.Execute("biz-1", entity.RoleAdmin, exportReq(entity.InvoiceFormatPDF))
		require.NoError(t, err)
	}
	_, err := uc.Execute("biz-1", entity.RoleAdmin, exportReq(entity.InvoiceFormatPDF))
	assert.ErrorIs(t, err, domain.ErrExportLimitReached)
}

func TestExport_ZeroQuotaBlocksExports(t *testing.T) {
	// A zero limit means no exports for the quota-checked plans, not unlimited;
	// only the pro plan bypasses the quota.
	invoiceRepo := &fakeInvoiceRepo{}
	uc := NewExportUseCase(
		&fakeOrderRepo{orders: []*entity.Order{order("10", entity.OrderStatusCompleted)}},
		invoiceRepo,
		&fakeBusinessRepo{business: &entity.Business{ID: "biz-1", Name: "Cafe Uno", Currency: "USD", Plan: entity.PlanFree}},
		map[string]DocumentGenerator{
			entity.InvoiceFormatPDF: &fakeGenerator{ext: "pdf", mime: "application/pdf"},
		},
		Quotas{FreePerMonth: 0, BusinessPerMonth: 4},
	)

	_, err := uc.Execute("biz-1", entity.RoleAdmin, exportReq(entity.InvoiceFormatPDF))
	assert.ErrorIs(t, err, domain.ErrExportLimitReached)
	assert.Empty(t, invoiceRepo.records)
}

func TestExport_ProPlanUnlimited(t *testing.T) {
	uc, _ := setup(entity.PlanPro, order("10", entity.OrderStatusCompleted))

	for i := 0; i < 10; i++ {
		_, err := uc.Execute("biz-1", entity.RoleAdmin, exportReq(entity.InvoiceFormatExcel))
		require.NoError(t, err)
	}
}

func TestExport_InvalidInput(t *testing.T) {
	uc, _ := setup(entity.PlanFree, order("10", entity.OrderStatusCompleted))

	req := exportReq(entity.InvoiceFormatPDF)
	req.From, req.To = req.To, req.From
	_, err := uc.Execute("biz-1", entity.RoleAdmin, req)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Execute("biz-1", entity.RoleAdmin, exportReq("docx"))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
