package invoices

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/orderly-app/orderly-api/internal/application/dto"
	"github.com/orderly-app/orderly-api/internal/domain"
	"github.com/orderly-app/orderly-api/internal/domain/entity"
	"github.com/orderly-app/orderly-api/internal/domain/pricing"
	"github.com/orderly-app/orderly-api/internal/domain/repository"
)

// Quotas caps invoice exports per calendar month for the free and business
// plans. The pro plan is never quota-checked; a zero limit here blocks
// exports for that plan entirely.
type Quotas struct {
	FreePerMonth     int
	BusinessPerMonth int
}

// ExportUseCase generates invoice summary documents over an order period and
// records each export for history and quota enforcement.
type ExportUseCase struct {
	orderRepo    repository.OrderRepository
	invoiceRepo  repository.InvoiceRecordRepository
	businessRepo repository.BusinessRepository
	generators   map[string]DocumentGenerator // keyed by format: pdf | excel
	quotas       Quotas
}

// NewExportUseCase builds the use case.
func NewExportUseCase(
	orderRepo repository.OrderRepository,
	invoiceRepo repository.InvoiceRecordRepository,
	businessRepo repository.BusinessRepository,
	generators map[string]DocumentGenerator,
	quotas Quotas,
) *ExportUseCase {
	return &ExportUseCase{
		orderRepo:    orderRepo,
		invoiceRepo:  invoiceRepo,
		businessRepo: businessRepo,
		generators:   generators,
		quotas:       quotas,
	}
}

// Execute aggregates the period's orders into a summary, renders the document
// and persists the export record. Cancelled orders are excluded from the
// aggregate unless explicitly requested. Returns ErrNoOrdersInPeriod when the
// period is empty and ErrExportLimitReached when the plan's monthly quota is
// used up.
func (uc *ExportUseCase) Execute(businessID, createdBy string, in dto.ExportInvoiceRequest) (*dto.InvoiceExportResult, error) {
	if in.To.Before(in.From) {
		return nil, domain.ErrInvalidInput
	}
	generator, ok := uc.generators[in.Format]
	if !ok {
		return nil, domain.ErrInvalidInput
	}
	business, err := uc.businessRepo.GetByID(businessID)
	if err != nil {
		return nil, err
	}
	if business == nil {
		return nil, domain.ErrNotFound
	}
	if err := uc.checkQuota(business); err != nil {
		return nil, err
	}

	orders, err := uc.orderRepo.ListByDateRange(businessID, in.From, in.To, in.IncludeCancelled)
	if err != nil {
		return nil, err
	}
	if len(orders) == 0 {
		return nil, domain.ErrNoOrdersInPeriod
	}

	values := make([]entity.Order, 0, len(orders))
	orderIDs := make([]string, 0, len(orders))
	for _, o := range orders {
		values = append(values, *o)
		orderIDs = append(orderIDs, o.ID)
	}
	summary := pricing.AggregateInvoiceSummary(values)

	now := time.Now()
	periodLabel := formatPeriod(in.From, in.To)
	record := &entity.InvoiceRecord{
		ID:            uuid.New().String(),
		BusinessID:    businessID,
		InvoiceNumber: invoiceNumber(now),
		Format:        in.Format,
		OrderIDs:      orderIDs,
		TotalAmount:   summary.GrandTotal,
		Status:        entity.InvoiceStatusGenerated,
		PeriodLabel:   periodLabel,
		CustomerName:  in.CustomerName,
		CreatedBy:     createdBy,
		CreatedAt:     now,
	}

	file, err := generator.Generate(business, record, summary, orders)
	if err != nil {
		return nil, fmt.Errorf("generate %s document: %w", in.Format, err)
	}
	if err := uc.invoiceRepo.Create(record); err != nil {
		return nil, err
	}

	return &dto.InvoiceExportResult{
		Record:   *toRecordResponse(record),
		Summary:  toSummaryResponse(summary),
		File:     file,
		FileName: fmt.Sprintf("%s.%s", record.InvoiceNumber, generator.FileExt()),
		MIMEType: generator.MIMEType(),
	}, nil
}

// History returns a page of past exports.
func (uc *ExportUseCase) History(businessID string, page dto.PageRequest) (*dto.InvoiceListResponse, error) {
	page.DefaultPage()
	records, err := uc.invoiceRepo.ListByBusiness(businessID, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.InvoiceRecordResponse, 0, len(records))
	for _, r := range records {
		items = append(items, *toRecordResponse(r))
	}
	return &dto.InvoiceListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}, nil
}

// checkQuota enforces the per-plan monthly export cap against the exports
// already recorded this calendar month.
func (uc *ExportUseCase) checkQuota(business *entity.Business) error {
	var limit int
	switch business.Plan {
	case entity.PlanPro:
		return nil // unlimited
	case entity.PlanBusiness:
		limit = uc.quotas.BusinessPerMonth
	default:
		limit = uc.quotas.FreePerMonth
	}
	now := time.Now()
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	monthEnd := monthStart.AddDate(0, 1, 0).Add(-time.Nanosecond)
	used, err := uc.invoiceRepo.CountInPeriod(business.ID, monthStart, monthEnd)
	if err != nil {
		return err
	}
	if used >= limit {
		return domain.ErrExportLimitReached
	}
	return nil
}

// invoiceNumber builds a unique human-readable number, e.g. "INV-202609-3F2A91".
func invoiceNumber(at time.Time) string {
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.New().String(), "-", ""))[:6]
	return fmt.Sprintf("INV-%s-%s", at.Format("200601"), suffix)
}

func formatPeriod(from, to time.Time) string {
	return fmt.Sprintf("%s to %s", from.Format("2006-01-02"), to.Format("2006-01-02"))
}

func toSummaryResponse(s pricing.InvoiceSummary) dto.InvoiceSummaryResponse {
	return dto.InvoiceSummaryResponse{
		TotalOrders:  s.TotalOrders,
		Subtotal:     s.Subtotal,
		TaxAmount:    s.TaxAmount,
		Discount:     s.Discount,
		GrandTotal:   s.GrandTotal,
		TaxBreakdown: s.TaxBreakdown,
	}
}

func toRecordResponse(r *entity.InvoiceRecord) *dto.InvoiceRecordResponse {
	if r == nil {
		return nil
	}
	return &dto.InvoiceRecordResponse{
		ID:            r.ID,
		InvoiceNumber: r.InvoiceNumber,
		Format:        r.Format,
		OrderIDs:      r.OrderIDs,
		TotalAmount:   r.TotalAmount,
		Status:        r.Status,
		PeriodLabel:   r.PeriodLabel,
		CustomerName:  r.CustomerName,
		CreatedBy:     r.CreatedBy,
		CreatedAt:     r.CreatedAt,
	}
}
