package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/orderly-app/orderly-api/internal/application/dto"
	"github.com/orderly-app/orderly-api/internal/application/invoices"
	"github.com/orderly-app/orderly-api/internal/domain"
)

// InvoiceHandler handles invoice summary exports and their history.
type InvoiceHandler struct {
	uc *invoices.ExportUseCase
}

// NewInvoiceHandler builds the invoice handler.
func NewInvoiceHandler(uc *invoices.ExportUseCase) *InvoiceHandler {
	return &InvoiceHandler{uc: uc}
}

// Export godoc
// @Summary      Export an invoice summary for a period
// @Description  Aggregates the period's orders into a single summary document
// @Description  (PDF or spreadsheet CSV) and records the export. Free and
// @Description  business plans have a monthly export quota.
// @Tags         invoices
// @Accept       json
// @Produce      application/pdf
// @Produce      text/csv
// @Security     BearerAuth
// @Param        body  body  dto.ExportInvoiceRequest  true  "period + format"
// @Success      200   {file}    file
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      402   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/invoices/export [post]
func (h *InvoiceHandler) Export(c *fiber.Ctx) error {
	var in dto.ExportInvoiceRequest
	if !parseAndValidate(c, &in) {
		return nil
	}
	out, err := h.uc.Execute(GetBusinessID(c), GetUserID(c), in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
		}
		if errors.Is(err, domain.ErrNoOrdersInPeriod) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NO_ORDERS", Message: "no orders in the selected period"})
		}
		if errors.Is(err, domain.ErrExportLimitReached) {
			return c.Status(fiber.StatusPaymentRequired).JSON(dto.ErrorResponse{Code: "EXPORT_LIMIT", Message: "monthly export limit reached for the current plan"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	c.Set(fiber.HeaderContentType, out.MIMEType)
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+out.FileName+`"`)
	return c.Send(out.File)
}

// History godoc
// @Summary      List past exports
// @Tags         invoices
// @Produce      json
// @Security     BearerAuth
// @Param        limit   query  int  false  "page size (max 100)"
// @Param        offset  query  int  false  "page offset"
// @Success      200  {object}  dto.InvoiceListResponse
// @Router       /api/invoices [get]
func (h *InvoiceHandler) History(c *fiber.Ctx) error {
	out, err := h.uc.History(GetBusinessID(c), pageFromQuery(c))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
