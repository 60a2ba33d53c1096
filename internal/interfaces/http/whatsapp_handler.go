package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/orderly-app/orderly-api/internal/application/dto"
	"github.com/orderly-app/orderly-api/internal/application/notify"
	"github.com/orderly-app/orderly-api/internal/domain"
)

// WhatsAppHandler handles WhatsApp notification settings and order messages.
type WhatsAppHandler struct {
	uc *notify.WhatsAppUseCase
}

// NewWhatsAppHandler builds the WhatsApp handler.
func NewWhatsAppHandler(uc *notify.WhatsAppUseCase) *WhatsAppHandler {
	return &WhatsAppHandler{uc: uc}
}

// GetSettings godoc
// @Summary      Get WhatsApp settings
// @Tags         whatsapp
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  dto.WhatsAppSettingsResponse
// @Router       /api/whatsapp/settings [get]
func (h *WhatsAppHandler) GetSettings(c *fiber.Ctx) error {
	out, err := h.uc.GetSettings(GetBusinessID(c))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// UpdateSettings godoc
// @Summary      Update WhatsApp settings (admin only)
// @Tags         whatsapp
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.WhatsAppSettingsRequest  true  "settings"
// @Success      200   {object}  dto.WhatsAppSettingsResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/whatsapp/settings [put]
func (h *WhatsAppHandler) UpdateSettings(c *fiber.Ctx) error {
	var in dto.WhatsAppSettingsRequest
	if !parseAndValidate(c, &in) {
		return nil
	}
	out, err := h.uc.UpdateSettings(GetBusinessID(c), in)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// NotifyOrder godoc
// @Summary      Build a WhatsApp message link for an order
// @Description  Renders the configured template for the order and returns a
// @Description  wa.me link. Counts against the daily message quota.
// @Tags         whatsapp
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path  string  true  "order id"
// @Param        body  body  dto.NotifyOrderRequest  true  "message kind"
// @Success      200   {object}  dto.NotifyOrderResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      429   {object}  dto.ErrorResponse
// @Router       /api/whatsapp/orders/{id}/notify [post]
func (h *WhatsAppHandler) NotifyOrder(c *fiber.Ctx) error {
	var in dto.NotifyOrderRequest
	if !parseAndValidate(c, &in) {
		return nil
	}
	out, err := h.uc.NotifyOrder(GetBusinessID(c), c.Params("id"), in)
	if err != nil {
		if errors.Is(err, domain.ErrForbidden) {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "DISABLED", Message: "whatsapp notifications are disabled"})
		}
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "order not found"})
		}
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
		}
		if errors.Is(err, domain.ErrDailyLimitReached) {
			return c.Status(fiber.StatusTooManyRequests).JSON(dto.ErrorResponse{Code: "DAILY_LIMIT", Message: "daily whatsapp message limit reached"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
