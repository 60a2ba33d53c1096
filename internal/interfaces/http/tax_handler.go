package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/orderly-app/orderly-api/internal/application/dto"
	"github.com/orderly-app/orderly-api/internal/application/usecase"
	"github.com/orderly-app/orderly-api/internal/domain"
)

// TaxHandler handles the business tax configuration.
type TaxHandler struct {
	uc *usecase.TaxConfigUseCase
}

// NewTaxHandler builds the tax config handler.
func NewTaxHandler(uc *usecase.TaxConfigUseCase) *TaxHandler {
	return &TaxHandler{uc: uc}
}

// Get godoc
// @Summary      Get the tax configuration
// @Tags         taxes
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  dto.TaxConfigResponse
// @Router       /api/taxes [get]
func (h *TaxHandler) Get(c *fiber.Ctx) error {
	out, err := h.uc.Get(GetBusinessID(c))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// AddTax godoc
// @Summary      Add a tax line (admin only)
// @Tags         taxes
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.AddTaxRequest  true  "tax line"
// @Success      201   {object}  dto.TaxConfigResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Router       /api/taxes [post]
func (h *TaxHandler) AddTax(c *fiber.Ctx) error {
	var in dto.AddTaxRequest
	if !parseAndValidate(c, &in) {
		return nil
	}
	out, err := h.uc.AddTax(GetBusinessID(c), in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// UpdateTax godoc
// @Summary      Update a tax line (admin only)
// @Tags         taxes
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path  string  true  "tax line id"
// @Param        body  body  dto.UpdateTaxRequest  true  "fields to change"
// @Success      200   {object}  dto.TaxConfigResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/taxes/{id} [put]
func (h *TaxHandler) UpdateTax(c *fiber.Ctx) error {
	var in dto.UpdateTaxRequest
	if !parseAndValidate(c, &in) {
		return nil
	}
	out, err := h.uc.UpdateTax(GetBusinessID(c), c.Params("id"), in)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "tax line not found"})
		}
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// RemoveTax godoc
// @Summary      Remove a tax line (admin only)
// @Tags         taxes
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "tax line id"
// @Success      200  {object}  dto.TaxConfigResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/taxes/{id} [delete]
func (h *TaxHandler) RemoveTax(c *fiber.Ctx) error {
	out, err := h.uc.RemoveTax(GetBusinessID(c), c.Params("id"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "tax line not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
