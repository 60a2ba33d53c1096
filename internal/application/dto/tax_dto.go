package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// AddTaxRequest payload to append a tax line to the business config.
type AddTaxRequest struct {
	Name    string          `json:"name" validate:"required"`
	Rate    decimal.Decimal `json:"rate"`
	Mode    string          `json:"mode" validate:"omitempty,oneof=fixed editable"`
	Enabled bool            `json:"enabled"`
}

// UpdateTaxRequest payload to update a tax line. Nil fields are left unchanged.
type UpdateTaxRequest struct {
	Name    *string          `json:"name"`
	Rate    *decimal.Decimal `json:"rate"`
	Mode    *string          `json:"mode" validate:"omitempty,oneof=fixed editable"`
	Enabled *bool            `json:"enabled"`
}

// TaxLineResponse one tax line in responses.
type TaxLineResponse struct {
	ID      string          `json:"id"`
	Name    string          `json:"name"`
	Rate    decimal.Decimal `json:"rate"`
	Mode    string          `json:"mode"`
	Enabled bool            `json:"enabled"`
}

// TaxConfigResponse the business tax configuration.
type TaxConfigResponse struct {
	Taxes     []TaxLineResponse `json:"taxes"`
	UpdatedAt time.Time         `json:"updatedAt"`
}
