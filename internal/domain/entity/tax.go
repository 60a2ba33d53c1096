package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tax line modes. A fixed rate is immutable per invoice; an editable rate is a
// default that may be overridden per use.
const (
	TaxModeFixed    = "fixed"
	TaxModeEditable = "editable"
)

// TaxLine is one named, rated tax rule applied independently against the order subtotal.
// Rate is a percentage (5 means 5%) and must be >= 0.
type TaxLine struct {
	ID      string          `json:"id"`
	Name    string          `json:"name"`
	Rate    decimal.Decimal `json:"rate"`
	Mode    string          `json:"mode"` // fixed | editable
	Enabled bool            `json:"enabled"`
}

// TaxConfig is the business's ordered list of tax lines. Insertion order defines
// the order taxes are listed and applied in breakdowns.
type TaxConfig struct {
	BusinessID string    `json:"-"`
	Taxes      []TaxLine `json:"taxes"`
	UpdatedAt  time.Time `json:"updatedAt"`
}
