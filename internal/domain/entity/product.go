package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product statuses.
const (
	ProductStatusActive   = "active"
	ProductStatusArchived = "archived"
)

// ProductOption is one variant of a product (e.g. "M", "500ml"). Stock is
// tracked per option when the product has an option group.
type ProductOption struct {
	ID                string          `json:"id"`
	Label             string          `json:"label"`
	Stock             int             `json:"stock"`
	PriceAdjustment   decimal.Decimal `json:"priceAdjustment"`
	LowStockThreshold int             `json:"lowStockThreshold,omitempty"`
}

// ProductOptionGroup groups a product's variants under one label (e.g. "Size").
type ProductOptionGroup struct {
	Label        string          `json:"label"`
	AffectsStock bool            `json:"affectsStock"`
	Options      []ProductOption `json:"options"`
}

// Product is a catalog item. When OptionGroup is set, the option stocks are the
// source of truth and Stock is kept as their sum for display consistency.
type Product struct {
	ID                string
	BusinessID        string
	SKU               string
	Name              string
	Price             decimal.Decimal
	Stock             int
	LowStockThreshold int
	Status            string
	OptionGroup       *ProductOptionGroup
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// HasOptions reports whether stock is tracked per option for this product.
func (p *Product) HasOptions() bool {
	return p.OptionGroup != nil && len(p.OptionGroup.Options) > 0
}
