package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ProductOptionRequest one variant in a create/update payload. ID is assigned
// server-side on create and required on update to keep option identity stable
// across stock tracking.
type ProductOptionRequest struct {
	ID                string          `json:"id"`
	Label             string          `json:"label" validate:"required"`
	Stock             int             `json:"stock" validate:"min=0"`
	PriceAdjustment   decimal.Decimal `json:"priceAdjustment"`
	LowStockThreshold int             `json:"lowStockThreshold" validate:"omitempty,min=0"`
}

// ProductOptionGroupRequest one option group in a create/update payload.
type ProductOptionGroupRequest struct {
	Label   string                 `json:"label" validate:"required"`
	Options []ProductOptionRequest `json:"options" validate:"required,min=1,dive"`
}

// CreateProductRequest payload to create a product. SKU is optional; one is
// generated when empty.
type CreateProductRequest struct {
	SKU               string                     `json:"sku"`
	Name              string                     `json:"name" validate:"required"`
	Price             decimal.Decimal            `json:"price"`
	Stock             int                        `json:"stock" validate:"min=0"`
	LowStockThreshold int                        `json:"lowStockThreshold" validate:"omitempty,min=0"`
	OptionGroup       *ProductOptionGroupRequest `json:"optionGroup" validate:"omitempty"`
}

// UpdateProductRequest payload to update a product. Nil fields are left unchanged.
type UpdateProductRequest struct {
	Name              *string                    `json:"name"`
	Price             *decimal.Decimal           `json:"price"`
	Stock             *int                       `json:"stock" validate:"omitempty,min=0"`
	LowStockThreshold *int                       `json:"lowStockThreshold" validate:"omitempty,min=0"`
	Status            *string                    `json:"status" validate:"omitempty,oneof=active archived"`
	OptionGroup       *ProductOptionGroupRequest `json:"optionGroup"`
}

// ProductOptionResponse one variant in responses.
type ProductOptionResponse struct {
	ID                string          `json:"id"`
	Label             string          `json:"label"`
	Stock             int             `json:"stock"`
	PriceAdjustment   decimal.Decimal `json:"priceAdjustment"`
	LowStockThreshold int             `json:"lowStockThreshold,omitempty"`
}

// ProductOptionGroupResponse option group in responses.
type ProductOptionGroupResponse struct {
	Label        string                  `json:"label"`
	AffectsStock bool                    `json:"affectsStock"`
	Options      []ProductOptionResponse `json:"options"`
}

// ProductResponse public view of a product.
type ProductResponse struct {
	ID                string                      `json:"id"`
	SKU               string                      `json:"sku"`
	Name              string                      `json:"name"`
	Price             decimal.Decimal             `json:"price"`
	Stock             int                         `json:"stock"`
	LowStockThreshold int                         `json:"lowStockThreshold"`
	Status            string                      `json:"status"`
	OptionGroup       *ProductOptionGroupResponse `json:"optionGroup,omitempty"`
	CreatedAt         time.Time                   `json:"createdAt"`
	UpdatedAt         time.Time                   `json:"updatedAt"`
}

// ProductListResponse paged product list.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}
