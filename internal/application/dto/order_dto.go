package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderItemRequest one line of a new order. Price and display name are
// snapshotted server-side from the catalog, never taken from the client.
type OrderItemRequest struct {
	ProductID        string `json:"productId" validate:"required"`
	Quantity         int    `json:"quantity" validate:"required,gt=0"`
	SelectedOptionID string `json:"selectedOptionId"`
}

// CreateOrderRequest payload to create an order.
type CreateOrderRequest struct {
	CustomerName   string             `json:"customerName" validate:"required"`
	WhatsAppNumber string             `json:"whatsappNumber"`
	Note           string             `json:"note"`
	Discount       decimal.Decimal    `json:"discount"`
	Items          []OrderItemRequest `json:"items" validate:"required,min=1,dive"`
}

// UpdateOrderStatusRequest payload for the status transition endpoint.
type UpdateOrderStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=completed cancelled"`
}

// OrderItemResponse one order line in responses.
type OrderItemResponse struct {
	ProductID           string          `json:"productId"`
	ProductName         string          `json:"productName"`
	Quantity            int             `json:"quantity"`
	Price               decimal.Decimal `json:"price"`
	SelectedOptionID    string          `json:"selectedOptionId,omitempty"`
	SelectedOptionLabel string          `json:"selectedOptionLabel,omitempty"`
}

// TaxSnapshotResponse one applied tax in responses.
type TaxSnapshotResponse struct {
	ID     string          `json:"id"`
	Name   string          `json:"name"`
	Rate   decimal.Decimal `json:"rate"`
	Amount decimal.Decimal `json:"amount"`
}

// OrderResponse public view of a priced order.
type OrderResponse struct {
	ID             string                `json:"id"`
	CustomerName   string                `json:"customerName"`
	WhatsAppNumber string                `json:"whatsappNumber,omitempty"`
	Items          []OrderItemResponse   `json:"items"`
	Subtotal       decimal.Decimal       `json:"subtotal"`
	TaxSnapshots   []TaxSnapshotResponse `json:"taxSnapshots"`
	TaxAmount      decimal.Decimal       `json:"taxAmount"`
	Discount       decimal.Decimal       `json:"discount"`
	Total          decimal.Decimal       `json:"total"`
	Status         string                `json:"status"`
	Note           string                `json:"note,omitempty"`
	CreatedAt      time.Time             `json:"createdAt"`
}

// OrderListResponse paged order list.
type OrderListResponse struct {
	Items []OrderResponse `json:"items"`
	Page  PageResponse    `json:"page"`
}
