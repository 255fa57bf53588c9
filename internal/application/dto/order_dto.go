package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// MilestoneResponse hito de la línea de tiempo.
type MilestoneResponse struct {
	Label     string `json:"label"`
	Completed bool   `json:"completed"`
}

// OrderProgressResponse progreso derivado del estado del pedido.
type OrderProgressResponse struct {
	Percent    int                 `json:"percent"`
	Current    string              `json:"current,omitempty"`
	Milestones []MilestoneResponse `json:"milestones"`
}

// OrderResponse pedido con su progreso.
type OrderResponse struct {
	ID              string                `json:"id"`
	Status          string                `json:"status"`
	TotalAmount     decimal.Decimal       `json:"total_amount"`
	TotalLabel      string                `json:"total_label"`
	Quantity        int                   `json:"quantity"`
	ProductName     string                `json:"product_name"`
	ShippingAddress string                `json:"shipping_address,omitempty"`
	CreatedAt       time.Time             `json:"created_at"`
	Progress        OrderProgressResponse `json:"progress"`
}

// OrderTrackingResponse vista de seguimiento. State es "ready" o "not_found".
type OrderTrackingResponse struct {
	State string         `json:"state"`
	Order *OrderResponse `json:"order,omitempty"`
}
