package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderStatus etapa del pedido reportada por el backend. El cliente nunca la modifica.
type OrderStatus string

// Estados de pedido (pending→paid→escrow→installing→completed, o cancelled).
const (
	OrderPending    OrderStatus = "pending"
	OrderPaid       OrderStatus = "paid"
	OrderEscrow     OrderStatus = "escrow"
	OrderInstalling OrderStatus = "installing"
	OrderCompleted  OrderStatus = "completed"
	OrderCancelled  OrderStatus = "cancelled"
)

// Order pedido de un comprador (solo lectura).
type Order struct {
	ID              string
	Status          OrderStatus
	TotalAmount     decimal.Decimal
	Quantity        int
	ProductName     string
	ShippingAddress string // opcional
	CreatedAt       time.Time
}
