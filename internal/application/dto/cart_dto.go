package dto

import "github.com/shopspring/decimal"

// AddToCartRequest entrada para agregar un producto al carrito.
type AddToCartRequest struct {
	ProductID string `json:"product_id" form:"product_id" validate:"required,max=100"`
	Quantity  int    `json:"quantity" form:"quantity" validate:"required,min=1,max=1000"`
}

// CartItemResponse línea del carrito.
type CartItemResponse struct {
	ID          string          `json:"id"`
	ProductID   string          `json:"product_id"`
	ProductName string          `json:"product_name"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Quantity    int             `json:"quantity"`
	Subtotal    decimal.Decimal `json:"subtotal"`
}

// CartResponse carrito del usuario.
type CartResponse struct {
	Items      []CartItemResponse `json:"items"`
	Count      int                `json:"count"`
	Total      decimal.Decimal    `json:"total"`
	TotalLabel string             `json:"total_label"`
}
