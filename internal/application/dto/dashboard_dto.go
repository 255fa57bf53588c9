package dto

// BuyerDashboardResponse pedidos del comprador, carrito y calculadora por defecto.
type BuyerDashboardResponse struct {
	Orders     []OrderResponse            `json:"orders"`
	Cart       CartResponse               `json:"cart"`
	Calculator PaymentCalculationResponse `json:"calculator"`
}

// VendorDashboardResponse productos publicados y pedidos del vendedor.
type VendorDashboardResponse struct {
	Products      []ProductResponse `json:"products"`
	Orders        []OrderResponse   `json:"orders"`
	ActiveOrders  int               `json:"active_orders"`
	LowStockCount int               `json:"low_stock_count"`
}

// AdminDashboardResponse resumen de la plataforma.
type AdminDashboardResponse struct {
	Vendors         []VendorResponse    `json:"vendors"`
	Installers      []InstallerResponse `json:"installers"`
	Orders          []OrderResponse     `json:"orders"`
	OrdersByStatus  map[string]int      `json:"orders_by_status"`
	PendingVerified int                 `json:"pending_verification"`
}
