package dto

import "github.com/shopspring/decimal"

// ProductFilterRequest filtros del marketplace (query string).
type ProductFilterRequest struct {
	Category string `query:"category" validate:"omitempty,max=50"`
	Search   string `query:"search" validate:"omitempty,max=100"`
}

// FinancingPreview resumen de financiación que acompaña a cada producto.
type FinancingPreview struct {
	TaxCredit         decimal.Decimal `json:"tax_credit"`
	NetCost           decimal.Decimal `json:"net_cost"`
	MonthlyPayment    decimal.Decimal `json:"monthly_payment"`
	InstallmentMonths int             `json:"installment_months"`
	MonthlyLabel      string          `json:"monthly_label"`
}

// ProductResponse tarjeta de producto.
type ProductResponse struct {
	ID          string           `json:"id"`
	VendorID    string           `json:"vendor_id"`
	VendorName  string           `json:"vendor_name,omitempty"`
	Name        string           `json:"name"`
	Description string           `json:"description,omitempty"`
	Category    string           `json:"category,omitempty"`
	Price       decimal.Decimal  `json:"price"`
	PriceLabel  string           `json:"price_label"`
	Stock       int              `json:"stock"`
	InStock     bool             `json:"in_stock"`
	ImageURL    string           `json:"image_url,omitempty"`
	Rating      decimal.Decimal  `json:"rating"`
	Financing   FinancingPreview `json:"financing"`
}

// ProductListResponse listado del marketplace.
type ProductListResponse struct {
	Items    []ProductResponse `json:"items"`
	Category string            `json:"category,omitempty"`
	Search   string            `json:"search,omitempty"`
	Total    int               `json:"total"`
}

// ProductDetailResponse detalle con los dos planes de pago calculados.
type ProductDetailResponse struct {
	Product     ProductResponse            `json:"product"`
	FullPlan    PaymentCalculationResponse `json:"full_plan"`
	Installment PaymentCalculationResponse `json:"installment_plan"`
}

// VendorResponse vendedor.
type VendorResponse struct {
	ID           string          `json:"id"`
	BusinessName string          `json:"business_name"`
	Email        string          `json:"email,omitempty"`
	Verified     bool            `json:"verified"`
	Rating       decimal.Decimal `json:"rating"`
	ProductCount int             `json:"product_count"`
}

// InstallerResponse instalador del directorio.
type InstallerResponse struct {
	ID             string          `json:"id"`
	Name           string          `json:"name"`
	Company        string          `json:"company,omitempty"`
	Location       string          `json:"location,omitempty"`
	Certifications []string        `json:"certifications"`
	Rating         decimal.Decimal `json:"rating"`
	CompletedJobs  int             `json:"completed_jobs"`
	Verified       bool            `json:"verified"`
}

// InstallerListResponse directorio de instaladores.
type InstallerListResponse struct {
	Items []InstallerResponse `json:"items"`
	Total int                 `json:"total"`
}

// BuyerHomeResponse vista "buyer": destacados del catálogo e instaladores.
type BuyerHomeResponse struct {
	Featured   []ProductResponse   `json:"featured"`
	Installers []InstallerResponse `json:"installers"`
}
