package dto

import "github.com/shopspring/decimal"

// CalculatorRequest entrada de la calculadora (query string).
type CalculatorRequest struct {
	BasePrice   string `query:"base_price" validate:"required,numeric"`
	PaymentType string `query:"payment_type" validate:"required,oneof=full installment"`
	Months      int    `query:"months" validate:"omitempty,min=0,max=360"`
	ProductName string `query:"product_name" validate:"omitempty,max=200"`
}

// PaymentCalculationResponse desglose de un plan de pago.
type PaymentCalculationResponse struct {
	BasePrice         decimal.Decimal `json:"base_price"`
	InstallmentFee    decimal.Decimal `json:"installment_fee"`
	TaxCredit         decimal.Decimal `json:"tax_credit"`
	TotalPrice        decimal.Decimal `json:"total_price"`
	MonthlyPayment    decimal.Decimal `json:"monthly_payment"`
	NetCost           decimal.Decimal `json:"net_cost"`
	PaymentType       string          `json:"payment_type"`
	InstallmentMonths int             `json:"installment_months"`
	Labels            PaymentLabels   `json:"labels"`
}

// PaymentLabels montos ya formateados para mostrar.
type PaymentLabels struct {
	BasePrice          string `json:"base_price"`
	InstallmentFee     string `json:"installment_fee"`
	TaxCredit          string `json:"tax_credit"`
	TotalPrice         string `json:"total_price"`
	MonthlyPayment     string `json:"monthly_payment"`
	NetCost            string `json:"net_cost"`
	TaxCreditRate      string `json:"tax_credit_rate"`
	InstallmentFeeRate string `json:"installment_fee_rate"`
}
