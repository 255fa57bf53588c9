// Package payment calcula el desglose de precio de un plan de pago: crédito
// fiscal, cargo de financiación y cuota mensual. Sin efectos secundarios.
package payment

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/solar-marketplace-web/internal/domain"
)

// PaymentType modalidad de pago.
type PaymentType string

const (
	Full        PaymentType = "full"
	Installment PaymentType = "installment"
)

// Rates tasas de la calculadora. Son políticas independientes aunque hoy coincidan.
type Rates struct {
	TaxCredit      decimal.Decimal // crédito fiscal federal sobre el precio base
	InstallmentFee decimal.Decimal // cargo de financiación del plan a cuotas
}

// DefaultRates 30% de crédito fiscal y 30% de cargo de financiación.
func DefaultRates() Rates {
	return Rates{
		TaxCredit:      decimal.RequireFromString("0.30"),
		InstallmentFee: decimal.RequireFromString("0.30"),
	}
}

// Calculation desglose de un plan de pago. Estado transitorio, nunca se persiste.
type Calculation struct {
	BasePrice         decimal.Decimal
	InstallmentFee    decimal.Decimal
	TaxCredit         decimal.Decimal
	TotalPrice        decimal.Decimal
	MonthlyPayment    decimal.Decimal
	PaymentType       PaymentType
	InstallmentMonths int
}

// Rounded copia con los montos redondeados a centavos, para mostrar.
func (c Calculation) Rounded() Calculation {
	c.BasePrice = c.BasePrice.Round(2)
	c.InstallmentFee = c.InstallmentFee.Round(2)
	c.TaxCredit = c.TaxCredit.Round(2)
	c.TotalPrice = c.TotalPrice.Round(2)
	c.MonthlyPayment = c.MonthlyPayment.Round(2)
	return c
}

// NetCost precio total menos el crédito fiscal.
func (c Calculation) NetCost() decimal.Decimal {
	return c.TotalPrice.Sub(c.TaxCredit)
}

// Calculator aplica un juego de tasas configurado.
type Calculator struct {
	rates Rates
}

// NewCalculator valida las tasas y construye la calculadora.
func NewCalculator(rates Rates) (*Calculator, error) {
	if rates.TaxCredit.IsNegative() {
		return nil, domain.NewInvalidInput("tax_credit_rate", "no puede ser negativa")
	}
	if rates.InstallmentFee.IsNegative() {
		return nil, domain.NewInvalidInput("installment_fee_rate", "no puede ser negativa")
	}
	return &Calculator{rates: rates}, nil
}

// Rates devuelve las tasas en uso.
func (c *Calculator) Rates() Rates { return c.rates }

// ComputePayment calcula con las tasas por defecto.
func ComputePayment(basePrice decimal.Decimal, paymentType PaymentType, installmentMonths int) (Calculation, error) {
	return (&Calculator{rates: DefaultRates()}).Compute(basePrice, paymentType, installmentMonths)
}

// Compute calcula el desglose:
//
//	TaxCredit      = BasePrice * TaxCreditRate (siempre)
//	full:        InstallmentFee = 0, TotalPrice = BasePrice, MonthlyPayment = 0, meses = 0
//	installment: InstallmentFee = BasePrice * InstallmentFeeRate, TotalPrice = BasePrice + fee,
//	             MonthlyPayment = TotalPrice / meses
//
// Devuelve *domain.InvalidInputError si el precio es negativo, el tipo es desconocido
// o los meses no son positivos en un plan a cuotas.
func (c *Calculator) Compute(basePrice decimal.Decimal, paymentType PaymentType, installmentMonths int) (Calculation, error) {
	if basePrice.IsNegative() {
		return Calculation{}, domain.NewInvalidInput("base_price", "debe ser mayor o igual a 0")
	}
	taxCredit := basePrice.Mul(c.rates.TaxCredit)

	switch paymentType {
	case Full:
		return Calculation{
			BasePrice:         basePrice,
			InstallmentFee:    decimal.Zero,
			TaxCredit:         taxCredit,
			TotalPrice:        basePrice,
			MonthlyPayment:    decimal.Zero,
			PaymentType:       Full,
			InstallmentMonths: 0,
		}, nil
	case Installment:
		if installmentMonths <= 0 {
			return Calculation{}, domain.NewInvalidInput("installment_months", "debe ser un entero positivo")
		}
		fee := basePrice.Mul(c.rates.InstallmentFee)
		total := basePrice.Add(fee)
		return Calculation{
			BasePrice:         basePrice,
			InstallmentFee:    fee,
			TaxCredit:         taxCredit,
			TotalPrice:        total,
			MonthlyPayment:    total.Div(decimal.NewFromInt(int64(installmentMonths))),
			PaymentType:       Installment,
			InstallmentMonths: installmentMonths,
		}, nil
	default:
		return Calculation{}, domain.NewInvalidInput("payment_type", "debe ser full o installment")
	}
}
