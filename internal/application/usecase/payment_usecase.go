package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/solar-marketplace-web/internal/application/dto"
	"github.com/jhoicas/solar-marketplace-web/internal/application/ports"
	"github.com/jhoicas/solar-marketplace-web/internal/domain"
	"github.com/jhoicas/solar-marketplace-web/internal/domain/entity"
	"github.com/jhoicas/solar-marketplace-web/internal/domain/payment"
	"github.com/jhoicas/solar-marketplace-web/pkg/money"
)

// PaymentUseCase calculadora de pagos y cotización en PDF. Es la única vía por la que
// las vistas (tarjetas de producto, dashboards) obtienen términos de financiación.
type PaymentUseCase struct {
	calc          *payment.Calculator
	format        *money.Formatter
	pdf           ports.QuotePDFGenerator
	defaultMonths int
}

// NewPaymentUseCase construye el caso de uso.
func NewPaymentUseCase(calc *payment.Calculator, f *money.Formatter, pdf ports.QuotePDFGenerator, defaultMonths int) *PaymentUseCase {
	return &PaymentUseCase{calc: calc, format: f, pdf: pdf, defaultMonths: defaultMonths}
}

// DefaultMonths plazo por defecto de las vistas previas de financiación.
func (uc *PaymentUseCase) DefaultMonths() int { return uc.defaultMonths }

// Calculate valida la entrada y devuelve el desglose.
func (uc *PaymentUseCase) Calculate(in dto.CalculatorRequest) (*dto.PaymentCalculationResponse, error) {
	calc, err := uc.compute(in)
	if err != nil {
		return nil, err
	}
	out := uc.toResponse(calc)
	return &out, nil
}

// Plans calcula pago completo y plan a cuotas (plazo por defecto) para un precio.
func (uc *PaymentUseCase) Plans(price decimal.Decimal) (full, installment dto.PaymentCalculationResponse, err error) {
	f, err := uc.calc.Compute(price, payment.Full, 0)
	if err != nil {
		return full, installment, err
	}
	i, err := uc.calc.Compute(price, payment.Installment, uc.defaultMonths)
	if err != nil {
		return full, installment, err
	}
	return uc.toResponse(f), uc.toResponse(i), nil
}

// Preview resumen de financiación para una tarjeta de producto. Un precio inválido
// (negativo) deja la vista previa vacía: la tarjeta se muestra igual.
func (uc *PaymentUseCase) Preview(price decimal.Decimal) dto.FinancingPreview {
	calc, err := uc.calc.Compute(price, payment.Installment, uc.defaultMonths)
	if err != nil {
		return dto.FinancingPreview{}
	}
	r := calc.Rounded()
	return dto.FinancingPreview{
		TaxCredit:         r.TaxCredit,
		NetCost:           calc.NetCost().Round(2),
		MonthlyPayment:    r.MonthlyPayment,
		InstallmentMonths: r.InstallmentMonths,
		MonthlyLabel:      fmt.Sprintf("%s/mo for %d months", uc.format.Format(r.MonthlyPayment), r.InstallmentMonths),
	}
}

// QuotePDF genera la cotización de financiación en PDF.
func (uc *PaymentUseCase) QuotePDF(ctx context.Context, s *entity.Session, in dto.CalculatorRequest) ([]byte, string, error) {
	calc, err := uc.compute(in)
	if err != nil {
		return nil, "", err
	}
	doc := ports.QuoteDocument{
		ProductName: strings.TrimSpace(in.ProductName),
		Calculation: calc,
		Rates:       uc.calc.Rates(),
	}
	if s != nil {
		doc.CustomerName = s.DisplayName
	}
	pdfBytes, err := uc.pdf.GenerateQuotePDF(ctx, doc)
	if err != nil {
		return nil, "", fmt.Errorf("cotización: %w", err)
	}
	filename := fmt.Sprintf("quote-%s-%s.pdf", calc.PaymentType, calc.BasePrice.StringFixed(0))
	return pdfBytes, filename, nil
}

func (uc *PaymentUseCase) compute(in dto.CalculatorRequest) (payment.Calculation, error) {
	base, err := decimal.NewFromString(strings.TrimSpace(in.BasePrice))
	if err != nil {
		return payment.Calculation{}, domain.NewInvalidInput("base_price", "debe ser un número")
	}
	return uc.calc.Compute(base, payment.PaymentType(in.PaymentType), in.Months)
}

func (uc *PaymentUseCase) toResponse(calc payment.Calculation) dto.PaymentCalculationResponse {
	r := calc.Rounded()
	rates := uc.calc.Rates()
	return dto.PaymentCalculationResponse{
		BasePrice:         r.BasePrice,
		InstallmentFee:    r.InstallmentFee,
		TaxCredit:         r.TaxCredit,
		TotalPrice:        r.TotalPrice,
		MonthlyPayment:    r.MonthlyPayment,
		NetCost:           calc.NetCost().Round(2),
		PaymentType:       string(calc.PaymentType),
		InstallmentMonths: calc.InstallmentMonths,
		Labels: dto.PaymentLabels{
			BasePrice:          uc.format.Format(r.BasePrice),
			InstallmentFee:     uc.format.Format(r.InstallmentFee),
			TaxCredit:          uc.format.Format(r.TaxCredit),
			TotalPrice:         uc.format.Format(r.TotalPrice),
			MonthlyPayment:     uc.format.Format(r.MonthlyPayment),
			NetCost:            uc.format.Format(calc.NetCost()),
			TaxCreditRate:      uc.format.Percent(rates.TaxCredit),
			InstallmentFeeRate: uc.format.Percent(rates.InstallmentFee),
		},
	}
}
