package ports

import (
	"context"

	"github.com/jhoicas/solar-marketplace-web/internal/domain/payment"
)

// QuoteDocument datos de la cotización de financiación a imprimir.
type QuoteDocument struct {
	ProductName  string
	CustomerName string
	Calculation  payment.Calculation
	Rates        payment.Rates
}

// QuotePDFGenerator puerto de salida que genera el PDF de la cotización.
type QuotePDFGenerator interface {
	GenerateQuotePDF(ctx context.Context, doc QuoteDocument) ([]byte, error)
}
