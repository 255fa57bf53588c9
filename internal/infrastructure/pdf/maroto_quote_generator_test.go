package pdf_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/solar-marketplace-web/internal/application/ports"
	"github.com/jhoicas/solar-marketplace-web/internal/domain/payment"
	"github.com/jhoicas/solar-marketplace-web/internal/infrastructure/pdf"
	"github.com/jhoicas/solar-marketplace-web/pkg/money"
)

func TestGenerateQuotePDF(t *testing.T) {
	calc, err := payment.ComputePayment(decimal.NewFromInt(25000), payment.Installment, 36)
	require.NoError(t, err)

	g := pdf.NewMarotoQuoteGenerator("Solar Marketplace", money.NewFormatter("en-US", "$"))
	out, err := g.GenerateQuotePDF(context.Background(), ports.QuoteDocument{
		ProductName:  "Panel 400W x 20",
		CustomerName: "Ana Ruiz",
		Calculation:  calc,
		Rates:        payment.DefaultRates(),
	})
	require.NoError(t, err)
	require.NotEmpty(t, out)
	assert.Equal(t, "%PDF", string(out[:4]))
}

func TestGenerateQuotePDF_PagoCompletoSinCliente(t *testing.T) {
	calc, err := payment.ComputePayment(decimal.NewFromInt(9000), payment.Full, 0)
	require.NoError(t, err)

	out, err := pdf.NewMarotoQuoteGenerator("Solar Marketplace", nil).
		GenerateQuotePDF(context.Background(), ports.QuoteDocument{Calculation: calc, Rates: payment.DefaultRates()})
	require.NoError(t, err)
	assert.Equal(t, "%PDF", string(out[:4]))
}
