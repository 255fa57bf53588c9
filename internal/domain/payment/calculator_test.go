package payment_test

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/solar-marketplace-web/internal/domain"
	"github.com/jhoicas/solar-marketplace-web/internal/domain/payment"
)

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

// Escenario de referencia: 25.000 a 36 cuotas.
func TestComputePayment_Escenario36Cuotas(t *testing.T) {
	calc, err := payment.ComputePayment(d("25000"), payment.Installment, 36)
	require.NoError(t, err)

	assert.True(t, calc.InstallmentFee.Equal(d("7500")), "fee: %s", calc.InstallmentFee)
	assert.True(t, calc.TotalPrice.Equal(d("32500")), "total: %s", calc.TotalPrice)
	assert.True(t, calc.TaxCredit.Equal(d("7500")), "tax credit: %s", calc.TaxCredit)
	assert.True(t, calc.MonthlyPayment.Round(2).Equal(d("902.78")), "cuota: %s", calc.MonthlyPayment)
	assert.Equal(t, 36, calc.InstallmentMonths)
	assert.Equal(t, payment.Installment, calc.PaymentType)
}

func TestComputePayment_PagoCompleto(t *testing.T) {
	for _, base := range []string{"0", "1", "999.99", "25000", "1234567.89"} {
		calc, err := payment.ComputePayment(d(base), payment.Full, 12)
		require.NoError(t, err, base)

		assert.True(t, calc.TaxCredit.Equal(d(base).Mul(d("0.30"))), base)
		assert.True(t, calc.TotalPrice.Equal(d(base)), base)
		assert.True(t, calc.InstallmentFee.IsZero(), base)
		assert.True(t, calc.MonthlyPayment.IsZero(), base)
		assert.Equal(t, 0, calc.InstallmentMonths, "full siempre devuelve 0 meses")
	}
}

func TestComputePayment_CuotaMensualExacta(t *testing.T) {
	for _, base := range []string{"0", "100", "25000", "7777.77"} {
		for _, months := range []int{1, 6, 12, 24, 36, 60} {
			calc, err := payment.ComputePayment(d(base), payment.Installment, months)
			require.NoError(t, err)

			expected := d(base).Mul(d("1.30")).Div(decimal.NewFromInt(int64(months)))
			assert.True(t, calc.MonthlyPayment.Equal(expected),
				"base=%s meses=%d: %s != %s", base, months, calc.MonthlyPayment, expected)
			assert.True(t, calc.TaxCredit.Equal(d(base).Mul(d("0.30"))))
		}
	}
}

func TestComputePayment_CeroMesesEsInvalido(t *testing.T) {
	for _, base := range []string{"0", "1", "25000"} {
		_, err := payment.ComputePayment(d(base), payment.Installment, 0)
		require.Error(t, err)
		assert.True(t, errors.Is(err, domain.ErrInvalidInput))

		var inv *domain.InvalidInputError
		require.True(t, errors.As(err, &inv))
		assert.Equal(t, "installment_months", inv.Field)
	}
}

func TestComputePayment_MesesNegativos(t *testing.T) {
	_, err := payment.ComputePayment(d("100"), payment.Installment, -3)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestComputePayment_PrecioNegativo(t *testing.T) {
	_, err := payment.ComputePayment(d("-1"), payment.Full, 1)
	require.Error(t, err)

	var inv *domain.InvalidInputError
	require.True(t, errors.As(err, &inv))
	assert.Equal(t, "base_price", inv.Field)
}

func TestComputePayment_TipoDesconocido(t *testing.T) {
	_, err := payment.ComputePayment(d("100"), payment.PaymentType("lease"), 12)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestComputePayment_Idempotente(t *testing.T) {
	a, err := payment.ComputePayment(d("18450.50"), payment.Installment, 24)
	require.NoError(t, err)
	b, err := payment.ComputePayment(d("18450.50"), payment.Installment, 24)
	require.NoError(t, err)

	assert.True(t, a.BasePrice.Equal(b.BasePrice))
	assert.True(t, a.InstallmentFee.Equal(b.InstallmentFee))
	assert.True(t, a.TaxCredit.Equal(b.TaxCredit))
	assert.True(t, a.TotalPrice.Equal(b.TotalPrice))
	assert.True(t, a.MonthlyPayment.Equal(b.MonthlyPayment))
	assert.Equal(t, a.PaymentType, b.PaymentType)
	assert.Equal(t, a.InstallmentMonths, b.InstallmentMonths)
}

// Las dos tasas se configuran por separado.
func TestCalculator_TasasIndependientes(t *testing.T) {
	calc, err := payment.NewCalculator(payment.Rates{
		TaxCredit:      d("0.26"),
		InstallmentFee: d("0.10"),
	})
	require.NoError(t, err)

	res, err := calc.Compute(d("10000"), payment.Installment, 10)
	require.NoError(t, err)
	assert.True(t, res.TaxCredit.Equal(d("2600")))
	assert.True(t, res.InstallmentFee.Equal(d("1000")))
	assert.True(t, res.TotalPrice.Equal(d("11000")))
	assert.True(t, res.MonthlyPayment.Equal(d("1100")))
	assert.True(t, res.NetCost().Equal(d("8400")))
}

func TestNewCalculator_TasaNegativa(t *testing.T) {
	_, err := payment.NewCalculator(payment.Rates{TaxCredit: d("-0.1"), InstallmentFee: d("0.3")})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCalculation_Rounded(t *testing.T) {
	calc, err := payment.ComputePayment(d("25000"), payment.Installment, 36)
	require.NoError(t, err)
	r := calc.Rounded()
	assert.Equal(t, "902.78", r.MonthlyPayment.StringFixed(2))
	assert.Equal(t, "32500.00", r.TotalPrice.StringFixed(2))
}
