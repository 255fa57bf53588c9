// Package pdf genera la cotización de financiación de un equipo solar.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Marketplace + título  │  Fecha + modalidad          │
//	│  ─────────────────────────────────────────────────────────  │
//	│  CLIENTE / PRODUCTO                                          │
//	│  ─────────────────────────────────────────────────────────  │
//	│  DESGLOSE: Concepto | Valor                                  │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTALES: Total / Cuota mensual / Costo neto                 │
//	│  LEYENDA: crédito tributario estimado                        │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/jhoicas/solar-marketplace-web/internal/application/ports"
	"github.com/jhoicas/solar-marketplace-web/internal/domain/payment"
	"github.com/jhoicas/solar-marketplace-web/pkg/money"
)

var _ ports.QuotePDFGenerator = (*MarotoQuoteGenerator)(nil)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 230, Green: 126, Blue: 34}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorDark    = &props.Color{Red: 33, Green: 37, Blue: 41}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoQuoteGenerator implementa ports.QuotePDFGenerator usando Maroto v2.
type MarotoQuoteGenerator struct {
	appName string
	format  *money.Formatter
	now     func() time.Time
}

// NewMarotoQuoteGenerator construye el generador.
func NewMarotoQuoteGenerator(appName string, f *money.Formatter) *MarotoQuoteGenerator {
	if f == nil {
		f = money.NewFormatter("en-US", "$")
	}
	return &MarotoQuoteGenerator{appName: appName, format: f, now: time.Now}
}

// GenerateQuotePDF genera el PDF y devuelve sus bytes.
func (g *MarotoQuoteGenerator) GenerateQuotePDF(_ context.Context, doc ports.QuoteDocument) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(12).WithRightMargin(12).
		WithTopMargin(12).WithBottomMargin(12).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Financing quote", true).
		WithAuthor(g.appName, true).
		Build()

	m := maroto.New(cfg)
	calc := doc.Calculation.Rounded()

	m.AddRows(g.headerRow(calc))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(partiesRow(doc))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	for _, r := range g.breakdownRows(calc, doc.Rates) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(g.totalsRow(doc.Calculation))
	m.AddRows(line.NewRow(3))
	m.AddRows(g.legendRow(doc.Rates))

	out, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar cotización: %w", err)
	}
	return out.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

func (g *MarotoQuoteGenerator) headerRow(calc payment.Calculation) core.Row {
	mode := "Full payment"
	if calc.PaymentType == payment.Installment {
		mode = fmt.Sprintf("Installments, %d months", calc.InstallmentMonths)
	}
	return row.New(18).Add(
		col.New(7).Add(
			text.New(g.appName, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Solar equipment financing quote", props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("Date: "+g.now().Format("2006-01-02"), props.Text{
				Size: 8, Align: align.Right, Top: 2, Color: colorGray,
			}),
			text.New(mode, props.Text{
				Style: fontstyle.Bold, Size: 10, Align: align.Right, Top: 8,
			}),
		),
	)
}

func partiesRow(doc ports.QuoteDocument) core.Row {
	return row.New(14).Add(
		col.New(6).Add(
			text.New("CUSTOMER", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(nonEmpty(doc.CustomerName, "Guest"), props.Text{
				Size: 10, Top: 6,
			}),
		),
		col.New(6).Add(
			text.New("PRODUCT", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(nonEmpty(doc.ProductName, "Solar system"), props.Text{
				Size: 10, Top: 6,
			}),
		),
	)
}

// breakdownRows: una fila por concepto del desglose.
func (g *MarotoQuoteGenerator) breakdownRows(calc payment.Calculation, rates payment.Rates) []core.Row {
	item := func(label, value string) core.Row {
		return row.New(7).Add(
			col.New(8).Add(text.New(label, props.Text{Size: 9, Top: 1, Left: 1})),
			col.New(4).Add(text.New(value, props.Text{Size: 9, Align: align.Right, Top: 1, Right: 1})),
		)
	}

	rows := []core.Row{item("Base price", g.format.Format(calc.BasePrice))}
	if calc.PaymentType == payment.Installment {
		rows = append(rows, item(
			fmt.Sprintf("Installment fee (%s)", g.format.Percent(rates.InstallmentFee)),
			g.format.Format(calc.InstallmentFee),
		))
	}
	rows = append(rows, item(
		fmt.Sprintf("Estimated tax credit (%s)", g.format.Percent(rates.TaxCredit)),
		"-"+g.format.Format(calc.TaxCredit),
	))
	return rows
}

func (g *MarotoQuoteGenerator) totalsRow(calc payment.Calculation) core.Row {
	label := func(s string) core.Component {
		return text.New(s, props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2})
	}
	value := func(s string) core.Component {
		return text.New(s, props.Text{Size: 9, Align: align.Right, Right: 1})
	}
	grand := func(s string) core.Component {
		return text.New(s, props.Text{Style: fontstyle.Bold, Size: 10, Align: align.Right, Color: colorDark, Right: 1})
	}

	r := calc.Rounded()
	monthly := "n/a"
	if calc.PaymentType == payment.Installment {
		monthly = g.format.Format(r.MonthlyPayment)
	}
	return row.New(22).Add(
		col.New(4),
		col.New(4).Add(
			label("Total price:"),
			label("Monthly payment:"),
			label("Net cost after credit:"),
		),
		col.New(4).Add(
			grand(g.format.Format(r.TotalPrice)),
			value(monthly),
			value(g.format.Format(calc.NetCost().Round(2))),
		),
	)
}

func (g *MarotoQuoteGenerator) legendRow(rates payment.Rates) core.Row {
	return row.New(10).Add(col.New(12).Add(
		text.New(
			fmt.Sprintf("The tax credit is an estimate of %s of the base price and depends on eligibility. "+
				"This quote is informative and does not constitute a financing offer.",
				g.format.Percent(rates.TaxCredit)),
			props.Text{Size: 7, Color: colorGray, Top: 2},
		),
	))
}

// ── helpers ───────────────────────────────────────────────────────────────────

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}
