// Package money formatea montos para mostrarlos según el locale configurado.
package money

import (
	"strings"
	"unicode"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Formatter imprime montos con separadores del locale y dos decimales.
type Formatter struct {
	printer *message.Printer
	symbol  string
	group   string
	decimal string
}

// NewFormatter construye el formatter. Un locale inválido cae a en-US.
func NewFormatter(locale, symbol string) *Formatter {
	tag, err := language.Parse(locale)
	if err != nil {
		tag = language.AmericanEnglish
	}
	p := message.NewPrinter(tag)
	group, dec := separators(p)
	return &Formatter{printer: p, symbol: symbol, group: group, decimal: dec}
}

// Format ej. 32500 → "$32,500.00" en en-US. Trabaja sobre el texto del decimal,
// sin pasar por float64.
func (f *Formatter) Format(amount decimal.Decimal) string {
	digits := amount.StringFixed(2)
	sign := ""
	if strings.HasPrefix(digits, "-") {
		sign = "-"
		digits = digits[1:]
	}
	intPart, frac, _ := strings.Cut(digits, ".")
	return sign + f.symbol + groupDigits(intPart, f.group) + f.decimal + frac
}

// separators obtiene el separador de miles y el decimal del locale imprimiendo una muestra.
func separators(p *message.Printer) (group, dec string) {
	sample := []rune(p.Sprint(number.Decimal(1234567.5, number.Scale(1))))
	dec = "."
	if len(sample) >= 3 {
		dec = string(sample[len(sample)-2])
	}
	if len(sample) >= 2 && !unicode.IsDigit(sample[1]) {
		group = string(sample[1])
	}
	return group, dec
}

func groupDigits(s, sep string) string {
	if sep == "" || len(s) <= 3 {
		return s
	}
	var b strings.Builder
	head := len(s) % 3
	if head > 0 {
		b.WriteString(s[:head])
	}
	for i := head; i < len(s); i += 3 {
		if b.Len() > 0 {
			b.WriteString(sep)
		}
		b.WriteString(s[i : i+3])
	}
	return b.String()
}

// Percent ej. 0.30 → "30%".
func (f *Formatter) Percent(rate decimal.Decimal) string {
	return f.printer.Sprint(number.Decimal(rate.Mul(decimal.NewFromInt(100)).Round(2).InexactFloat64(), number.MaxFractionDigits(2))) + "%"
}
