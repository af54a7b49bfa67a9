// Package format presenta montos y fechas para los documentos renderizados.
// El núcleo del libro de caja nunca formatea: trabaja con decimal.Decimal y time.Time.
package format

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// DateLayout equivale a "MMM dd, yyyy".
const DateLayout = "Jan 02, 2006"

// Formatter formatea montos con separador de miles según el idioma y el código ISO de moneda.
type Formatter struct {
	printer *message.Printer
	unit    currency.Unit
}

// New construye el formateador. Código de moneda vacío omite el prefijo.
func New(lang language.Tag, currencyCode string) (*Formatter, error) {
	f := &Formatter{printer: message.NewPrinter(lang)}
	if currencyCode != "" {
		unit, err := currency.ParseISO(currencyCode)
		if err != nil {
			return nil, fmt.Errorf("format: moneda %q: %w", currencyCode, err)
		}
		f.unit = unit
	}
	return f, nil
}

// Default inglés, moneda INR.
func Default() *Formatter {
	return &Formatter{printer: message.NewPrinter(language.English), unit: currency.INR}
}

// Money monto con dos decimales, p. ej. "INR 1,234.50". Negativos llevan "-" delante del código.
func (f *Formatter) Money(d decimal.Decimal) string {
	sign := ""
	if d.IsNegative() {
		sign = "-"
		d = d.Abs()
	}
	fixed := d.StringFixed(2)
	intPart, frac, _ := strings.Cut(fixed, ".")
	grouped := f.group(intPart)

	var b strings.Builder
	b.WriteString(sign)
	if f.unit != (currency.Unit{}) {
		b.WriteString(f.unit.String())
		b.WriteByte(' ')
	}
	b.WriteString(grouped)
	b.WriteString(".")
	b.WriteString(frac)
	return b.String()
}

// group separa miles con el printer; si la parte entera no cabe en int64 se deja tal cual.
func (f *Formatter) group(intPart string) string {
	n, err := decimal.NewFromString(intPart)
	if err != nil || !n.IsInteger() || n.GreaterThan(decimal.NewFromInt(1<<62)) {
		return intPart
	}
	return f.printer.Sprintf("%d", n.IntPart())
}

// Count entero con separador de miles.
func (f *Formatter) Count(n int) string {
	return f.printer.Sprintf("%d", n)
}

// Date fecha "MMM dd, yyyy".
func Date(t time.Time) string {
	return t.Format(DateLayout)
}
