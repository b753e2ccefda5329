package money

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Impresora con separadores de miles colombianos para mensajes al usuario.
var printerCOP = message.NewPrinter(language.MustParse("es-CO"))

// FormatCOP formatea un monto en pesos para mensajes de error y logs:
// $1.234.567,89. Solo presentación; los cálculos siempre usan decimal.
func FormatCOP(d decimal.Decimal) string {
	f, _ := d.Round(2).Float64()
	return printerCOP.Sprintf("$%.2f", f)
}
