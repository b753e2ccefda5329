// Package money centraliza el redondeo monetario del núcleo financiero.
// Todo campo monetario derivado pasa por Round2 exactamente una vez en el
// punto de derivación: nunca dos veces (acumula error) ni cero veces
// (descuadra sumas y comparaciones).
package money

import "github.com/shopspring/decimal"

// Cien para aplicar porcentajes expresados como números planos (19 = 19%).
var cien = decimal.NewFromInt(100)

// Round2 redondea a 2 decimales (half-up). El valor cero de decimal.Decimal
// es 0, así que un campo ausente redondea a 0 sin caso especial.
func Round2(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}

// Porcentaje aplica pct (número plano: 19 significa 19%) sobre base y
// redondea una sola vez: round2(base * pct / 100).
func Porcentaje(base, pct decimal.Decimal) decimal.Decimal {
	return base.Mul(pct).Div(cien).Round(2)
}
