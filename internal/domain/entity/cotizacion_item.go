package entity

import "github.com/shopspring/decimal"

// CotizacionItem es una línea de la cotización. ValorTotal es derivado:
// round2(cantidad*valorUnitario - descuento).
type CotizacionItem struct {
	ID            string
	CotizacionID  string
	Posicion      int // orden de inserción = orden de impresión
	Descripcion   string
	Cantidad      decimal.Decimal
	ValorUnitario decimal.Decimal

	// Descuento por línea; misma regla de precedencia que el global.
	ModoDescuento       string
	DescuentoValor      decimal.Decimal
	DescuentoPorcentaje decimal.Decimal

	Impuesto decimal.Decimal // % IVA de la línea (informativo; el IVA se liquida global)

	// AIU por línea (obra pública). Opcionales, cero si no aplican.
	AIUAdminPorcentaje      decimal.Decimal
	AIUImprevistoPorcentaje decimal.Decimal
	AIUUtilidadPorcentaje   decimal.Decimal
	IVAUtilidadPorcentaje   decimal.Decimal

	ValorTotal decimal.Decimal
}
