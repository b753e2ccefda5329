package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de pago de una factura.
const (
	FacturaPendiente = "PENDIENTE" // Sin pagos aplicados
	FacturaParcial   = "PARCIAL"   // Pagos aplicados por menos del valor facturado
	FacturaPagada    = "PAGADA"    // Saldo pendiente en cero
)

// Factura referencia a lo sumo una cotización (CotizacionID vacío = factura
// manual). Invariante: la suma de ValorFacturado de todas las facturas de una
// cotización nunca supera el Total de la cotización (lo garantiza el
// conciliador antes de cada escritura).
type Factura struct {
	ID             string
	CotizacionID   string // vacío para facturas manuales
	Numero         string
	Fecha          time.Time
	ValorFacturado decimal.Decimal
	SaldoPendiente decimal.Decimal // ValorFacturado - pagos aplicados
	Estado         string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
