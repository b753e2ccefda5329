package dto

import "github.com/shopspring/decimal"

// CrearFacturaRequest body para POST /api/facturas. CotizacionID vacío crea
// una factura manual (sin conciliación contra cotización).
type CrearFacturaRequest struct {
	CotizacionID   string          `json:"cotizacion_id,omitempty"`
	Numero         string          `json:"numero,omitempty"` // opcional; si va vacío se genera
	Fecha          string          `json:"fecha,omitempty"`  // YYYY-MM-DD; por defecto hoy
	ValorFacturado decimal.Decimal `json:"valor_facturado"`
}

// FacturaResponse factura en respuestas.
type FacturaResponse struct {
	ID             string          `json:"id"`
	CotizacionID   string          `json:"cotizacion_id,omitempty"`
	Numero         string          `json:"numero"`
	Fecha          string          `json:"fecha"`
	ValorFacturado decimal.Decimal `json:"valor_facturado"`
	SaldoPendiente decimal.Decimal `json:"saldo_pendiente"`
	Estado         string          `json:"estado"` // PENDIENTE | PARCIAL | PAGADA
}
