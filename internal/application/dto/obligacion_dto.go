package dto

import "github.com/shopspring/decimal"

// CrearObligacionRequest body para POST /api/obligaciones.
// TasaInteres es la tasa periódica como fracción (0.02 = 2% mensual).
type CrearObligacionRequest struct {
	Entidad       string          `json:"entidad"`
	Descripcion   string          `json:"descripcion,omitempty"`
	MontoPrestado decimal.Decimal `json:"monto_prestado"`
	TasaInteres   decimal.Decimal `json:"tasa_interes"`
	PlazoMeses    int             `json:"plazo_meses"`
	FechaInicio   string          `json:"fecha_inicio"` // YYYY-MM-DD
}

// RegistrarPagoRequest body para POST /api/obligaciones/:id/pagos.
// Interes y Capital son opcionales: si no vienen, el interés se deriva del
// saldo vigente por la tasa periódica y el capital es el resto del valor.
type RegistrarPagoRequest struct {
	Fecha   string           `json:"fecha,omitempty"` // YYYY-MM-DD; por defecto hoy
	Valor   decimal.Decimal  `json:"valor"`
	Interes *decimal.Decimal `json:"interes,omitempty"`
	Capital *decimal.Decimal `json:"capital,omitempty"`
}

// PagoResponse pago registrado en respuestas.
type PagoResponse struct {
	ID            string          `json:"id"`
	Fecha         string          `json:"fecha"`
	Valor         decimal.Decimal `json:"valor"`
	Interes       decimal.Decimal `json:"interes"`
	Capital       decimal.Decimal `json:"capital"`
	SaldoRestante decimal.Decimal `json:"saldo_restante"`
}

// ObligacionResponse obligación con sus pagos.
type ObligacionResponse struct {
	ID            string          `json:"id"`
	Entidad       string          `json:"entidad"`
	Descripcion   string          `json:"descripcion,omitempty"`
	MontoPrestado decimal.Decimal `json:"monto_prestado"`
	TasaInteres   decimal.Decimal `json:"tasa_interes"`
	PlazoMeses    int             `json:"plazo_meses"`
	FechaInicio   string          `json:"fecha_inicio"`
	SaldoCapital  decimal.Decimal `json:"saldo_capital"`
	Pagos         []PagoResponse  `json:"pagos"`
}

// CuotaResponse fila de la tabla de amortización.
type CuotaResponse struct {
	Periodo int             `json:"periodo"`
	Fecha   string          `json:"fecha"`
	Cuota   decimal.Decimal `json:"cuota"`
	Interes decimal.Decimal `json:"interes"`
	Capital decimal.Decimal `json:"capital"`
	Saldo   decimal.Decimal `json:"saldo"`
	EsReal  bool            `json:"es_real"`
}

// TablaAmortizacionResponse respuesta de GET /api/obligaciones/:id/amortizacion.
type TablaAmortizacionResponse struct {
	ObligacionID string          `json:"obligacion_id"`
	Cuotas       []CuotaResponse `json:"cuotas"`
}
