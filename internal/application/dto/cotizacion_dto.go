package dto

import "github.com/shopspring/decimal"

// ItemCotizacionRequest línea de cotización en la petición.
type ItemCotizacionRequest struct {
	Descripcion         string          `json:"descripcion"`
	Cantidad            decimal.Decimal `json:"cantidad"`
	ValorUnitario       decimal.Decimal `json:"valor_unitario"`
	ModoDescuento       string          `json:"modo_descuento,omitempty"` // VALOR | PORCENTAJE
	DescuentoValor      decimal.Decimal `json:"descuento_valor,omitempty"`
	DescuentoPorcentaje decimal.Decimal `json:"descuento_porcentaje,omitempty"`
	Impuesto            decimal.Decimal `json:"impuesto,omitempty"`

	AIUAdminPorcentaje      decimal.Decimal `json:"aiu_admin_porcentaje,omitempty"`
	AIUImprevistoPorcentaje decimal.Decimal `json:"aiu_imprevisto_porcentaje,omitempty"`
	AIUUtilidadPorcentaje   decimal.Decimal `json:"aiu_utilidad_porcentaje,omitempty"`
	IVAUtilidadPorcentaje   decimal.Decimal `json:"iva_utilidad_porcentaje,omitempty"`
}

// CrearCotizacionRequest body para POST /api/cotizaciones.
type CrearCotizacionRequest struct {
	ClienteID           string                  `json:"cliente_id"`
	Descripcion         string                  `json:"descripcion"`
	Items               []ItemCotizacionRequest `json:"items"`
	ModoDescuento       string                  `json:"modo_descuento,omitempty"`
	DescuentoValor      decimal.Decimal         `json:"descuento_valor,omitempty"`
	DescuentoPorcentaje decimal.Decimal         `json:"descuento_porcentaje,omitempty"`
	ImpuestoPorcentaje  decimal.Decimal         `json:"impuesto_global_porcentaje,omitempty"`

	AIUAdminPorcentaje      decimal.Decimal `json:"aiu_admin_porcentaje,omitempty"`
	AIUImprevistoPorcentaje decimal.Decimal `json:"aiu_imprevisto_porcentaje,omitempty"`
	AIUUtilidadPorcentaje   decimal.Decimal `json:"aiu_utilidad_porcentaje,omitempty"`
	IVAUtilidadPorcentaje   decimal.Decimal `json:"iva_utilidad_porcentaje,omitempty"`
}

// ActualizarCotizacionRequest body para PUT /api/cotizaciones/:id.
// Campos en nil no se tocan. Items en nil significa "no tocar los ítems";
// una lista (incluso vacía) los reemplaza completos y genera una entrada
// EDICION en el historial.
type ActualizarCotizacionRequest struct {
	Descripcion         *string                 `json:"descripcion,omitempty"`
	Items               []ItemCotizacionRequest `json:"items,omitempty"`
	ModoDescuento       *string                 `json:"modo_descuento,omitempty"`
	DescuentoValor      *decimal.Decimal        `json:"descuento_valor,omitempty"`
	DescuentoPorcentaje *decimal.Decimal        `json:"descuento_porcentaje,omitempty"`
	ImpuestoPorcentaje  *decimal.Decimal        `json:"impuesto_global_porcentaje,omitempty"`

	AIUAdminPorcentaje      *decimal.Decimal `json:"aiu_admin_porcentaje,omitempty"`
	AIUImprevistoPorcentaje *decimal.Decimal `json:"aiu_imprevisto_porcentaje,omitempty"`
	AIUUtilidadPorcentaje   *decimal.Decimal `json:"aiu_utilidad_porcentaje,omitempty"`
	IVAUtilidadPorcentaje   *decimal.Decimal `json:"iva_utilidad_porcentaje,omitempty"`

	Estado   *string `json:"estado,omitempty"`
	Progreso *int    `json:"progreso,omitempty"`
}

// ItemCotizacionResponse línea en respuestas.
type ItemCotizacionResponse struct {
	ID                  string          `json:"id"`
	Descripcion         string          `json:"descripcion"`
	Cantidad            decimal.Decimal `json:"cantidad"`
	ValorUnitario       decimal.Decimal `json:"valor_unitario"`
	ModoDescuento       string          `json:"modo_descuento,omitempty"`
	DescuentoValor      decimal.Decimal `json:"descuento_valor"`
	DescuentoPorcentaje decimal.Decimal `json:"descuento_porcentaje"`
	ValorTotal          decimal.Decimal `json:"valor_total"`
}

// HistorialResponse entrada de historial en respuestas.
type HistorialResponse struct {
	ID            string `json:"id"`
	Fecha         string `json:"fecha"`
	Tipo          string `json:"tipo"` // ESTADO | PROGRESO | EDICION
	Descripcion   string `json:"descripcion"`
	ValorAnterior string `json:"valor_anterior,omitempty"`
	ValorNuevo    string `json:"valor_nuevo,omitempty"`
}

// CotizacionResponse cotización con derivados para respuestas.
// HistorialGenerado trae solo las entradas creadas por la operación que
// respondió (vacío en lecturas).
type CotizacionResponse struct {
	ID                string                   `json:"id"`
	ClienteID         string                   `json:"cliente_id"`
	Descripcion       string                   `json:"descripcion"`
	Items             []ItemCotizacionResponse `json:"items"`
	Subtotal          decimal.Decimal          `json:"subtotal"`
	IVA               decimal.Decimal          `json:"iva"`
	AIUAdmin          decimal.Decimal          `json:"aiu_admin"`
	AIUImprevistos    decimal.Decimal          `json:"aiu_imprevistos"`
	AIUUtilidad       decimal.Decimal          `json:"aiu_utilidad"`
	IVAUtilidad       decimal.Decimal          `json:"iva_utilidad"`
	Total             decimal.Decimal          `json:"total"`
	Estado            string                   `json:"estado"`
	Progreso          int                      `json:"progreso"`
	Historial         []HistorialResponse      `json:"historial,omitempty"`
	HistorialGenerado []HistorialResponse      `json:"historial_generado,omitempty"`
}
