package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados del ciclo de vida de una cotización.
const (
	EstadoBorrador    = "BORRADOR"     // Recién creada, editable sin restricciones
	EstadoEnviada     = "ENVIADA"      // Enviada al cliente
	EstadoEnRevision  = "EN_REVISION"  // El cliente pidió ajustes
	EstadoPendiente   = "PENDIENTE"    // A la espera de decisión del cliente
	EstadoAprobada    = "APROBADA"     // Aceptada; puede facturarse
	EstadoNoAprobada  = "NO_APROBADA"  // Declinada por el cliente
	EstadoEnEjecucion = "EN_EJECUCION" // Obra o servicio en curso
	EstadoFinalizada  = "FINALIZADA"   // Trabajo terminado
	EstadoRechazada   = "RECHAZADA"    // Anulada internamente
)

// EstadosCotizacion lista los estados válidos (validación de entrada).
var EstadosCotizacion = []string{
	EstadoBorrador, EstadoEnviada, EstadoEnRevision, EstadoPendiente,
	EstadoAprobada, EstadoNoAprobada, EstadoEnEjecucion, EstadoFinalizada,
	EstadoRechazada,
}

// EsEstadoValido verifica que el estado pertenezca al ciclo de vida.
func EsEstadoValido(estado string) bool {
	for _, e := range EstadosCotizacion {
		if e == estado {
			return true
		}
	}
	return false
}

// Modos de descuento. El modo vacío se infiere: un DescuentoValor distinto de
// cero gana sobre el porcentaje (los payloads antiguos no traían modo).
const (
	DescuentoPorValor      = "VALOR"
	DescuentoPorPorcentaje = "PORCENTAJE"
)

// Cotizacion es una propuesta de precios enviada a un cliente. Los campos
// derivados (Subtotal, IVA, AIU, Total) son caché: siempre recalculables a
// partir de los ítems y porcentajes, nunca segunda fuente de verdad.
type Cotizacion struct {
	ID          string
	ClienteID   string
	Descripcion string
	Items       []CotizacionItem // orden de inserción = orden de impresión

	// Descuento global sobre el subtotal.
	ModoDescuento       string
	DescuentoValor      decimal.Decimal
	DescuentoPorcentaje decimal.Decimal

	// Porcentajes globales (19 significa 19%).
	ImpuestoPorcentaje      decimal.Decimal
	AIUAdminPorcentaje      decimal.Decimal
	AIUImprevistoPorcentaje decimal.Decimal
	AIUUtilidadPorcentaje   decimal.Decimal
	IVAUtilidadPorcentaje   decimal.Decimal

	// Derivados por el calculador de precios.
	Subtotal       decimal.Decimal
	IVA            decimal.Decimal
	AIUAdmin       decimal.Decimal
	AIUImprevistos decimal.Decimal
	AIUUtilidad    decimal.Decimal
	IVAUtilidad    decimal.Decimal
	Total          decimal.Decimal

	Estado   string
	Progreso int // 0..100, avance de ejecución

	CreatedAt time.Time
	UpdatedAt time.Time
}
