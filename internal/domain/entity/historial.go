package entity

import "time"

// Tipos de entrada del historial de una cotización.
const (
	HistorialEstado   = "ESTADO"   // cambio de estado del ciclo de vida
	HistorialProgreso = "PROGRESO" // cambio del porcentaje de avance
	HistorialEdicion  = "EDICION"  // los ítems fueron modificados (marcador, sin diff)
)

// Historial es un registro de auditoría append-only: lo crea únicamente el
// detector de transiciones y jamás se actualiza ni se borra.
type Historial struct {
	ID            string
	CotizacionID  string
	Fecha         time.Time
	Tipo          string
	Descripcion   string
	ValorAnterior string
	ValorNuevo    string
}
