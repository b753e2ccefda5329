// Package auditoria detecta transiciones de estado y progreso en una
// cotización y las convierte en entradas de historial inmutables. Emisión
// explícita de eventos: el detector retorna las entradas y el caso de uso
// las persiste junto con la entidad, en la misma transacción.
package auditoria

import (
	"strconv"
	"time"

	"github.com/tu-usuario/gestion-pro/internal/domain/entity"
)

// Detectar compara el estado persistido contra el entrante y produce una
// entrada por cada dimensión que cambió: una ESTADO, una PROGRESO y, si los
// ítems fueron tocados, una EDICION (marcador sin diff). Nunca agrupa varios
// cambios en un solo registro. Sin cambios, no emite nada (no-op idempotente).
func Detectar(anterior, nueva *entity.Cotizacion, itemsModificados bool, fecha time.Time) []entity.Historial {
	var entradas []entity.Historial

	if anterior.Estado != nueva.Estado {
		entradas = append(entradas, entity.Historial{
			CotizacionID:  anterior.ID,
			Fecha:         fecha,
			Tipo:          entity.HistorialEstado,
			Descripcion:   "cambio de estado",
			ValorAnterior: anterior.Estado,
			ValorNuevo:    nueva.Estado,
		})
	}
	if anterior.Progreso != nueva.Progreso {
		entradas = append(entradas, entity.Historial{
			CotizacionID:  anterior.ID,
			Fecha:         fecha,
			Tipo:          entity.HistorialProgreso,
			Descripcion:   "cambio de progreso",
			ValorAnterior: strconv.Itoa(anterior.Progreso),
			ValorNuevo:    strconv.Itoa(nueva.Progreso),
		})
	}
	if itemsModificados {
		entradas = append(entradas, entity.Historial{
			CotizacionID: anterior.ID,
			Fecha:        fecha,
			Tipo:         entity.HistorialEdicion,
			Descripcion:  "ítems de la cotización modificados",
		})
	}
	return entradas
}
