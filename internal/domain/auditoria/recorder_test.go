package auditoria_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tu-usuario/gestion-pro/internal/domain/auditoria"
	"github.com/tu-usuario/gestion-pro/internal/domain/entity"
)

var ahora = time.Date(2024, 3, 10, 15, 4, 5, 0, time.UTC)

func base() *entity.Cotizacion {
	return &entity.Cotizacion{
		ID:       "cot-1",
		Estado:   entity.EstadoBorrador,
		Progreso: 0,
	}
}

func TestDetectar_CambioDeEstado(t *testing.T) {
	anterior := base()
	nueva := base()
	nueva.Estado = entity.EstadoEnviada

	entradas := auditoria.Detectar(anterior, nueva, false, ahora)

	require.Len(t, entradas, 1, "un cambio de estado produce exactamente una entrada")
	e := entradas[0]
	assert.Equal(t, entity.HistorialEstado, e.Tipo)
	assert.Equal(t, "cot-1", e.CotizacionID)
	assert.Equal(t, entity.EstadoBorrador, e.ValorAnterior)
	assert.Equal(t, entity.EstadoEnviada, e.ValorNuevo)
	assert.Equal(t, ahora, e.Fecha)
}

func TestDetectar_CambioDeProgreso(t *testing.T) {
	anterior := base()
	anterior.Progreso = 20
	nueva := base()
	nueva.Progreso = 75

	entradas := auditoria.Detectar(anterior, nueva, false, ahora)

	require.Len(t, entradas, 1)
	e := entradas[0]
	assert.Equal(t, entity.HistorialProgreso, e.Tipo)
	assert.Equal(t, "20", e.ValorAnterior, "el progreso se registra como texto")
	assert.Equal(t, "75", e.ValorNuevo)
}

func TestDetectar_EdicionDeItems_MarcadorSinDiff(t *testing.T) {
	entradas := auditoria.Detectar(base(), base(), true, ahora)

	require.Len(t, entradas, 1)
	e := entradas[0]
	assert.Equal(t, entity.HistorialEdicion, e.Tipo)
	assert.Empty(t, e.ValorAnterior, "la edición de ítems es un marcador, sin valores")
	assert.Empty(t, e.ValorNuevo)
}

// Cada dimensión que cambia produce su propia entrada, nunca una combinada.
func TestDetectar_VariosCambios_EntradasSeparadas(t *testing.T) {
	anterior := base()
	nueva := base()
	nueva.Estado = entity.EstadoAprobada
	nueva.Progreso = 10

	entradas := auditoria.Detectar(anterior, nueva, true, ahora)

	require.Len(t, entradas, 3, "estado + progreso + edición = tres entradas")
	assert.Equal(t, entity.HistorialEstado, entradas[0].Tipo)
	assert.Equal(t, entity.HistorialProgreso, entradas[1].Tipo)
	assert.Equal(t, entity.HistorialEdicion, entradas[2].Tipo)
}

// Guardar sin cambiar nada no debe ensuciar el historial.
func TestDetectar_SinCambios_NoEmiteNada(t *testing.T) {
	entradas := auditoria.Detectar(base(), base(), false, ahora)
	assert.Empty(t, entradas, "un guardado idéntico es un no-op para el historial")
}

func TestDetectar_MismoEstadoDistintoProgreso(t *testing.T) {
	anterior := base()
	anterior.Estado = entity.EstadoEnEjecucion
	anterior.Progreso = 40
	nueva := base()
	nueva.Estado = entity.EstadoEnEjecucion
	nueva.Progreso = 60

	entradas := auditoria.Detectar(anterior, nueva, false, ahora)

	require.Len(t, entradas, 1, "estado sin cambio no genera entrada ESTADO")
	assert.Equal(t, entity.HistorialProgreso, entradas[0].Tipo)
}
