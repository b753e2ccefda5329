package amortizacion_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tu-usuario/gestion-pro/internal/domain"
	"github.com/tu-usuario/gestion-pro/internal/domain/amortizacion"
	"github.com/tu-usuario/gestion-pro/internal/domain/entity"
)

var fechaInicio = time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)

// ──────────────────────────────────────────────────────────────────────────────
// Proyección pura (sin pagos reales)
// ──────────────────────────────────────────────────────────────────────────────

func TestTabla_ProyeccionCompleta(t *testing.T) {
	principal := decimal.NewFromInt(1_000_000)
	tasa := decimal.RequireFromString("0.02") // 2% mensual

	filas, err := amortizacion.Tabla(principal, tasa, 12, fechaInicio, nil)
	require.NoError(t, err)
	require.Len(t, filas, 12, "un crédito a 12 meses sin pagos proyecta 12 cuotas")

	// Primera fila: interés exacto sobre el principal completo.
	assert.True(t, decimal.NewFromInt(20_000).Equal(filas[0].Interes),
		"interés del periodo 1 debe ser 2%% de 1000000, fue %s", filas[0].Interes)
	assert.False(t, filas[0].EsReal, "una fila proyectada no es real")
	assert.Equal(t, 1, filas[0].Periodo)

	// Última fila: la tabla termina exactamente en cero.
	ultima := filas[len(filas)-1]
	assert.True(t, ultima.Saldo.IsZero(),
		"el saldo final debe ser exactamente 0, fue %s", ultima.Saldo)

	// La suma de capitales reconstituye el principal sin residuo.
	sumaCapital := decimal.Zero
	for _, f := range filas {
		sumaCapital = sumaCapital.Add(f.Capital)
	}
	assert.True(t, principal.Equal(sumaCapital),
		"Σ capital debe ser el principal exacto, fue %s", sumaCapital)

	// El saldo nunca crece.
	saldoPrevio := principal
	for _, f := range filas {
		assert.True(t, f.Saldo.LessThanOrEqual(saldoPrevio),
			"el saldo del periodo %d no puede crecer", f.Periodo)
		saldoPrevio = f.Saldo
	}
}

func TestTabla_FechasMensualesDesdeInicio(t *testing.T) {
	filas, err := amortizacion.Tabla(
		decimal.NewFromInt(300_000), decimal.RequireFromString("0.015"), 3, fechaInicio, nil)
	require.NoError(t, err)
	require.Len(t, filas, 3)

	assert.Equal(t, fechaInicio.AddDate(0, 1, 0), filas[0].Fecha, "cuota 1 vence un mes después del inicio")
	assert.Equal(t, fechaInicio.AddDate(0, 2, 0), filas[1].Fecha)
	assert.Equal(t, fechaInicio.AddDate(0, 3, 0), filas[2].Fecha)
}

func TestTabla_TasaCero_CuotasIguales(t *testing.T) {
	filas, err := amortizacion.Tabla(
		decimal.NewFromInt(1_200), decimal.Zero, 12, fechaInicio, nil)
	require.NoError(t, err)
	require.Len(t, filas, 12)

	for _, f := range filas {
		assert.True(t, f.Interes.IsZero(), "con tasa cero no hay interés")
		assert.True(t, decimal.NewFromInt(100).Equal(f.Capital),
			"con tasa cero el capital se reparte en partes iguales, fue %s", f.Capital)
	}
	assert.True(t, filas[11].Saldo.IsZero())
}

// ──────────────────────────────────────────────────────────────────────────────
// Pagos reales
// ──────────────────────────────────────────────────────────────────────────────

func pagoReal(fecha time.Time, valor, interes, capital, saldo string) entity.Pago {
	return entity.Pago{
		Fecha:         fecha,
		Valor:         decimal.RequireFromString(valor),
		Interes:       decimal.RequireFromString(interes),
		Capital:       decimal.RequireFromString(capital),
		SaldoRestante: decimal.RequireFromString(saldo),
	}
}

// Los pagos registrados se copian tal cual, aunque sus cifras no coincidan
// con la cuota teórica: son el registro contable, no una proyección.
func TestTabla_PagosRealesTextuales(t *testing.T) {
	fechaPago := time.Date(2024, 2, 20, 0, 0, 0, 0, time.UTC)
	pagos := []entity.Pago{
		pagoReal(fechaPago, "123456.78", "20000.00", "103456.78", "896543.22"),
	}

	filas, err := amortizacion.Tabla(
		decimal.NewFromInt(1_000_000), decimal.RequireFromString("0.02"), 12, fechaInicio, pagos)
	require.NoError(t, err)
	require.NotEmpty(t, filas)

	real := filas[0]
	assert.True(t, real.EsReal, "el pago registrado debe marcarse como real")
	assert.Equal(t, fechaPago, real.Fecha, "la fecha del pago se conserva, sin aritmética mensual")
	assert.True(t, decimal.RequireFromString("123456.78").Equal(real.Cuota))
	assert.True(t, decimal.RequireFromString("20000.00").Equal(real.Interes))
	assert.True(t, decimal.RequireFromString("103456.78").Equal(real.Capital))
	assert.True(t, decimal.RequireFromString("896543.22").Equal(real.Saldo))

	// La proyección continúa desde el saldo que dejó el pago real.
	require.Greater(t, len(filas), 1)
	proyectada := filas[1]
	assert.False(t, proyectada.EsReal)
	assert.Equal(t, 2, proyectada.Periodo)
	assert.True(t, decimal.RequireFromString("17930.86").Equal(proyectada.Interes),
		"interés del periodo 2 = 2%% del saldo real restante, fue %s", proyectada.Interes)
}

func TestTabla_PagosLiquidanTodo_SinFilasExtra(t *testing.T) {
	pagos := []entity.Pago{
		pagoReal(fechaInicio.AddDate(0, 1, 0), "510000", "10000", "500000", "500000"),
		pagoReal(fechaInicio.AddDate(0, 2, 0), "505000", "5000", "500000", "0"),
	}
	filas, err := amortizacion.Tabla(
		decimal.NewFromInt(1_000_000), decimal.RequireFromString("0.01"), 12, fechaInicio, pagos)
	require.NoError(t, err)

	require.Len(t, filas, 2, "saldo en cero tras los pagos reales: sin proyección adicional")
	assert.True(t, filas[0].EsReal)
	assert.True(t, filas[1].EsReal)
	assert.True(t, filas[1].Saldo.IsZero())
}

// Los pagos consumieron todo el plazo pero quedó saldo: la tabla se extiende
// un periodo para liquidarlo.
func TestTabla_PlazoAgotadoConSaldo_ExtiendeUnPeriodo(t *testing.T) {
	pagos := []entity.Pago{
		pagoReal(fechaInicio.AddDate(0, 1, 0), "40000", "10000", "30000", "970000"),
		pagoReal(fechaInicio.AddDate(0, 2, 0), "40000", "9700", "30300", "939700"),
		pagoReal(fechaInicio.AddDate(0, 3, 0), "40000", "9397", "30603", "909097"),
	}
	filas, err := amortizacion.Tabla(
		decimal.NewFromInt(1_000_000), decimal.RequireFromString("0.01"), 3, fechaInicio, pagos)
	require.NoError(t, err)

	require.Len(t, filas, 4, "3 pagos reales + 1 periodo extra de liquidación")
	extra := filas[3]
	assert.False(t, extra.EsReal)
	assert.Equal(t, 4, extra.Periodo)
	assert.True(t, decimal.RequireFromString("909097").Equal(extra.Capital),
		"el periodo extra liquida el saldo completo, fue %s", extra.Capital)
	assert.True(t, extra.Saldo.IsZero())
}

// ──────────────────────────────────────────────────────────────────────────────
// Validación
// ──────────────────────────────────────────────────────────────────────────────

func TestTabla_PrincipalInvalido(t *testing.T) {
	_, err := amortizacion.Tabla(decimal.Zero, decimal.RequireFromString("0.02"), 12, fechaInicio, nil)
	var valErr *domain.ValidacionError
	require.ErrorAs(t, err, &valErr)
	assert.Equal(t, "monto_prestado", valErr.Campo)
}

func TestTabla_PlazoInvalido(t *testing.T) {
	_, err := amortizacion.Tabla(decimal.NewFromInt(1_000), decimal.RequireFromString("0.02"), 0, fechaInicio, nil)
	var valErr *domain.ValidacionError
	require.ErrorAs(t, err, &valErr)
	assert.Equal(t, "plazo_meses", valErr.Campo)
}

func TestTabla_TasaNegativa(t *testing.T) {
	_, err := amortizacion.Tabla(decimal.NewFromInt(1_000), decimal.RequireFromString("-0.01"), 12, fechaInicio, nil)
	var valErr *domain.ValidacionError
	require.ErrorAs(t, err, &valErr)
	assert.Equal(t, "tasa_interes", valErr.Campo)
}

// La tabla es función pura: dos invocaciones producen filas idénticas.
func TestTabla_Determinista(t *testing.T) {
	principal := decimal.NewFromInt(5_000_000)
	tasa := decimal.RequireFromString("0.018")

	t1, err1 := amortizacion.Tabla(principal, tasa, 24, fechaInicio, nil)
	t2, err2 := amortizacion.Tabla(principal, tasa, 24, fechaInicio, nil)
	require.NoError(t, err1)
	require.NoError(t, err2)
	require.Equal(t, len(t1), len(t2))

	for i := range t1 {
		assert.True(t, t1[i].Cuota.Equal(t2[i].Cuota))
		assert.True(t, t1[i].Saldo.Equal(t2[i].Saldo))
	}
}
