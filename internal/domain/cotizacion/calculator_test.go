package cotizacion_test

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tu-usuario/gestion-pro/internal/domain"
	"github.com/tu-usuario/gestion-pro/internal/domain/cotizacion"
	"github.com/tu-usuario/gestion-pro/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Vector de referencia calculado a mano:
//
//	1 ítem: cantidad 25 × valor unitario 3.000 = 75.000
//	IVA global 19% sobre 75.000                 = 14.250
//	Total                                       = 89.250
// ──────────────────────────────────────────────────────────────────────────────

func TestCalcular_VectorReferencia(t *testing.T) {
	cot := &entity.Cotizacion{
		Items: []entity.CotizacionItem{
			{
				Descripcion:   "Instalación eléctrica",
				Cantidad:      decimal.NewFromInt(25),
				ValorUnitario: decimal.NewFromInt(3_000),
			},
		},
		ImpuestoPorcentaje: decimal.NewFromInt(19),
	}

	require.NoError(t, cotizacion.Calcular(cot))

	assertDecimal(t, "75000", cot.Items[0].ValorTotal, "valor total del ítem")
	assertDecimal(t, "75000", cot.Subtotal, "subtotal")
	assertDecimal(t, "14250", cot.IVA, "IVA 19%")
	assertDecimal(t, "89250", cot.Total, "total")
}

func TestCalcular_SinItems_TodoCero(t *testing.T) {
	cot := &entity.Cotizacion{
		ImpuestoPorcentaje: decimal.NewFromInt(19),
	}
	require.NoError(t, cotizacion.Calcular(cot))

	assert.True(t, cot.Subtotal.IsZero(), "subtotal sin ítems debe ser 0")
	assert.True(t, cot.IVA.IsZero(), "IVA sin base debe ser 0")
	assert.True(t, cot.Total.IsZero(), "total sin ítems debe ser 0")
}

// ── Descuentos por línea ──────────────────────────────────────────────────────

func TestCalcular_DescuentoItemPorValor(t *testing.T) {
	cot := &entity.Cotizacion{
		Items: []entity.CotizacionItem{
			{
				Cantidad:       decimal.NewFromInt(10),
				ValorUnitario:  decimal.NewFromInt(10_000),
				ModoDescuento:  entity.DescuentoPorValor,
				DescuentoValor: decimal.NewFromInt(15_000),
			},
		},
	}
	require.NoError(t, cotizacion.Calcular(cot))
	assertDecimal(t, "85000", cot.Items[0].ValorTotal, "100000 - 15000 de descuento fijo")
}

func TestCalcular_DescuentoItemPorPorcentaje(t *testing.T) {
	cot := &entity.Cotizacion{
		Items: []entity.CotizacionItem{
			{
				Cantidad:            decimal.NewFromInt(10),
				ValorUnitario:       decimal.NewFromInt(10_000),
				ModoDescuento:       entity.DescuentoPorPorcentaje,
				DescuentoPorcentaje: decimal.NewFromInt(10),
			},
		},
	}
	require.NoError(t, cotizacion.Calcular(cot))
	assertDecimal(t, "90000", cot.Items[0].ValorTotal, "100000 - 10%")
}

// Con modo explícito PORCENTAJE el valor fijo se ignora aunque venga cargado.
func TestCalcular_ModoExplicitoIgnoraElOtroCampo(t *testing.T) {
	cot := &entity.Cotizacion{
		Items: []entity.CotizacionItem{
			{
				Cantidad:            decimal.NewFromInt(1),
				ValorUnitario:       decimal.NewFromInt(100_000),
				ModoDescuento:       entity.DescuentoPorPorcentaje,
				DescuentoValor:      decimal.NewFromInt(99_000),
				DescuentoPorcentaje: decimal.NewFromInt(10),
			},
		},
	}
	require.NoError(t, cotizacion.Calcular(cot))
	assertDecimal(t, "90000", cot.Items[0].ValorTotal, "modo PORCENTAJE debe ignorar DescuentoValor")
}

// Payloads antiguos sin modo: el valor fijo gana sobre el porcentaje.
func TestCalcular_ModoVacio_ValorGanaSobrePorcentaje(t *testing.T) {
	cot := &entity.Cotizacion{
		Items: []entity.CotizacionItem{
			{
				Cantidad:            decimal.NewFromInt(1),
				ValorUnitario:       decimal.NewFromInt(100_000),
				DescuentoValor:      decimal.NewFromInt(5_000),
				DescuentoPorcentaje: decimal.NewFromInt(10),
			},
		},
	}
	require.NoError(t, cotizacion.Calcular(cot))
	assertDecimal(t, "95000", cot.Items[0].ValorTotal, "sin modo, el valor fijo tiene precedencia")
}

func TestCalcular_ModoVacio_SoloPorcentaje(t *testing.T) {
	cot := &entity.Cotizacion{
		Items: []entity.CotizacionItem{
			{
				Cantidad:            decimal.NewFromInt(1),
				ValorUnitario:       decimal.NewFromInt(100_000),
				DescuentoPorcentaje: decimal.NewFromInt(10),
			},
		},
	}
	require.NoError(t, cotizacion.Calcular(cot))
	assertDecimal(t, "90000", cot.Items[0].ValorTotal, "sin modo ni valor, aplica el porcentaje")
}

// ── Descuento global ──────────────────────────────────────────────────────────

func TestCalcular_DescuentoGlobal_IVASobreBaseDescontada(t *testing.T) {
	cot := &entity.Cotizacion{
		Items: []entity.CotizacionItem{
			{Cantidad: decimal.NewFromInt(1), ValorUnitario: decimal.NewFromInt(100_000)},
		},
		ModoDescuento:       entity.DescuentoPorPorcentaje,
		DescuentoPorcentaje: decimal.NewFromInt(10),
		ImpuestoPorcentaje:  decimal.NewFromInt(19),
	}
	require.NoError(t, cotizacion.Calcular(cot))

	assertDecimal(t, "100000", cot.Subtotal, "el subtotal no incluye el descuento global")
	assertDecimal(t, "17100", cot.IVA, "IVA 19% sobre la base ya descontada (90000)")
	assertDecimal(t, "107100", cot.Total, "90000 + 17100")
}

// ── AIU ───────────────────────────────────────────────────────────────────────

func TestCalcular_AIU_IVASoloSobreUtilidad(t *testing.T) {
	cot := &entity.Cotizacion{
		Items: []entity.CotizacionItem{
			{Cantidad: decimal.NewFromInt(1), ValorUnitario: decimal.NewFromInt(100_000)},
		},
		AIUAdminPorcentaje:      decimal.NewFromInt(10),
		AIUImprevistoPorcentaje: decimal.NewFromInt(5),
		AIUUtilidadPorcentaje:   decimal.NewFromInt(5),
		IVAUtilidadPorcentaje:   decimal.NewFromInt(19),
	}
	require.NoError(t, cotizacion.Calcular(cot))

	assertDecimal(t, "10000", cot.AIUAdmin, "administración 10%")
	assertDecimal(t, "5000", cot.AIUImprevistos, "imprevistos 5%")
	assertDecimal(t, "5000", cot.AIUUtilidad, "utilidad 5%")
	assertDecimal(t, "950", cot.IVAUtilidad, "IVA del AIU se liquida solo sobre la utilidad (19% de 5000)")
	assertDecimal(t, "120950", cot.Total, "100000 + 10000 + 5000 + 5000 + 950")
}

// ── Validación ────────────────────────────────────────────────────────────────

func TestCalcular_CantidadCero_Error(t *testing.T) {
	cot := &entity.Cotizacion{
		Items: []entity.CotizacionItem{
			{Cantidad: decimal.Zero, ValorUnitario: decimal.NewFromInt(3_000)},
		},
	}
	err := cotizacion.Calcular(cot)
	var valErr *domain.ValidacionError
	require.ErrorAs(t, err, &valErr, "cantidad cero debe fallar la validación")
	assert.Equal(t, "cantidad", valErr.Campo)
	assert.True(t, errors.Is(err, domain.ErrInvalidInput),
		"el error de validación debe encadenar ErrInvalidInput")
}

func TestCalcular_ValorUnitarioNegativo_Error(t *testing.T) {
	cot := &entity.Cotizacion{
		Items: []entity.CotizacionItem{
			{Cantidad: decimal.NewFromInt(1), ValorUnitario: decimal.NewFromInt(-100)},
		},
	}
	err := cotizacion.Calcular(cot)
	var valErr *domain.ValidacionError
	require.ErrorAs(t, err, &valErr)
	assert.Equal(t, "valor_unitario", valErr.Campo)
}

func TestCalcular_ProgresoFueraDeRango_Error(t *testing.T) {
	cot := &entity.Cotizacion{Progreso: 150}
	err := cotizacion.Calcular(cot)
	var valErr *domain.ValidacionError
	require.ErrorAs(t, err, &valErr)
	assert.Equal(t, "progreso", valErr.Campo)
}

// La validación falla antes de derivar: los campos quedan intactos.
func TestCalcular_ErrorNoDerivaCampos(t *testing.T) {
	cot := &entity.Cotizacion{
		Items: []entity.CotizacionItem{
			{Cantidad: decimal.Zero, ValorUnitario: decimal.NewFromInt(3_000)},
		},
		ImpuestoPorcentaje: decimal.NewFromInt(19),
	}
	require.Error(t, cotizacion.Calcular(cot))
	assert.True(t, cot.Subtotal.IsZero(), "subtotal no debe derivarse si la validación falla")
	assert.True(t, cot.Total.IsZero(), "total no debe derivarse si la validación falla")
}

// ── helper ────────────────────────────────────────────────────────────────────

func assertDecimal(t *testing.T, esperado string, got decimal.Decimal, msg string) {
	t.Helper()
	assert.True(t, decimal.RequireFromString(esperado).Equal(got),
		"%s: esperado %s, fue %s", msg, esperado, got)
}
