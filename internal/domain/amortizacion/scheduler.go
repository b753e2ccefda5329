// Package amortizacion proyecta la tabla de amortización de una obligación
// financiera mezclando los pagos reales registrados con una proyección de
// cuota fija (fórmula de anualidad) sobre el saldo vigente.
package amortizacion

import (
	"time"

	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/gestion-pro/internal/domain"
	"github.com/tu-usuario/gestion-pro/internal/domain/entity"
	"github.com/tu-usuario/gestion-pro/internal/domain/money"
)

// Cuota es una fila de la tabla: periodo, fecha de vencimiento, cuota pagada
// o proyectada y su descomposición en interés y capital. EsReal marca las
// filas tomadas textualmente de pagos registrados.
type Cuota struct {
	Periodo int
	Fecha   time.Time
	Cuota   decimal.Decimal
	Interes decimal.Decimal
	Capital decimal.Decimal
	Saldo   decimal.Decimal
	EsReal  bool
}

var uno = decimal.NewFromInt(1)

// Tabla genera la tabla completa. Función pura de sus entradas: puede
// invocarse cuantas veces se quiera sin efectos sobre la obligación.
//
// Los pagos reales se consumen en orden estricto contra periodos sucesivos
// (pago k → periodo k), sin aritmética de fechas: los abonos reales pueden
// ser irregulares. Sus valores se copian textualmente, nunca se recalculan.
// Agotados los pagos, la proyección liquida el saldo vigente en los periodos
// restantes con cuota fija; la última fila absorbe el residuo de redondeo
// para terminar exactamente en saldo cero.
func Tabla(principal, tasa decimal.Decimal, plazoMeses int, fechaInicio time.Time, pagos []entity.Pago) ([]Cuota, error) {
	if !principal.GreaterThan(decimal.Zero) {
		return nil, &domain.ValidacionError{Campo: "monto_prestado", Mensaje: "debe ser mayor que cero"}
	}
	if plazoMeses <= 0 {
		return nil, &domain.ValidacionError{Campo: "plazo_meses", Mensaje: "debe ser mayor que cero"}
	}
	if tasa.LessThan(decimal.Zero) {
		return nil, &domain.ValidacionError{Campo: "tasa_interes", Mensaje: "no puede ser negativa"}
	}

	filas := make([]Cuota, 0, plazoMeses)
	saldo := principal
	periodo := 1

	for _, pago := range pagos {
		if pago.Capital.GreaterThan(saldo) {
			// Dato histórico de captura manual: se acepta tal cual, pero el
			// saldo de seguimiento no baja de cero.
			log.Warn().
				Int("periodo", periodo).
				Str("capital", pago.Capital.StringFixed(2)).
				Str("saldo", saldo.StringFixed(2)).
				Msg("pago real con capital mayor al saldo vigente")
		}
		filas = append(filas, Cuota{
			Periodo: periodo,
			Fecha:   pago.Fecha,
			Cuota:   pago.Valor,
			Interes: pago.Interes,
			Capital: pago.Capital,
			Saldo:   pago.SaldoRestante,
			EsReal:  true,
		})
		saldo = pago.SaldoRestante
		if saldo.LessThan(decimal.Zero) {
			saldo = decimal.Zero
		}
		periodo++
		if saldo.IsZero() {
			// Los pagos reales ya amortizaron todo: sin filas extra en cero.
			return filas, nil
		}
	}

	restantes := plazoMeses - (periodo - 1)
	if restantes < 1 {
		// Los pagos reales subamortizaron el plazo: la tabla se extiende un
		// periodo para liquidar el saldo.
		restantes = 1
	}
	fija := cuotaFija(saldo, tasa, restantes)

	for i := 0; i < restantes; i++ {
		interes := money.Round2(saldo.Mul(tasa))
		capital := money.Round2(fija.Sub(interes))
		valor := fija
		if i == restantes-1 || capital.GreaterThanOrEqual(saldo) {
			// Última fila: el capital liquida el saldo exacto (absorbe el
			// residuo de redondeo); la tabla nunca termina en negativo.
			capital = saldo
			valor = money.Round2(interes.Add(capital))
		}
		saldo = money.Round2(saldo.Sub(capital))
		filas = append(filas, Cuota{
			Periodo: periodo,
			Fecha:   fechaInicio.AddDate(0, periodo, 0),
			Cuota:   valor,
			Interes: interes,
			Capital: capital,
			Saldo:   saldo,
			EsReal:  false,
		})
		periodo++
		if saldo.IsZero() {
			break
		}
	}
	return filas, nil
}

// cuotaFija calcula la cuota de un crédito totalmente amortizable:
// saldo * tasa * (1+tasa)^n / ((1+tasa)^n - 1). Con tasa cero la cuota es el
// saldo repartido en partes iguales.
func cuotaFija(saldo, tasa decimal.Decimal, n int) decimal.Decimal {
	if tasa.IsZero() {
		return money.Round2(saldo.Div(decimal.NewFromInt(int64(n))))
	}
	factor := uno.Add(tasa).Pow(decimal.NewFromInt(int64(n)))
	return money.Round2(saldo.Mul(tasa).Mul(factor).Div(factor.Sub(uno)))
}
