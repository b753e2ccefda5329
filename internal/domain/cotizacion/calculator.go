// Package cotizacion implementa el cálculo de precios de una cotización
// (servicio de dominio puro): totales por ítem, subtotal, descuento global,
// IVA y componentes AIU.
package cotizacion

import (
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/gestion-pro/internal/domain"
	"github.com/tu-usuario/gestion-pro/internal/domain/entity"
	"github.com/tu-usuario/gestion-pro/internal/domain/money"
)

// Calcular valida los ítems y deriva todos los campos monetarios de la
// cotización in place. Ningún campo se deriva si la validación falla.
func Calcular(cot *entity.Cotizacion) error {
	if err := validar(cot); err != nil {
		return err
	}

	subtotal := decimal.Zero
	for i := range cot.Items {
		item := &cot.Items[i]
		bruto := item.Cantidad.Mul(item.ValorUnitario)
		desc := descuento(item.ModoDescuento, bruto, item.DescuentoValor, item.DescuentoPorcentaje)
		item.ValorTotal = money.Round2(bruto.Sub(desc))
		subtotal = subtotal.Add(item.ValorTotal)
	}
	cot.Subtotal = money.Round2(subtotal)

	descGlobal := descuento(cot.ModoDescuento, cot.Subtotal, cot.DescuentoValor, cot.DescuentoPorcentaje)
	base := cot.Subtotal.Sub(descGlobal)

	cot.IVA = money.Porcentaje(base, cot.ImpuestoPorcentaje)
	cot.AIUAdmin = money.Porcentaje(base, cot.AIUAdminPorcentaje)
	cot.AIUImprevistos = money.Porcentaje(base, cot.AIUImprevistoPorcentaje)
	cot.AIUUtilidad = money.Porcentaje(base, cot.AIUUtilidadPorcentaje)
	// Convención colombiana de obra pública: el IVA sobre AIU se liquida
	// únicamente sobre la utilidad, no sobre los tres componentes.
	cot.IVAUtilidad = money.Porcentaje(cot.AIUUtilidad, cot.IVAUtilidadPorcentaje)

	cot.Total = money.Round2(base.
		Add(cot.IVA).
		Add(cot.AIUAdmin).
		Add(cot.AIUImprevistos).
		Add(cot.AIUUtilidad).
		Add(cot.IVAUtilidad))
	return nil
}

func validar(cot *entity.Cotizacion) error {
	for i := range cot.Items {
		item := &cot.Items[i]
		if !item.Cantidad.GreaterThan(decimal.Zero) {
			return &domain.ValidacionError{Campo: "cantidad", Mensaje: "debe ser mayor que cero"}
		}
		if item.ValorUnitario.LessThan(decimal.Zero) {
			return &domain.ValidacionError{Campo: "valor_unitario", Mensaje: "no puede ser negativo"}
		}
	}
	if cot.Progreso < 0 || cot.Progreso > 100 {
		return &domain.ValidacionError{Campo: "progreso", Mensaje: "debe estar entre 0 y 100"}
	}
	return nil
}

// descuento resuelve el monto de descuento según el modo explícito. Con modo
// vacío aplica la precedencia documentada: el valor explícito gana sobre el
// porcentaje cuando ambos vienen.
func descuento(modo string, bruto, valor, pct decimal.Decimal) decimal.Decimal {
	switch modo {
	case entity.DescuentoPorValor:
		return valor
	case entity.DescuentoPorPorcentaje:
		return money.Porcentaje(bruto, pct)
	}
	if !valor.IsZero() {
		return valor
	}
	if !pct.IsZero() {
		return money.Porcentaje(bruto, pct)
	}
	return decimal.Zero
}
