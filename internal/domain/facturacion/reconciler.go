// Package facturacion concilia facturas contra el saldo de su cotización:
// ninguna cotización puede quedar sobrefacturada.
package facturacion

import (
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/gestion-pro/internal/domain"
	"github.com/tu-usuario/gestion-pro/internal/domain/entity"
	"github.com/tu-usuario/gestion-pro/internal/domain/money"
)

// ValidarSaldo verifica que candidato quepa en el saldo restante de la
// cotización: total − Σ valorFacturado de las facturas existentes. Si la
// validación es para una actualización, excluirID omite la propia factura de
// la suma. Falla cerrado: retorna SobrefacturacionError y el caller no debe
// escribir nada.
func ValidarSaldo(totalCotizacion decimal.Decimal, existentes []entity.Factura, excluirID string, candidato decimal.Decimal) error {
	restante := Saldo(totalCotizacion, existentes, excluirID)
	if candidato.GreaterThan(restante) {
		return &domain.SobrefacturacionError{
			SaldoDisponible: restante,
			ValorIntentado:  candidato,
		}
	}
	return nil
}

// Saldo calcula el valor aún facturable de la cotización.
func Saldo(totalCotizacion decimal.Decimal, existentes []entity.Factura, excluirID string) decimal.Decimal {
	facturado := decimal.Zero
	for _, f := range existentes {
		if excluirID != "" && f.ID == excluirID {
			continue
		}
		facturado = facturado.Add(f.ValorFacturado)
	}
	return money.Round2(totalCotizacion.Sub(facturado))
}
