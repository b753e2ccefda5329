package domain

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound       = errors.New("recurso no encontrado")
	ErrInvalidInput   = errors.New("entrada inválida")
	ErrDuplicate      = errors.New("recurso duplicado")
	ErrUnauthorized   = errors.New("no autorizado")
	ErrForbidden      = errors.New("acceso denegado")
	ErrConflict       = errors.New("conflicto con el estado actual")
	ErrEstadoInvalido = errors.New("estado de cotización inválido")
)

// ValidacionError es una entrada con forma o rango inválido, rechazada antes
// de cualquier cálculo o escritura. El caller puede corregir y reintentar.
type ValidacionError struct {
	Campo   string
	Mensaje string
}

func (e *ValidacionError) Error() string {
	return fmt.Sprintf("validación: %s: %s", e.Campo, e.Mensaje)
}

// Is permite errors.Is(err, domain.ErrInvalidInput) sobre errores de validación.
func (e *ValidacionError) Is(target error) bool {
	return target == ErrInvalidInput
}

// SobrefacturacionError indica que el valor a facturar supera el saldo
// disponible de la cotización. La escritura se bloquea (fail-closed); el
// caller puede reducir el valor o elegir otra cotización.
type SobrefacturacionError struct {
	SaldoDisponible decimal.Decimal
	ValorIntentado  decimal.Decimal
}

func (e *SobrefacturacionError) Error() string {
	return fmt.Sprintf("sobrefacturación: intento de facturar %s con saldo disponible %s",
		e.ValorIntentado.StringFixed(2), e.SaldoDisponible.StringFixed(2))
}
