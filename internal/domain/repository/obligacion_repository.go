package repository

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/gestion-pro/internal/domain/entity"
)

// ObligacionRepository define el puerto de persistencia para obligaciones
// financieras (solo cabecera; los pagos van por PagoRepository).
type ObligacionRepository interface {
	Create(oblig *entity.ObligacionFinanciera) error
	GetByID(id string) (*entity.ObligacionFinanciera, error)
	// GetByIDForUpdate bloquea la fila; dos pagos concurrentes sobre la misma
	// obligación deben serializarse.
	GetByIDForUpdate(id string) (*entity.ObligacionFinanciera, error)
	UpdateSaldo(id string, saldoCapital decimal.Decimal, updatedAt time.Time) error
	List(limit, offset int) ([]*entity.ObligacionFinanciera, error)
}

// PagoRepository define el puerto de persistencia para pagos de obligaciones.
// Los pagos son append-only.
type PagoRepository interface {
	Create(pago *entity.Pago) error
	// ListByObligacionID devuelve los pagos en orden cronológico de registro.
	ListByObligacionID(obligacionID string) ([]entity.Pago, error)
}
