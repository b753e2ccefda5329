package finanzas

import (
	"context"

	"github.com/tu-usuario/gestion-pro/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción con los repos de
// obligaciones y pagos. El registro de un pago bloquea la fila de la
// obligación: dos pagos concurrentes sobre el mismo crédito se serializan.
type TxRunner interface {
	RunFinanzas(ctx context.Context, fn func(
		obligRepo repository.ObligacionRepository,
		pagoRepo repository.PagoRepository,
	) error) error
}
