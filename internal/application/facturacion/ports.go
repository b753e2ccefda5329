package facturacion

import (
	"context"

	"github.com/tu-usuario/gestion-pro/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción con los repos de
// cotizaciones y facturas. La secuencia leer-validar-escribir del conciliador
// debe correr completa dentro de la misma transacción, con la fila de la
// cotización bloqueada, para que dos facturas concurrentes no pasen ambas la
// validación contra un saldo desactualizado.
type TxRunner interface {
	RunFacturacion(ctx context.Context, fn func(
		cotRepo repository.CotizacionRepository,
		facturaRepo repository.FacturaRepository,
	) error) error
}
